// Package battery turns a power_supply uevent snapshot into a validated
// Status.
package battery

import (
	"math"
	"strconv"
	"time"

	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/uevent"
)

const (
	KeyStatus   = "POWER_SUPPLY_STATUS"
	KeyVoltage  = "POWER_SUPPLY_VOLTAGE_NOW"
	KeyEnergy   = "POWER_SUPPLY_ENERGY_NOW"
	KeyPower    = "POWER_SUPPLY_POWER_NOW"
	KeyCapacity = "POWER_SUPPLY_CAPACITY"

	microUnitsPerUnit = 1_000_000
)

// Parse builds a Status from raw uevent text, stamped with the current time.
// It returns the first attribute_not_found or invalid_value error encountered.
func Parse(raw string) (Status, error) {
	return ParseAt(raw, time.Now())
}

// ParseAt is Parse with an explicit capture time.
func ParseAt(raw string, at time.Time) (Status, error) {
	capacity, err := parseCapacity(raw)
	if err != nil {
		return Status{}, err
	}

	voltage, err := parseMicro(KeyVoltage, raw)
	if err != nil {
		return Status{}, err
	}

	energy, err := parseMicro(KeyEnergy, raw)
	if err != nil {
		return Status{}, err
	}

	power, hasPower, err := parseOptionalMicro(KeyPower, raw)
	if err != nil {
		return Status{}, err
	}

	label, err := uevent.Extract(KeyStatus, raw)
	if err != nil {
		return Status{}, err
	}
	state, err := ParseChargeState(label)
	if err != nil {
		return Status{}, err
	}

	return Status{
		moment:   at,
		state:    state,
		voltage:  voltage,
		energy:   energy,
		power:    power,
		hasPower: hasPower,
		capacity: capacity,
	}, nil
}

func parseCapacity(raw string) (int, error) {
	value, err := uevent.Extract(KeyCapacity, raw)
	if err != nil {
		return 0, err
	}

	capacity, err := strconv.ParseUint(value, 10, 31)
	if err != nil {
		return 0, invalidValue(KeyCapacity, value, "an unsigned integer", err)
	}

	return int(capacity), nil
}

// parseMicro reads a value exported in micro-units and converts it to base units.
func parseMicro(key, raw string) (float64, error) {
	value, err := uevent.Extract(key, raw)
	if err != nil {
		return 0, err
	}

	return convertMicro(key, value)
}

func parseOptionalMicro(key, raw string) (float64, bool, error) {
	value, err := uevent.Extract(key, raw)
	if errors.HasCode(err, errors.ErrAttributeNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	v, err := convertMicro(key, value)
	if err != nil {
		return 0, false, err
	}

	return v, true, nil
}

func convertMicro(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, invalidValue(key, value, "a number", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidValue(key, value, "a finite number", nil)
	}

	return v / microUnitsPerUnit, nil
}

func invalidValue(key, value, expected string, cause error) errors.Error {
	errFactory := errors.New()

	var err errors.Error
	if cause != nil {
		err = errFactory.Wrap(errors.ErrInvalidValue, cause)
	} else {
		err = errFactory.New(errors.ErrInvalidValue)
	}

	return err.WithData(ValueError{Attribute: key, Value: value, Expected: expected})
}
