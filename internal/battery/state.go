package battery

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/batstat/internal/errors"
)

// ChargeState is the battery's current power-flow mode.
type ChargeState int

const (
	Unknown ChargeState = iota
	Charging
	Discharging
	NotCharging
	Full
)

type stateNames struct {
	label   string // kernel vocabulary
	display string
}

var chargeStates = map[ChargeState]stateNames{
	Unknown:     {label: "Unknown", display: "unknown"},
	Charging:    {label: "Charging", display: "charging"},
	Discharging: {label: "Discharging", display: "discharging"},
	NotCharging: {label: "Not charging", display: "not_charging"},
	Full:        {label: "Full", display: "full"},
}

// stateOrder fixes the order labels are listed in error messages.
var stateOrder = []ChargeState{Charging, Discharging, Full, NotCharging, Unknown}

// ParseChargeState matches a POWER_SUPPLY_STATUS label exactly. Labels outside
// the kernel vocabulary are rejected rather than mapped to Unknown.
func ParseChargeState(label string) (ChargeState, error) {
	for _, s := range stateOrder {
		if chargeStates[s].label == label {
			return s, nil
		}
	}

	return Unknown, errors.New().WithData(errors.ErrInvalidValue, ValueError{
		Attribute: KeyStatus,
		Value:     label,
		Expected:  "one of " + knownLabels(),
	})
}

// String returns the display name used in console and CSV output.
func (s ChargeState) String() string {
	if n, ok := chargeStates[s]; ok {
		return n.display
	}

	return "ChargeState(" + strconv.Itoa(int(s)) + ")"
}

// Label returns the kernel's spelling of the state.
func (s ChargeState) Label() string {
	return chargeStates[s].label
}

func knownLabels() string {
	labels := make([]string, 0, len(stateOrder))
	for _, s := range stateOrder {
		labels = append(labels, strconv.Quote(chargeStates[s].label))
	}

	return strings.Join(labels, ", ")
}
