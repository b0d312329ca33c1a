package battery

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status is a single validated battery reading. The zero value is not
// meaningful; values are produced by Parse and ParseAt.
type Status struct {
	moment   time.Time
	state    ChargeState
	voltage  float64
	energy   float64
	power    float64
	hasPower bool
	capacity int
}

// Moment is when the reading was taken.
func (s Status) Moment() time.Time { return s.moment }

func (s Status) State() ChargeState { return s.state }

// Voltage in volts.
func (s Status) Voltage() float64 { return s.voltage }

// Energy in watt-hours.
func (s Status) Energy() float64 { return s.energy }

// Power returns the instantaneous draw in watts, and false when the source
// does not export it.
func (s Status) Power() (float64, bool) { return s.power, s.hasPower }

// Capacity is the state of charge in percent.
func (s Status) Capacity() int { return s.capacity }

// String renders the one-line console summary.
func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SoC: %d%%, %sWh, %sV", s.capacity, formatFloat(s.energy), formatFloat(s.voltage))
	if s.hasPower {
		fmt.Fprintf(&b, ", %sW", formatFloat(s.power))
	}

	return b.String()
}

// CSV renders the newline-terminated log record:
// timestamp, state, voltage, energy[, power], capacity.
func (s Status) CSV() string {
	fields := []string{
		strconv.FormatInt(s.moment.Unix(), 10),
		s.state.String(),
		formatFloat(s.voltage),
		formatFloat(s.energy),
	}
	if s.hasPower {
		fields = append(fields, formatFloat(s.power))
	}
	fields = append(fields, strconv.Itoa(s.capacity))

	return strings.Join(fields, ", ") + "\n"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
