package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"codeberg.org/mutker/batstat/internal/battery"
)

var stateColors = map[battery.ChargeState]*color.Color{
	battery.Charging:    color.New(color.FgGreen, color.Bold),
	battery.Discharging: color.New(color.FgYellow, color.Bold),
	battery.Full:        color.New(color.FgCyan, color.Bold),
	battery.NotCharging: color.New(color.FgBlue, color.Bold),
	battery.Unknown:     color.New(color.Bold),
}

// Console prints the one-line battery summary.
type Console struct {
	out     io.Writer
	colored bool
}

// NewConsole returns a Console writing to out. Color is applied only when
// requested and fatih/color has not detected a non-terminal.
func NewConsole(out io.Writer, colored bool) *Console {
	return &Console{out: out, colored: colored && !color.NoColor}
}

// Print writes the state followed by the summary, e.g.
// "charging SoC: 80%, 45Wh, 12V".
func (c *Console) Print(status battery.Status) error {
	state := status.State().String()
	if c.colored {
		state = stateColors[status.State()].Sprint(state)
	}

	_, err := fmt.Fprintf(c.out, "%s %s\n", state, status)

	return err
}
