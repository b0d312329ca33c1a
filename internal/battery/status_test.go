package battery_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/batstat/internal/battery"
	"codeberg.org/mutker/batstat/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCSV(t *testing.T) {
	status, err := battery.ParseAt(example, time.Unix(1700000000, 0))
	require.NoError(t, err)

	assert.Equal(t, "1700000000, charging, 12, 45, 80\n", status.CSV())
}

func TestStatusCSVWithPower(t *testing.T) {
	status, err := battery.ParseAt(laptop, time.Unix(1700000000, 0))
	require.NoError(t, err)

	assert.Equal(t, "1700000000, discharging, 12.286, 37.34, 6.583, 73\n", status.CSV())
}

func TestStatusString(t *testing.T) {
	status, err := battery.Parse(example)
	require.NoError(t, err)
	assert.Equal(t, "SoC: 80%, 45Wh, 12V", status.String())

	status, err = battery.Parse(laptop)
	require.NoError(t, err)
	assert.Equal(t, "SoC: 73%, 37.34Wh, 12.286V, 6.583W", status.String())
}

func TestChargeStateString(t *testing.T) {
	tests := []struct {
		state   battery.ChargeState
		display string
		label   string
	}{
		{battery.Charging, "charging", "Charging"},
		{battery.Discharging, "discharging", "Discharging"},
		{battery.Full, "full", "Full"},
		{battery.NotCharging, "not_charging", "Not charging"},
		{battery.Unknown, "unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.state.String())
			assert.Equal(t, tt.label, tt.state.Label())

			parsed, err := battery.ParseChargeState(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.state, parsed)
		})
	}

	assert.Equal(t, "ChargeState(42)", battery.ChargeState(42).String())
}

func TestParseChargeStateRejectsUnknownLabel(t *testing.T) {
	for _, label := range []string{"", "Idle", "FULL", " Full"} {
		_, err := battery.ParseChargeState(label)
		assert.True(t, errors.HasCode(err, errors.ErrInvalidValue), "label %q", label)
	}
}
