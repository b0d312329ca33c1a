// Package sysfs reads the battery's power_supply uevent export.
package sysfs

import (
	"github.com/spf13/afero"

	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/logger"
)

// UeventPath is the only battery batstat reads.
const UeventPath = "/sys/class/power_supply/BAT0/uevent"

type Source struct {
	fs afero.Fs
}

// NewSource returns a Source reading from fs. Production callers pass
// afero.NewOsFs().
func NewSource(fs afero.Fs) *Source {
	return &Source{fs: fs}
}

// Read returns a snapshot of the uevent file.
func (s *Source) Read() (string, error) {
	data, err := afero.ReadFile(s.fs, UeventPath)
	if err != nil {
		return "", errors.New().Wrap(errors.ErrReadSource, err)
	}

	logger.Debug().Str("path", UeventPath).Int("bytes", len(data)).Msg("Read battery uevent")

	return string(data), nil
}
