// Package report renders a battery.Status to the console and the CSV log.
package report

import (
	"os"

	"github.com/spf13/afero"

	"codeberg.org/mutker/batstat/internal/battery"
	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/logger"
)

const defaultFilePerm = 0o644

// CSVAppender appends one record per call to a log file, creating it on
// first use.
type CSVAppender struct {
	fs   afero.Fs
	path string
}

func NewCSVAppender(fs afero.Fs, path string) *CSVAppender {
	return &CSVAppender{fs: fs, path: path}
}

// Append opens the file append-only, writes the record and closes it again.
func (a *CSVAppender) Append(status battery.Status) error {
	errFactory := errors.New()

	f, err := a.fs.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFilePerm)
	if err != nil {
		return errFactory.Wrap(errors.ErrAppendCSV, err)
	}

	record := status.CSV()
	if _, err := f.WriteString(record); err != nil {
		f.Close()
		return errFactory.Wrap(errors.ErrAppendCSV, err)
	}

	if err := f.Close(); err != nil {
		return errFactory.Wrap(errors.ErrAppendCSV, err)
	}

	logger.Debug().Str("path", a.path).Str("record", record).Msg("Appended CSV record")

	return nil
}
