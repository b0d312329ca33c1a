package main

import (
	"context"
	"io"

	"github.com/spf13/afero"

	"codeberg.org/mutker/batstat/internal/battery"
	"codeberg.org/mutker/batstat/internal/config"
	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/history"
	"codeberg.org/mutker/batstat/internal/logger"
	"codeberg.org/mutker/batstat/internal/pid"
	"codeberg.org/mutker/batstat/internal/report"
	"codeberg.org/mutker/batstat/internal/sysfs"
	"codeberg.org/mutker/batstat/internal/uevent"
)

// run performs a single read, parse and report cycle.
func run(ctx context.Context, cfg *config.Config, fs afero.Fs, out io.Writer) error {
	raw, err := sysfs.NewSource(fs).Read()
	if err != nil {
		return err
	}

	logger.Debug().Interface("attributes", uevent.Parse(raw)).Msg("Battery uevent snapshot")

	status, err := battery.Parse(raw)
	if err != nil {
		return err
	}

	logger.Info().
		Str("state", status.State().String()).
		Float64("voltage", status.Voltage()).
		Float64("energy", status.Energy()).
		Int("capacity", status.Capacity()).
		Msg("Battery status parsed")

	if !cfg.Quiet {
		if err := report.NewConsole(out, cfg.Color).Print(status); err != nil {
			return errors.New().Wrap(errors.ErrInternal, err)
		}
	}

	if cfg.CSV {
		if err := appendCSV(cfg, fs, status); err != nil {
			return err
		}
	}

	return recordHistory(ctx, cfg, status)
}

func appendCSV(cfg *config.Config, fs afero.Fs, status battery.Status) error {
	if err := pid.Write(cfg.LockFile); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(cfg.LockFile); err != nil {
			logger.Warn().Err(err).Str("path", cfg.LockFile).Msg("Failed to remove lock file")
		}
	}()

	return report.NewCSVAppender(fs, cfg.Output).Append(status)
}

func recordHistory(ctx context.Context, cfg *config.Config, status battery.Status) error {
	recorder, err := history.NewService(history.Config{
		DBPath:  cfg.HistoryDB,
		Enabled: cfg.History,
	}, logger.New())
	if err != nil {
		return err
	}

	if err := recorder.Record(ctx, status); err != nil {
		recorder.Close()
		return err
	}

	return recorder.Close()
}
