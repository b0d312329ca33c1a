package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"codeberg.org/mutker/batstat/internal/battery"
	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRepository struct {
	db     *sql.DB
	logger logger.Logger
	mu     sync.Mutex
}

func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	db, err := sql.Open(sqliteDriverName, cfg.DBPath+"?_journal=WAL")
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := ValidateAndUpdateSchema(db, cfg, log); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Info().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("History repository initialized")

	return &sqliteRepository{
		db:     db,
		logger: log,
	}, nil
}

// Store upserts the reading keyed by its unix timestamp, so two runs in the
// same second keep the later reading.
func (r *sqliteRepository) Store(ctx context.Context, status battery.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var power sql.NullFloat64
	if p, ok := status.Power(); ok {
		power = sql.NullFloat64{Float64: p, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, insertStatusSQL,
		status.Moment().Unix(),
		status.State().String(),
		status.Voltage(),
		status.Energy(),
		power,
		status.Capacity(),
	)
	if err != nil {
		return errors.New().Wrap(ErrStorageAccess, err)
	}

	r.logger.Debug().Int64("timestamp", status.Moment().Unix()).Msg("Stored battery status")

	return nil
}

func (r *sqliteRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}

	return nil
}
