package history

import (
	"context"

	"codeberg.org/mutker/batstat/internal/battery"
)

// Recorder stores battery readings.
type Recorder interface {
	Record(ctx context.Context, status battery.Status) error
	Close() error
}

// Repository defines the interface for history data storage
type Repository interface {
	Store(ctx context.Context, status battery.Status) error
	Close() error
}
