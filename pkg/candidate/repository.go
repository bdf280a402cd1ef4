package candidate

import (
	"context"
	"errors"
)

// Common errors returned by the store and its repositories.
var (
	ErrNotFound     = errors.New("candidate not found")
	ErrStoreIO      = errors.New("candidate store failure")
	ErrInvalidStage = errors.New("invalid stage")
)

// Repository is the candidate card storage port.
// Implementations assign ids atomically and must be safe for concurrent use.
type Repository interface {
	// Create persists r and returns the id it was assigned. r.ID is ignored.
	Create(ctx context.Context, r Record) (int64, error)
	// List returns records for role ("" means all), newest first.
	List(ctx context.Context, role string) ([]Record, error)
	Get(ctx context.Context, id int64) (Record, error)
	// UpdateStage overwrites the stage column only. ErrNotFound when id is unknown.
	UpdateStage(ctx context.Context, id int64, stage Stage) error
	// Top returns scored records ordered by score, highest first.
	Top(ctx context.Context, limit int) ([]Record, error)
}
