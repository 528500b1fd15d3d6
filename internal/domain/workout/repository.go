package workout

import (
	"context"
)

// Repository is the storage contract for workout records. List must return
// records newest date first with id as the descending tie-break; that order
// is the sort authority for everything above it.
type Repository interface {
	List(ctx context.Context) ([]Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
	Create(ctx context.Context, w *Workout) error
	Update(ctx context.Context, w *Workout) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
