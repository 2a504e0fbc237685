package department

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no department has the requested id.
var ErrNotFound = errors.New("department not found")

// Repository defines the persistence interface for departments.
type Repository interface {
	List(ctx context.Context) ([]*Department, error)
	GetByID(ctx context.Context, id int64) (*Department, error)
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, id int64, patch *Patch) (*Department, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
