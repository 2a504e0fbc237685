package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient has the requested id.
var ErrNotFound = errors.New("patient not found")

// Repository defines the persistence interface for patients.
type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]*Patient, error)
	Search(ctx context.Context, query string) ([]*Patient, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, id int64, patch *Patch) (*Patient, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
