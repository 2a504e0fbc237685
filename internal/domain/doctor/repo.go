package doctor

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no doctor has the requested id.
var ErrNotFound = errors.New("doctor not found")

// Repository defines the persistence interface for doctors.
type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]*Doctor, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Create(ctx context.Context, doc *Doctor) error
	Update(ctx context.Context, id int64, patch *Patch) (*Doctor, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
