package appointment

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no appointment has the requested id.
var ErrNotFound = errors.New("appointment not found")

// Repository defines the persistence interface for appointments.
type Repository interface {
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*Appointment, error)
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, id int64, patch *Patch) (*Appointment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
