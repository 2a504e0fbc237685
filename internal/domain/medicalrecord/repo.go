package medicalrecord

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no medical record has the requested id.
var ErrNotFound = errors.New("medical record not found")

// Repository defines the persistence interface for medical records.
type Repository interface {
	List(ctx context.Context) ([]*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*MedicalRecord, error)
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	Create(ctx context.Context, m *MedicalRecord) error
	Update(ctx context.Context, id int64, patch *Patch) (*MedicalRecord, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
