// Package storage assembles the per-entity repositories behind a single
// value that is built once at startup and handed to the HTTP layer.
package storage

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/hms/internal/domain/appointment"
	"github.com/hospital/hms/internal/domain/department"
	"github.com/hospital/hms/internal/domain/doctor"
	"github.com/hospital/hms/internal/domain/medicalrecord"
	"github.com/hospital/hms/internal/domain/patient"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Storage holds one repository per record type.
type Storage struct {
	Departments    department.Repository
	Doctors        doctor.Repository
	Patients       patient.Repository
	Appointments   appointment.Repository
	MedicalRecords medicalrecord.Repository
}

// NewMemory returns process-local storage with the four default departments
// seeded and every other table empty.
func NewMemory() *Storage {
	return &Storage{
		Departments:    department.NewMemoryRepo(),
		Doctors:        doctor.NewMemoryRepo(),
		Patients:       patient.NewMemoryRepo(),
		Appointments:   appointment.NewMemoryRepo(),
		MedicalRecords: medicalrecord.NewMemoryRepo(),
	}
}

// NewPostgres returns storage backed by pool. The schema and department seed
// come from the migrations.
func NewPostgres(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Departments:    department.NewPostgresRepo(pool),
		Doctors:        doctor.NewPostgresRepo(pool),
		Patients:       patient.NewPostgresRepo(pool),
		Appointments:   appointment.NewPostgresRepo(pool),
		MedicalRecords: medicalrecord.NewPostgresRepo(pool),
	}
}

// Open selects the backend by driver name. pool is only consulted for the
// postgres driver.
func Open(driver string, pool *pgxpool.Pool) (*Storage, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverPostgres:
		if pool == nil {
			return nil, fmt.Errorf("storage: postgres driver requires a connection pool")
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}
