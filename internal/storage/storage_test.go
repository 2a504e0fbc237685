package storage

import (
	"context"
	"testing"

	"github.com/hospital/hms/internal/domain/doctor"
)

func TestNewMemory_InitialState(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	depts, err := s.Departments.List(ctx)
	if err != nil {
		t.Fatalf("departments: %v", err)
	}
	if len(depts) != 4 {
		t.Errorf("expected 4 seeded departments, got %d", len(depts))
	}

	docs, _ := s.Doctors.List(ctx)
	patients, _ := s.Patients.List(ctx)
	appts, _ := s.Appointments.List(ctx)
	records, _ := s.MedicalRecords.List(ctx)
	if len(docs)+len(patients)+len(appts)+len(records) != 0 {
		t.Error("expected all non-department tables to start empty")
	}
}

func TestNewMemory_InstancesIndependent(t *testing.T) {
	a, b := NewMemory(), NewMemory()
	ctx := context.Background()

	a.Doctors.Create(ctx, &doctor.Doctor{Name: "Dr. A"})

	if docs, _ := b.Doctors.List(ctx); len(docs) != 0 {
		t.Errorf("second storage saw %d doctors from the first", len(docs))
	}
}

func TestOpen(t *testing.T) {
	if s, err := Open(DriverMemory, nil); err != nil || s == nil {
		t.Fatalf("memory: %v", err)
	}
	if _, err := Open(DriverPostgres, nil); err == nil {
		t.Error("expected error for postgres without pool")
	}
	if _, err := Open("sqlite", nil); err == nil {
		t.Error("expected error for unknown driver")
	}
}
