package appointment

import (
	"context"
	"testing"
)

func TestMemoryRepo_ListByDateExactMatch(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	repo.Create(ctx, &Appointment{AppointmentDate: "2026-10-14"})
	repo.Create(ctx, &Appointment{AppointmentDate: "2026-10-14T09:00"})

	got, err := repo.ListByDate(ctx, "2026-10-14")
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only appointment 1, got %+v", got)
	}
}

func TestMemoryRepo_DanglingReferencesAccepted(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	a := &Appointment{PatientID: 404, DoctorID: 405, DepartmentID: 406}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, _ := repo.ListByPatient(ctx, 404)
	if len(got) != 1 {
		t.Errorf("expected appointment for unknown patient to be stored")
	}
}

func TestMemoryRepo_ReturnedValuesAreCopies(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	repo.Create(ctx, &Appointment{Reason: "original"})

	a, _ := repo.GetByID(ctx, 1)
	a.Reason = "mutated"

	again, _ := repo.GetByID(ctx, 1)
	if again.Reason != "original" {
		t.Errorf("stored record changed through returned pointer: %q", again.Reason)
	}
}
