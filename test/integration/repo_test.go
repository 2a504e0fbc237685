package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/hospital/hms/internal/domain/appointment"
	"github.com/hospital/hms/internal/domain/department"
	"github.com/hospital/hms/internal/domain/doctor"
	"github.com/hospital/hms/internal/domain/medicalrecord"
	"github.com/hospital/hms/internal/domain/patient"
	"github.com/hospital/hms/internal/platform/db"
	"github.com/hospital/hms/internal/storage"
	"github.com/hospital/hms/migrations"
)

func TestMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := db.NewMigrator(testPool, migrations.FS, testSchema)

	n, err := m.Up(ctx)
	if err != nil {
		t.Fatalf("Up: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no pending migrations, applied %d", n)
	}
	statuses, err := m.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	for _, s := range statuses {
		if !s.Applied {
			t.Errorf("migration %s not applied", s.Name)
		}
	}
}

func TestDepartments_SeedAndCRUD(t *testing.T) {
	withRollback(t, func(ctx context.Context, s *storage.Storage) {
		depts, err := s.Departments.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(depts) != 4 || depts[0].Name != "Cardiology" || depts[3].Name != "Neurology" {
			t.Fatalf("unexpected seed: %+v", depts)
		}

		d := &department.Department{Name: "Oncology", Description: ptr("Cancer care")}
		if err := s.Departments.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if d.ID < 5 {
			t.Errorf("expected id after the seed, got %d", d.ID)
		}

		updated, err := s.Departments.Update(ctx, d.ID, &department.Patch{HeadDoctorID: ptr(int64(12))})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Name != "Oncology" || updated.HeadDoctorID == nil || *updated.HeadDoctorID != 12 {
			t.Errorf("unexpected update: %+v", updated)
		}

		if _, err := s.Departments.Update(ctx, 99999, &department.Patch{Name: ptr("x")}); !errors.Is(err, department.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if ok, err := s.Departments.Delete(ctx, d.ID); err != nil || !ok {
			t.Errorf("Delete: %v %v", ok, err)
		}
		if ok, _ := s.Departments.Delete(ctx, d.ID); ok {
			t.Error("second delete should report nothing removed")
		}
		if _, err := s.Departments.GetByID(ctx, d.ID); !errors.Is(err, department.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func TestDoctors_ByDepartment(t *testing.T) {
	withRollback(t, func(ctx context.Context, s *storage.Storage) {
		for _, dept := range []int64{1, 2, 1} {
			err := s.Doctors.Create(ctx, &doctor.Doctor{
				Name: "Dr", Email: "d@x", Phone: "1", Specialization: "s",
				DepartmentID: dept, Status: doctor.StatusActive,
			})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		got, err := s.Doctors.ListByDepartment(ctx, 1)
		if err != nil {
			t.Fatalf("ListByDepartment: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 doctors, got %d", len(got))
		}
		none, _ := s.Doctors.ListByDepartment(ctx, 77)
		if none == nil || len(none) != 0 {
			t.Errorf("expected empty non-nil list, got %#v", none)
		}
	})
}

func TestPatients_Search(t *testing.T) {
	withRollback(t, func(ctx context.Context, s *storage.Storage) {
		ann := &patient.Patient{Name: "Ann Lee", Email: "a@x.com", Phone: "555-1234", Age: 30, Gender: "female", DepartmentID: 1, Status: patient.StatusActive}
		bob := &patient.Patient{Name: "Bob Stone", Email: "bob@y.org", Phone: "777-0000", Age: 41, Gender: "male", DepartmentID: 2, Status: patient.StatusActive}
		s.Patients.Create(ctx, ann)
		s.Patients.Create(ctx, bob)

		cases := map[string]int64{"LEE": ann.ID, "555": ann.ID, "bob@": bob.ID}
		for q, want := range cases {
			got, err := s.Patients.Search(ctx, q)
			if err != nil {
				t.Fatalf("Search %q: %v", q, err)
			}
			if len(got) != 1 || got[0].ID != want {
				t.Errorf("Search %q: expected patient %d, got %+v", q, want, got)
			}
		}
		if got, _ := s.Patients.Search(ctx, "%"); len(got) != 0 {
			t.Errorf("wildcard should match literally, got %d", len(got))
		}
	})
}

func TestAppointments_Filters(t *testing.T) {
	withRollback(t, func(ctx context.Context, s *storage.Storage) {
		mk := func(p, d int64, date string) {
			err := s.Appointments.Create(ctx, &appointment.Appointment{
				PatientID: p, DoctorID: d, DepartmentID: 1,
				AppointmentDate: date, AppointmentTime: "09:00", Reason: "r", Status: appointment.StatusScheduled,
			})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
		}
		mk(1, 10, "2026-10-14")
		mk(2, 10, "2026-10-15")
		mk(1, 11, "2026-10-15")

		byPatient, _ := s.Appointments.ListByPatient(ctx, 1)
		byDoctor, _ := s.Appointments.ListByDoctor(ctx, 10)
		byDate, _ := s.Appointments.ListByDate(ctx, "2026-10-15")
		if len(byPatient) != 2 || len(byDoctor) != 2 || len(byDate) != 2 {
			t.Errorf("unexpected filter counts: %d %d %d", len(byPatient), len(byDoctor), len(byDate))
		}

		a := byDate[0]
		got, err := s.Appointments.Update(ctx, a.ID, &appointment.Patch{Status: ptr(appointment.StatusCompleted), Notes: ptr("done")})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Status != appointment.StatusCompleted || got.Reason != "r" || got.Notes == nil {
			t.Errorf("unexpected update: %+v", got)
		}
	})
}

func TestMedicalRecords_CRUD(t *testing.T) {
	withRollback(t, func(ctx context.Context, s *storage.Storage) {
		m := &medicalrecord.MedicalRecord{PatientID: 3, DoctorID: 4, Diagnosis: "Flu", Treatment: "Rest", RecordDate: "2026-10-01"}
		if err := s.MedicalRecords.Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := s.MedicalRecords.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.AppointmentID != nil || got.Medications != nil {
			t.Errorf("expected null optional fields, got %+v", got)
		}

		byDoctor, _ := s.MedicalRecords.ListByDoctor(ctx, 4)
		byPatient, _ := s.MedicalRecords.ListByPatient(ctx, 3)
		if len(byDoctor) != 1 || len(byPatient) != 1 {
			t.Errorf("unexpected filter counts: %d %d", len(byDoctor), len(byPatient))
		}
		if ok, _ := s.MedicalRecords.Delete(ctx, m.ID); !ok {
			t.Error("expected delete to succeed")
		}
	})
}
