package appointment

import (
	"context"

	"github.com/hospital/hms/internal/platform/memstore"
)

type appointmentRepoMem struct {
	table *memstore.Table[Appointment]
}

// NewMemoryRepo returns an empty in-memory repository.
func NewMemoryRepo() Repository {
	return &appointmentRepoMem{table: memstore.NewTable[Appointment]()}
}

func (r *appointmentRepoMem) List(_ context.Context) ([]*Appointment, error) {
	return toPtrs(r.table.All()), nil
}

func (r *appointmentRepoMem) ListByPatient(_ context.Context, patientID int64) ([]*Appointment, error) {
	return toPtrs(r.table.Filter(func(a Appointment) bool {
		return a.PatientID == patientID
	})), nil
}

func (r *appointmentRepoMem) ListByDoctor(_ context.Context, doctorID int64) ([]*Appointment, error) {
	return toPtrs(r.table.Filter(func(a Appointment) bool {
		return a.DoctorID == doctorID
	})), nil
}

func (r *appointmentRepoMem) ListByDate(_ context.Context, date string) ([]*Appointment, error) {
	return toPtrs(r.table.Filter(func(a Appointment) bool {
		return a.AppointmentDate == date
	})), nil
}

func (r *appointmentRepoMem) GetByID(_ context.Context, id int64) (*Appointment, error) {
	a, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *appointmentRepoMem) Create(_ context.Context, a *Appointment) error {
	*a = r.table.Insert(func(id int64) Appointment {
		appt := *a
		appt.ID = id
		return appt
	})
	return nil
}

func (r *appointmentRepoMem) Update(_ context.Context, id int64, patch *Patch) (*Appointment, error) {
	a, ok := r.table.Update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *appointmentRepoMem) Delete(_ context.Context, id int64) (bool, error) {
	return r.table.Delete(id), nil
}

func toPtrs(rows []Appointment) []*Appointment {
	out := make([]*Appointment, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
