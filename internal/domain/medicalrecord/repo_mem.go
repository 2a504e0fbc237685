package medicalrecord

import (
	"context"

	"github.com/hospital/hms/internal/platform/memstore"
)

type recordRepoMem struct {
	table *memstore.Table[MedicalRecord]
}

// NewMemoryRepo returns an empty in-memory repository.
func NewMemoryRepo() Repository {
	return &recordRepoMem{table: memstore.NewTable[MedicalRecord]()}
}

func (r *recordRepoMem) List(_ context.Context) ([]*MedicalRecord, error) {
	return toPtrs(r.table.All()), nil
}

func (r *recordRepoMem) ListByPatient(_ context.Context, patientID int64) ([]*MedicalRecord, error) {
	return toPtrs(r.table.Filter(func(m MedicalRecord) bool {
		return m.PatientID == patientID
	})), nil
}

func (r *recordRepoMem) ListByDoctor(_ context.Context, doctorID int64) ([]*MedicalRecord, error) {
	return toPtrs(r.table.Filter(func(m MedicalRecord) bool {
		return m.DoctorID == doctorID
	})), nil
}

func (r *recordRepoMem) GetByID(_ context.Context, id int64) (*MedicalRecord, error) {
	m, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *recordRepoMem) Create(_ context.Context, m *MedicalRecord) error {
	*m = r.table.Insert(func(id int64) MedicalRecord {
		rec := *m
		rec.ID = id
		return rec
	})
	return nil
}

func (r *recordRepoMem) Update(_ context.Context, id int64, patch *Patch) (*MedicalRecord, error) {
	m, ok := r.table.Update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *recordRepoMem) Delete(_ context.Context, id int64) (bool, error) {
	return r.table.Delete(id), nil
}

func toPtrs(rows []MedicalRecord) []*MedicalRecord {
	out := make([]*MedicalRecord, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
