package patient

import (
	"context"

	"github.com/hospital/hms/internal/platform/memstore"
)

type patientRepoMem struct {
	table *memstore.Table[Patient]
}

// NewMemoryRepo returns an empty in-memory repository.
func NewMemoryRepo() Repository {
	return &patientRepoMem{table: memstore.NewTable[Patient]()}
}

func (r *patientRepoMem) List(_ context.Context) ([]*Patient, error) {
	return toPtrs(r.table.All()), nil
}

func (r *patientRepoMem) ListByDepartment(_ context.Context, departmentID int64) ([]*Patient, error) {
	return toPtrs(r.table.Filter(func(p Patient) bool {
		return p.DepartmentID == departmentID
	})), nil
}

func (r *patientRepoMem) Search(_ context.Context, query string) ([]*Patient, error) {
	return toPtrs(r.table.Filter(func(p Patient) bool {
		return p.Matches(query)
	})), nil
}

func (r *patientRepoMem) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *patientRepoMem) Create(_ context.Context, p *Patient) error {
	*p = r.table.Insert(func(id int64) Patient {
		pt := *p
		pt.ID = id
		return pt
	})
	return nil
}

func (r *patientRepoMem) Update(_ context.Context, id int64, patch *Patch) (*Patient, error) {
	p, ok := r.table.Update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *patientRepoMem) Delete(_ context.Context, id int64) (bool, error) {
	return r.table.Delete(id), nil
}

func toPtrs(rows []Patient) []*Patient {
	out := make([]*Patient, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
