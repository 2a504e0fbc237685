package doctor

import (
	"context"

	"github.com/hospital/hms/internal/platform/memstore"
)

type doctorRepoMem struct {
	table *memstore.Table[Doctor]
}

// NewMemoryRepo returns an empty in-memory repository.
func NewMemoryRepo() Repository {
	return &doctorRepoMem{table: memstore.NewTable[Doctor]()}
}

func (r *doctorRepoMem) List(_ context.Context) ([]*Doctor, error) {
	return toPtrs(r.table.All()), nil
}

func (r *doctorRepoMem) ListByDepartment(_ context.Context, departmentID int64) ([]*Doctor, error) {
	return toPtrs(r.table.Filter(func(d Doctor) bool {
		return d.DepartmentID == departmentID
	})), nil
}

func (r *doctorRepoMem) GetByID(_ context.Context, id int64) (*Doctor, error) {
	d, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *doctorRepoMem) Create(_ context.Context, doc *Doctor) error {
	*doc = r.table.Insert(func(id int64) Doctor {
		d := *doc
		d.ID = id
		return d
	})
	return nil
}

func (r *doctorRepoMem) Update(_ context.Context, id int64, patch *Patch) (*Doctor, error) {
	d, ok := r.table.Update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *doctorRepoMem) Delete(_ context.Context, id int64) (bool, error) {
	return r.table.Delete(id), nil
}

func toPtrs(rows []Doctor) []*Doctor {
	out := make([]*Doctor, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
