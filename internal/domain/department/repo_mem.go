package department

import (
	"context"

	"github.com/hospital/hms/internal/platform/memstore"
)

type deptRepoMem struct {
	table *memstore.Table[Department]
}

// NewMemoryRepo returns an in-memory repository pre-populated with Seed.
func NewMemoryRepo() Repository {
	t := memstore.NewTable[Department]()
	for _, d := range Seed() {
		t.Seed(d.ID, d)
	}
	return &deptRepoMem{table: t}
}

func (r *deptRepoMem) List(_ context.Context) ([]*Department, error) {
	return toPtrs(r.table.All()), nil
}

func (r *deptRepoMem) GetByID(_ context.Context, id int64) (*Department, error) {
	d, ok := r.table.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *deptRepoMem) Create(_ context.Context, dept *Department) error {
	*dept = r.table.Insert(func(id int64) Department {
		d := *dept
		d.ID = id
		return d
	})
	return nil
}

func (r *deptRepoMem) Update(_ context.Context, id int64, patch *Patch) (*Department, error) {
	d, ok := r.table.Update(id, patch.Apply)
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *deptRepoMem) Delete(_ context.Context, id int64) (bool, error) {
	return r.table.Delete(id), nil
}

func toPtrs(rows []Department) []*Department {
	out := make([]*Department, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
