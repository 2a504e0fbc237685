package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/hms/internal/platform/db"
)

const deptColumns = `id, name, description, head_doctor_id`

type deptRepoPG struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo returns a Repository backed by the departments table.
func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &deptRepoPG{pool: pool}
}

func (r *deptRepoPG) List(ctx context.Context) ([]*Department, error) {
	rows, err := db.Conn(ctx, r.pool).Query(ctx, `SELECT `+deptColumns+` FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	depts := []*Department{}
	for rows.Next() {
		d, err := scanDept(rows)
		if err != nil {
			return nil, err
		}
		depts = append(depts, d)
	}
	return depts, rows.Err()
}

func (r *deptRepoPG) GetByID(ctx context.Context, id int64) (*Department, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `SELECT `+deptColumns+` FROM departments WHERE id = $1`, id)
	d, err := scanDept(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (r *deptRepoPG) Create(ctx context.Context, dept *Department) error {
	err := db.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO departments (name, description, head_doctor_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		dept.Name, dept.Description, dept.HeadDoctorID,
	).Scan(&dept.ID)
	if err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

func (r *deptRepoPG) Update(ctx context.Context, id int64, patch *Patch) (*Department, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE departments SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			head_doctor_id = COALESCE($4, head_doctor_id)
		WHERE id = $1
		RETURNING `+deptColumns,
		id, patch.Name, patch.Description, patch.HeadDoctorID,
	)
	d, err := scanDept(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (r *deptRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete department: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanDept(row pgx.Row) (*Department, error) {
	var d Department
	if err := row.Scan(&d.ID, &d.Name, &d.Description, &d.HeadDoctorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan department: %w", err)
	}
	return &d, nil
}
