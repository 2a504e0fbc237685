package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/hms/internal/platform/db"
)

const doctorColumns = `id, name, email, phone, specialization, department_id, experience, status`

type doctorRepoPG struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo returns a Repository backed by the doctors table.
func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	return r.query(ctx, `SELECT `+doctorColumns+` FROM doctors ORDER BY id`)
}

func (r *doctorRepoPG) ListByDepartment(ctx context.Context, departmentID int64) ([]*Doctor, error) {
	return r.query(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE department_id = $1 ORDER BY id`, departmentID)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
	d, err := scanDoctor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, doc *Doctor) error {
	err := db.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO doctors (name, email, phone, specialization, department_id, experience, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		doc.Name, doc.Email, doc.Phone, doc.Specialization, doc.DepartmentID, doc.Experience, doc.Status,
	).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepoPG) Update(ctx context.Context, id int64, patch *Patch) (*Doctor, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE doctors SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			specialization = COALESCE($5, specialization),
			department_id = COALESCE($6, department_id),
			experience = COALESCE($7, experience),
			status = COALESCE($8, status)
		WHERE id = $1
		RETURNING `+doctorColumns,
		id, patch.Name, patch.Email, patch.Phone, patch.Specialization,
		patch.DepartmentID, patch.Experience, patch.Status,
	)
	d, err := scanDoctor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (r *doctorRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete doctor: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *doctorRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*Doctor, error) {
	rows, err := db.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	docs := []*Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Specialization, &d.DepartmentID, &d.Experience, &d.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan doctor: %w", err)
	}
	return &d, nil
}
