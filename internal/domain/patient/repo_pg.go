package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/hms/internal/platform/db"
)

const patientColumns = `id, name, email, phone, age, gender, address, department_id, status`

type patientRepoPG struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo returns a Repository backed by the patients table.
func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	return r.query(ctx, `SELECT `+patientColumns+` FROM patients ORDER BY id`)
}

func (r *patientRepoPG) ListByDepartment(ctx context.Context, departmentID int64) ([]*Patient, error) {
	return r.query(ctx, `SELECT `+patientColumns+` FROM patients WHERE department_id = $1 ORDER BY id`, departmentID)
}

func (r *patientRepoPG) Search(ctx context.Context, query string) ([]*Patient, error) {
	pattern := "%" + escapeLike(query) + "%"
	return r.query(ctx, `
		SELECT `+patientColumns+` FROM patients
		WHERE name ILIKE $1 OR email ILIKE $1 OR phone LIKE $1 OR id::text LIKE $1
		ORDER BY id`, pattern)
}

func (r *patientRepoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	err := db.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO patients (name, email, phone, age, gender, address, department_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.Name, p.Email, p.Phone, p.Age, p.Gender, p.Address, p.DepartmentID, p.Status,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *patientRepoPG) Update(ctx context.Context, id int64, patch *Patch) (*Patient, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE patients SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			age = COALESCE($5, age),
			gender = COALESCE($6, gender),
			address = COALESCE($7, address),
			department_id = COALESCE($8, department_id),
			status = COALESCE($9, status)
		WHERE id = $1
		RETURNING `+patientColumns,
		id, patch.Name, patch.Email, patch.Phone, patch.Age,
		patch.Gender, patch.Address, patch.DepartmentID, patch.Status,
	)
	p, err := scanPatient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *patientRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete patient: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *patientRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*Patient, error) {
	rows, err := db.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	patients := []*Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Age, &p.Gender, &p.Address, &p.DepartmentID, &p.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan patient: %w", err)
	}
	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
