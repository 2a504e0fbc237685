package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/hms/internal/platform/db"
)

const appointmentColumns = `id, patient_id, doctor_id, department_id, appointment_date,
	appointment_time, reason, status, notes`

type appointmentRepoPG struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo returns a Repository backed by the appointments table.
func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &appointmentRepoPG{pool: pool}
}

func (r *appointmentRepoPG) List(ctx context.Context) ([]*Appointment, error) {
	return r.query(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY id`)
}

func (r *appointmentRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return r.query(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *appointmentRepoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*Appointment, error) {
	return r.query(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE doctor_id = $1 ORDER BY id`, doctorID)
}

func (r *appointmentRepoPG) ListByDate(ctx context.Context, date string) ([]*Appointment, error) {
	return r.query(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE appointment_date = $1 ORDER BY id`, date)
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	err := db.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, department_id, appointment_date,
			appointment_time, reason, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.DepartmentID, a.AppointmentDate,
		a.AppointmentTime, a.Reason, a.Status, a.Notes,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepoPG) Update(ctx context.Context, id int64, patch *Patch) (*Appointment, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE appointments SET
			patient_id = COALESCE($2, patient_id),
			doctor_id = COALESCE($3, doctor_id),
			department_id = COALESCE($4, department_id),
			appointment_date = COALESCE($5, appointment_date),
			appointment_time = COALESCE($6, appointment_time),
			reason = COALESCE($7, reason),
			status = COALESCE($8, status),
			notes = COALESCE($9, notes)
		WHERE id = $1
		RETURNING `+appointmentColumns,
		id, patch.PatientID, patch.DoctorID, patch.DepartmentID, patch.AppointmentDate,
		patch.AppointmentTime, patch.Reason, patch.Status, patch.Notes,
	)
	a, err := scanAppointment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *appointmentRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete appointment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *appointmentRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*Appointment, error) {
	rows, err := db.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	appts := []*Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.DepartmentID, &a.AppointmentDate,
		&a.AppointmentTime, &a.Reason, &a.Status, &a.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}
	return &a, nil
}
