package medicalrecord

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/hms/internal/platform/db"
)

const recordColumns = `id, patient_id, doctor_id, appointment_id, diagnosis, treatment,
	medications, notes, record_date`

type recordRepoPG struct {
	pool *pgxpool.Pool
}

// NewPostgresRepo returns a Repository backed by the medical_records table.
func NewPostgresRepo(pool *pgxpool.Pool) Repository {
	return &recordRepoPG{pool: pool}
}

func (r *recordRepoPG) List(ctx context.Context) ([]*MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records ORDER BY id`)
}

func (r *recordRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE patient_id = $1 ORDER BY id`, patientID)
}

func (r *recordRepoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*MedicalRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE doctor_id = $1 ORDER BY id`, doctorID)
}

func (r *recordRepoPG) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `SELECT `+recordColumns+` FROM medical_records WHERE id = $1`, id)
	m, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *recordRepoPG) Create(ctx context.Context, m *MedicalRecord) error {
	err := db.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, doctor_id, appointment_id, diagnosis, treatment,
			medications, notes, record_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		m.PatientID, m.DoctorID, m.AppointmentID, m.Diagnosis, m.Treatment,
		m.Medications, m.Notes, m.RecordDate,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create medical record: %w", err)
	}
	return nil
}

func (r *recordRepoPG) Update(ctx context.Context, id int64, patch *Patch) (*MedicalRecord, error) {
	row := db.Conn(ctx, r.pool).QueryRow(ctx, `
		UPDATE medical_records SET
			patient_id = COALESCE($2, patient_id),
			doctor_id = COALESCE($3, doctor_id),
			appointment_id = COALESCE($4, appointment_id),
			diagnosis = COALESCE($5, diagnosis),
			treatment = COALESCE($6, treatment),
			medications = COALESCE($7, medications),
			notes = COALESCE($8, notes),
			record_date = COALESCE($9, record_date)
		WHERE id = $1
		RETURNING `+recordColumns,
		id, patch.PatientID, patch.DoctorID, patch.AppointmentID, patch.Diagnosis,
		patch.Treatment, patch.Medications, patch.Notes, patch.RecordDate,
	)
	m, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *recordRepoPG) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete medical record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *recordRepoPG) query(ctx context.Context, sql string, args ...interface{}) ([]*MedicalRecord, error) {
	rows, err := db.Conn(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	records := []*MedicalRecord{}
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.AppointmentID, &m.Diagnosis, &m.Treatment,
		&m.Medications, &m.Notes, &m.RecordDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan medical record: %w", err)
	}
	return &m, nil
}
