package medicalrecord

// MedicalRecord maps to the medical_records table.
type MedicalRecord struct {
	ID            int64   `db:"id" json:"id"`
	PatientID     int64   `db:"patient_id" json:"patientId"`
	DoctorID      int64   `db:"doctor_id" json:"doctorId"`
	AppointmentID *int64  `db:"appointment_id" json:"appointmentId"`
	Diagnosis     string  `db:"diagnosis" json:"diagnosis"`
	Treatment     string  `db:"treatment" json:"treatment"`
	Medications   *string `db:"medications" json:"medications"`
	Notes         *string `db:"notes" json:"notes"`
	RecordDate    string  `db:"record_date" json:"recordDate"`
}

// Input is the create shape accepted by POST /api/medical-records.
type Input struct {
	PatientID     *int64  `json:"patientId" validate:"required"`
	DoctorID      *int64  `json:"doctorId" validate:"required"`
	AppointmentID *int64  `json:"appointmentId"`
	Diagnosis     *string `json:"diagnosis" validate:"required"`
	Treatment     *string `json:"treatment" validate:"required"`
	Medications   *string `json:"medications"`
	Notes         *string `json:"notes"`
	RecordDate    *string `json:"recordDate" validate:"required"`
}

func (in *Input) Record() *MedicalRecord {
	return &MedicalRecord{
		PatientID:     *in.PatientID,
		DoctorID:      *in.DoctorID,
		AppointmentID: in.AppointmentID,
		Diagnosis:     *in.Diagnosis,
		Treatment:     *in.Treatment,
		Medications:   in.Medications,
		Notes:         in.Notes,
		RecordDate:    *in.RecordDate,
	}
}

// Patch is the partial shape accepted by PUT /api/medical-records/:id.
type Patch struct {
	PatientID     *int64  `json:"patientId"`
	DoctorID      *int64  `json:"doctorId"`
	AppointmentID *int64  `json:"appointmentId"`
	Diagnosis     *string `json:"diagnosis"`
	Treatment     *string `json:"treatment"`
	Medications   *string `json:"medications"`
	Notes         *string `json:"notes"`
	RecordDate    *string `json:"recordDate"`
}

// Apply merges the set fields of p over m.
func (p *Patch) Apply(m MedicalRecord) MedicalRecord {
	if p.PatientID != nil {
		m.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		m.DoctorID = *p.DoctorID
	}
	if p.AppointmentID != nil {
		m.AppointmentID = p.AppointmentID
	}
	if p.Diagnosis != nil {
		m.Diagnosis = *p.Diagnosis
	}
	if p.Treatment != nil {
		m.Treatment = *p.Treatment
	}
	if p.Medications != nil {
		m.Medications = p.Medications
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
	if p.RecordDate != nil {
		m.RecordDate = *p.RecordDate
	}
	return m
}
