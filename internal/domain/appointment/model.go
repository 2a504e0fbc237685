package appointment

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment maps to the appointments table. AppointmentDate is a calendar
// date string (YYYY-MM-DD) and is compared by exact equality.
type Appointment struct {
	ID              int64   `db:"id" json:"id"`
	PatientID       int64   `db:"patient_id" json:"patientId"`
	DoctorID        int64   `db:"doctor_id" json:"doctorId"`
	DepartmentID    int64   `db:"department_id" json:"departmentId"`
	AppointmentDate string  `db:"appointment_date" json:"appointmentDate"`
	AppointmentTime string  `db:"appointment_time" json:"appointmentTime"`
	Reason          string  `db:"reason" json:"reason"`
	Status          string  `db:"status" json:"status"`
	Notes           *string `db:"notes" json:"notes"`
}

// Input is the create shape accepted by POST /api/appointments.
type Input struct {
	PatientID       *int64  `json:"patientId" validate:"required"`
	DoctorID        *int64  `json:"doctorId" validate:"required"`
	DepartmentID    *int64  `json:"departmentId" validate:"required"`
	AppointmentDate *string `json:"appointmentDate" validate:"required"`
	AppointmentTime *string `json:"appointmentTime" validate:"required"`
	Reason          *string `json:"reason" validate:"required"`
	Status          *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes           *string `json:"notes"`
}

// Appointment builds an unsaved Appointment, defaulting status to scheduled.
func (in *Input) Appointment() *Appointment {
	a := &Appointment{
		PatientID:       *in.PatientID,
		DoctorID:        *in.DoctorID,
		DepartmentID:    *in.DepartmentID,
		AppointmentDate: *in.AppointmentDate,
		AppointmentTime: *in.AppointmentTime,
		Reason:          *in.Reason,
		Status:          StatusScheduled,
		Notes:           in.Notes,
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	return a
}

// Patch is the partial shape accepted by PUT /api/appointments/:id.
type Patch struct {
	PatientID       *int64  `json:"patientId"`
	DoctorID        *int64  `json:"doctorId"`
	DepartmentID    *int64  `json:"departmentId"`
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
	Reason          *string `json:"reason"`
	Status          *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes           *string `json:"notes"`
}

// Apply merges the set fields of p over a.
func (p *Patch) Apply(a Appointment) Appointment {
	if p.PatientID != nil {
		a.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		a.DoctorID = *p.DoctorID
	}
	if p.DepartmentID != nil {
		a.DepartmentID = *p.DepartmentID
	}
	if p.AppointmentDate != nil {
		a.AppointmentDate = *p.AppointmentDate
	}
	if p.AppointmentTime != nil {
		a.AppointmentTime = *p.AppointmentTime
	}
	if p.Reason != nil {
		a.Reason = *p.Reason
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = p.Notes
	}
	return a
}
