package doctor

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	Phone          string `db:"phone" json:"phone"`
	Specialization string `db:"specialization" json:"specialization"`
	DepartmentID   int64  `db:"department_id" json:"departmentId"`
	Experience     int    `db:"experience" json:"experience"`
	Status         string `db:"status" json:"status"`
}

// Input is the create shape accepted by POST /api/doctors.
type Input struct {
	Name           *string `json:"name" validate:"required"`
	Email          *string `json:"email" validate:"required"`
	Phone          *string `json:"phone" validate:"required"`
	Specialization *string `json:"specialization" validate:"required"`
	DepartmentID   *int64  `json:"departmentId" validate:"required"`
	Experience     *int    `json:"experience" validate:"required"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Doctor builds an unsaved Doctor, defaulting status to active.
func (in *Input) Doctor() *Doctor {
	d := &Doctor{
		Name:           *in.Name,
		Email:          *in.Email,
		Phone:          *in.Phone,
		Specialization: *in.Specialization,
		DepartmentID:   *in.DepartmentID,
		Experience:     *in.Experience,
		Status:         StatusActive,
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	return d
}

// Patch is the partial shape accepted by PUT /api/doctors/:id.
type Patch struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	DepartmentID   *int64  `json:"departmentId"`
	Experience     *int    `json:"experience"`
	Status         *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Apply merges the set fields of p over d.
func (p *Patch) Apply(d Doctor) Doctor {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Specialization != nil {
		d.Specialization = *p.Specialization
	}
	if p.DepartmentID != nil {
		d.DepartmentID = *p.DepartmentID
	}
	if p.Experience != nil {
		d.Experience = *p.Experience
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	return d
}
