package department

// Department maps to the departments table.
type Department struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description"`
	HeadDoctorID *int64  `db:"head_doctor_id" json:"headDoctorId"`
}

// Input is the create shape accepted by POST /api/departments.
type Input struct {
	Name         *string `json:"name" validate:"required"`
	Description  *string `json:"description"`
	HeadDoctorID *int64  `json:"headDoctorId"`
}

// Department builds an unsaved Department from a validated Input.
func (in *Input) Department() *Department {
	return &Department{
		Name:         *in.Name,
		Description:  in.Description,
		HeadDoctorID: in.HeadDoctorID,
	}
}

// Patch is the partial shape accepted by PUT /api/departments/:id.
// A nil field leaves the stored value unchanged.
type Patch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	HeadDoctorID *int64  `json:"headDoctorId"`
}

// Apply merges the set fields of p over d.
func (p *Patch) Apply(d Department) Department {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = p.Description
	}
	if p.HeadDoctorID != nil {
		d.HeadDoctorID = p.HeadDoctorID
	}
	return d
}

var seed = []Department{
	{ID: 1, Name: "Cardiology", Description: strPtr("Heart and cardiovascular care")},
	{ID: 2, Name: "Pediatrics", Description: strPtr("Children's healthcare")},
	{ID: 3, Name: "Orthopedics", Description: strPtr("Bone and joint care")},
	{ID: 4, Name: "Neurology", Description: strPtr("Brain and nervous system")},
}

// Seed returns the departments every fresh store starts with.
func Seed() []Department {
	out := make([]Department, len(seed))
	copy(out, seed)
	return out
}

func strPtr(s string) *string { return &s }
