package patient

import (
	"strconv"
	"strings"
)

const (
	StatusActive     = "active"
	StatusDischarged = "discharged"
	StatusCritical   = "critical"
)

// Patient maps to the patients table.
type Patient struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Email        string  `db:"email" json:"email"`
	Phone        string  `db:"phone" json:"phone"`
	Age          int     `db:"age" json:"age"`
	Gender       string  `db:"gender" json:"gender"`
	Address      *string `db:"address" json:"address"`
	DepartmentID int64   `db:"department_id" json:"departmentId"`
	Status       string  `db:"status" json:"status"`
}

// Matches reports whether p satisfies a free-text search: name and email are
// compared case-insensitively, phone and the decimal id as plain substrings.
func (p *Patient) Matches(query string) bool {
	lq := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), lq) ||
		strings.Contains(strings.ToLower(p.Email), lq) ||
		strings.Contains(p.Phone, query) ||
		strings.Contains(strconv.FormatInt(p.ID, 10), query)
}

// Input is the create shape accepted by POST /api/patients.
type Input struct {
	Name         *string `json:"name" validate:"required"`
	Email        *string `json:"email" validate:"required"`
	Phone        *string `json:"phone" validate:"required"`
	Age          *int    `json:"age" validate:"required"`
	Gender       *string `json:"gender" validate:"required,oneof=male female other"`
	Address      *string `json:"address"`
	DepartmentID *int64  `json:"departmentId" validate:"required"`
	Status       *string `json:"status" validate:"omitempty,oneof=active discharged critical"`
}

// Patient builds an unsaved Patient, defaulting status to active.
func (in *Input) Patient() *Patient {
	p := &Patient{
		Name:         *in.Name,
		Email:        *in.Email,
		Phone:        *in.Phone,
		Age:          *in.Age,
		Gender:       *in.Gender,
		Address:      in.Address,
		DepartmentID: *in.DepartmentID,
		Status:       StatusActive,
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	return p
}

// Patch is the partial shape accepted by PUT /api/patients/:id.
type Patch struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Age          *int    `json:"age"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address      *string `json:"address"`
	DepartmentID *int64  `json:"departmentId"`
	Status       *string `json:"status" validate:"omitempty,oneof=active discharged critical"`
}

// Apply merges the set fields of p over pt.
func (p *Patch) Apply(pt Patient) Patient {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.Email != nil {
		pt.Email = *p.Email
	}
	if p.Phone != nil {
		pt.Phone = *p.Phone
	}
	if p.Age != nil {
		pt.Age = *p.Age
	}
	if p.Gender != nil {
		pt.Gender = *p.Gender
	}
	if p.Address != nil {
		pt.Address = p.Address
	}
	if p.DepartmentID != nil {
		pt.DepartmentID = *p.DepartmentID
	}
	if p.Status != nil {
		pt.Status = *p.Status
	}
	return pt
}
