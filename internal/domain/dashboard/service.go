package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hospital/hms/internal/domain/appointment"
	"github.com/hospital/hms/internal/domain/department"
	"github.com/hospital/hms/internal/domain/doctor"
	"github.com/hospital/hms/internal/domain/patient"
)

const dateLayout = "2006-01-02"

type Service struct {
	depts    department.Repository
	doctors  doctor.Repository
	patients patient.Repository
	appts    appointment.Repository
	now      func() time.Time
}

func NewService(depts department.Repository, doctors doctor.Repository, patients patient.Repository, appts appointment.Repository) *Service {
	return &Service{depts: depts, doctors: doctors, patients: patients, appts: appts, now: time.Now}
}

// Stats counts patients, active doctors, departments and the appointments
// whose date equals the current local day.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}
	depts, err := s.depts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("count departments: %w", err)
	}
	today, err := s.appts.ListByDate(ctx, s.Today())
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	active := 0
	for _, d := range doctors {
		if d.Status == doctor.StatusActive {
			active++
		}
	}
	return &Stats{
		TotalPatients:     len(patients),
		ActiveDoctors:     active,
		TodayAppointments: len(today),
		Departments:       len(depts),
	}, nil
}

// RecentAppointments returns up to limit appointments, newest id first.
func (s *Service) RecentAppointments(ctx context.Context, limit int) ([]*appointment.Appointment, error) {
	appts, err := s.appts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	sort.Slice(appts, func(i, j int) bool { return appts[i].ID > appts[j].ID })
	if len(appts) > limit {
		appts = appts[:limit]
	}
	return appts, nil
}

// Today formats the current local date the way appointment dates are stored.
func (s *Service) Today() string {
	return s.now().Format(dateLayout)
}
