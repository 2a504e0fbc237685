package dashboard

// Stats is the summary rendered on the dashboard cards.
type Stats struct {
	TotalPatients     int `json:"totalPatients"`
	ActiveDoctors     int `json:"activeDoctors"`
	TodayAppointments int `json:"todayAppointments"`
	Departments       int `json:"departments"`
}
