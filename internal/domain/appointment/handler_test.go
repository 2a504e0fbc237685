package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/validate"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewMemoryRepo())
	e := echo.New()
	e.Validator = validate.New()
	return h, e
}

const validAppointment = `{"patientId":1,"doctorId":2,"departmentId":1,` +
	`"appointmentDate":"2026-03-01","appointmentTime":"09:30","reason":"Checkup"}`

func seedAppointments(h *Handler) {
	ctx := context.Background()
	h.repo.Create(ctx, &Appointment{PatientID: 1, DoctorID: 10, AppointmentDate: "2026-03-01", Status: StatusScheduled})
	h.repo.Create(ctx, &Appointment{PatientID: 2, DoctorID: 10, AppointmentDate: "2026-03-02", Status: StatusScheduled})
	h.repo.Create(ctx, &Appointment{PatientID: 1, DoctorID: 11, AppointmentDate: "2026-03-02", Status: StatusCompleted})
}

func listAppointments(t *testing.T, h *Handler, e *echo.Echo, query string) []Appointment {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/appointments"+query, nil), rec)
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("%s: unexpected error: %v", query, err)
	}
	if strings.TrimSpace(rec.Body.String()) == "null" {
		t.Fatalf("%s: expected JSON array, got null", query)
	}
	var out []Appointment
	json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

func ids(appts []Appointment) []int64 {
	out := make([]int64, len(appts))
	for i, a := range appts {
		out[i] = a.ID
	}
	return out
}

func TestHandler_CreateAppointment(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(validAppointment))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.CreateAppointment(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var a Appointment
	json.Unmarshal(rec.Body.Bytes(), &a)
	if a.ID != 1 || a.Status != StatusScheduled || a.AppointmentTime != "09:30" {
		t.Errorf("unexpected appointment: %+v", a)
	}
}

func TestHandler_CreateAppointment_Invalid(t *testing.T) {
	h, e := newTestHandler()

	for _, body := range []string{
		`{"patientId":1,"doctorId":2,"departmentId":1,"appointmentDate":"2026-03-01","appointmentTime":"09:30"}`,
		`{"patientId":1,"doctorId":2,"departmentId":1,"appointmentDate":"2026-03-01","appointmentTime":"09:30","reason":"x","status":"pending"}`,
		`{"patientId":"one","doctorId":2,"departmentId":1,"appointmentDate":"2026-03-01","appointmentTime":"09:30","reason":"x"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		err := h.CreateAppointment(e.NewContext(req, httptest.NewRecorder()))
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %v", body, err)
		}
	}
}

func TestHandler_ListAppointments_Filters(t *testing.T) {
	h, e := newTestHandler()
	seedAppointments(h)

	cases := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3}},
		{"?patientId=1", []int64{1, 3}},
		{"?doctorId=10", []int64{1, 2}},
		{"?date=2026-03-02", []int64{2, 3}},
		{"?date=2026-3-2", []int64{}},
		{"?patientId=1&doctorId=10", []int64{1, 3}},
		{"?doctorId=11&date=2026-03-01", []int64{3}},
		{"?patientId=zz&doctorId=10", []int64{}},
	}
	for _, tc := range cases {
		got := ids(listAppointments(t, h, e, tc.query))
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.query, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.query, got, tc.want)
				break
			}
		}
	}
}

func TestHandler_UpdateAppointment(t *testing.T) {
	h, e := newTestHandler()
	seedAppointments(h)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"cancelled","notes":"Patient called"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.UpdateAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var a Appointment
	json.Unmarshal(rec.Body.Bytes(), &a)
	if a.ID != 2 || a.Status != StatusCancelled || a.Notes == nil || a.PatientID != 2 || a.AppointmentDate != "2026-03-02" {
		t.Errorf("unexpected update result: %+v", a)
	}
}

func TestHandler_GetAndDeleteAppointment(t *testing.T) {
	h, e := newTestHandler()
	seedAppointments(h)

	call := func(fn echo.HandlerFunc, id string) (*httptest.ResponseRecorder, error) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return rec, fn(c)
	}

	if rec, err := call(h.GetAppointment, "3"); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("get: %v %d", err, rec.Code)
	}
	if rec, err := call(h.DeleteAppointment, "3"); err != nil || rec.Code != http.StatusNoContent {
		t.Fatalf("delete: %v %d", err, rec.Code)
	}
	for _, fn := range []echo.HandlerFunc{h.GetAppointment, h.DeleteAppointment} {
		_, err := call(fn, "3")
		if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusNotFound || he.Message != msgNotFound {
			t.Errorf("expected 404 after delete, got %v", err)
		}
	}
	if got := listAppointments(t, h, e, ""); len(got) != 2 {
		t.Errorf("expected 2 remaining, got %d", len(got))
	}
}
