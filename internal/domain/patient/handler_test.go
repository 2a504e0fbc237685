package patient

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

const validPatient = `{"name":"Ann Lee","email":"a@x.com","phone":"555-1234","age":34,` +
	`"gender":"female","departmentId":1}`

func postPatient(t *testing.T, h *Handler, e *echo.Echo, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.CreatePatient(e.NewContext(req, rec))
}

func listPatients(t *testing.T, h *Handler, e *echo.Echo, query string) []Patient {
	t.Helper()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/patients"+query, nil), rec)
	if err := h.ListPatients(c); err != nil {
		t.Fatalf("%s: unexpected error: %v", query, err)
	}
	if strings.TrimSpace(rec.Body.String()) == "null" {
		t.Fatalf("%s: expected JSON array, got null", query)
	}
	var out []Patient
	json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}

func TestHandler_CreatePatient(t *testing.T) {
	h, e := newTestHandler()

	rec, err := postPatient(t, h, e, validPatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var p Patient
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.ID != 1 || p.Status != StatusActive || p.Gender != "female" {
		t.Errorf("unexpected patient: %+v", p)
	}
	if p.Address != nil {
		t.Errorf("expected nil address, got %q", *p.Address)
	}
}

func TestHandler_CreatePatient_Invalid(t *testing.T) {
	h, e := newTestHandler()

	cases := map[string]string{
		"missing gender": `{"name":"A","email":"a@x","phone":"1","age":3,"departmentId":1}`,
		"bad gender":     `{"name":"A","email":"a@x","phone":"1","age":3,"gender":"unknown","departmentId":1}`,
		"bad status":     `{"name":"A","email":"a@x","phone":"1","age":3,"gender":"male","departmentId":1,"status":"asleep"}`,
		"string age":     `{"name":"A","email":"a@x","phone":"1","age":"3","gender":"male","departmentId":1}`,
		"missing age":    `{"name":"A","email":"a@x","phone":"1","gender":"male","departmentId":1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := postPatient(t, h, e, body)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest || he.Message != msgInvalid {
				t.Fatalf("expected 400 %q, got %v", msgInvalid, err)
			}
		})
	}
}

func TestHandler_ListPatients_Search(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		h.repo.Create(ctx, &Patient{Name: "Filler", Email: "f@y.org", Phone: "000", DepartmentID: 2})
	}
	h.repo.Create(ctx, &Patient{Name: "Ann Lee", Email: "a@x.com", Phone: "555-1234", DepartmentID: 1})

	for _, q := range []string{"lee", "555", "7"} {
		got := listPatients(t, h, e, "?search="+q)
		if len(got) != 1 || got[0].ID != 7 {
			t.Errorf("search %q: expected only patient 7, got %+v", q, got)
		}
	}
	if got := listPatients(t, h, e, "?search=nobody"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestHandler_ListPatients_Precedence(t *testing.T) {
	h, e := newTestHandler()
	ctx := context.Background()
	h.repo.Create(ctx, &Patient{Name: "Ann", DepartmentID: 1})
	h.repo.Create(ctx, &Patient{Name: "Ben", DepartmentID: 2})
	h.repo.Create(ctx, &Patient{Name: "Cal", DepartmentID: 1})

	cases := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?departmentId=1", 2},
		{"?departmentId=x", 0},
		{"?search=ben&departmentId=1", 1},
		{"?search=&departmentId=2", 1},
	}
	for _, tc := range cases {
		if got := listPatients(t, h, e, tc.query); len(got) != tc.want {
			t.Errorf("%s: expected %d patients, got %d", tc.query, tc.want, len(got))
		}
	}
}

func TestHandler_UpdatePatient(t *testing.T) {
	h, e := newTestHandler()
	postPatient(t, h, e, validPatient)

	update := func(id, body string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return rec, h.UpdatePatient(c)
	}

	rec, err := update("1", `{"status":"discharged","address":"2 Elm Rd"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var p Patient
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Status != StatusDischarged || p.Address == nil || *p.Address != "2 Elm Rd" || p.Name != "Ann Lee" {
		t.Errorf("unexpected update result: %+v", p)
	}

	if _, err := update("1", `{"gender":"robot"}`); err == nil {
		t.Error("expected 400 for invalid gender")
	}
	if _, err := update("42", `{"age":1}`); err == nil || err.(*echo.HTTPError).Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %v", err)
	}
}

func TestHandler_DeletePatient(t *testing.T) {
	h, e := newTestHandler()
	postPatient(t, h, e, validPatient)

	del := func(id string) error {
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(id)
		return h.DeletePatient(c)
	}

	if err := del("1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"1", "abc"} {
		he, ok := del(id).(*echo.HTTPError)
		if !ok || he.Code != http.StatusNotFound || he.Message != msgNotFound {
			t.Errorf("delete %s: expected 404, got %v", id, he)
		}
	}
}
