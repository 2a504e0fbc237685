package appointment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/rest"
)

const (
	msgNotFound = "Appointment not found"
	msgInvalid  = "Invalid appointment data"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.ListAppointments)
	api.GET("/appointments/:id", h.GetAppointment)
	api.POST("/appointments", h.CreateAppointment)
	api.PUT("/appointments/:id", h.UpdateAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)
}

// ListAppointments applies the first present filter of ?patientId, ?doctorId
// and ?date, in that order.
func (h *Handler) ListAppointments(c echo.Context) error {
	ctx := c.Request().Context()
	empty := []*Appointment{}

	var (
		appts []*Appointment
		err   error
	)
	switch {
	case c.QueryParam("patientId") != "":
		id, ok := rest.ParseID(c.QueryParam("patientId"))
		if !ok {
			return c.JSON(http.StatusOK, empty)
		}
		appts, err = h.repo.ListByPatient(ctx, id)
	case c.QueryParam("doctorId") != "":
		id, ok := rest.ParseID(c.QueryParam("doctorId"))
		if !ok {
			return c.JSON(http.StatusOK, empty)
		}
		appts, err = h.repo.ListByDoctor(ctx, id)
	case c.QueryParam("date") != "":
		appts, err = h.repo.ListByDate(ctx, c.QueryParam("date"))
	default:
		appts, err = h.repo.List(ctx)
	}
	if err != nil {
		return rest.Internal("Failed to fetch appointments", err)
	}
	return c.JSON(http.StatusOK, appts)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	a, err := h.repo.GetByID(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.Internal("Failed to fetch appointment", err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	if err := c.Validate(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	a := in.Appointment()
	if err := h.repo.Create(c.Request().Context(), a); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	if err := c.Validate(&patch); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	a, err := h.repo.Update(c.Request().Context(), id, &patch)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	deleted, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return rest.Internal("Failed to delete appointment", err)
	}
	if !deleted {
		return rest.NotFound(msgNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
