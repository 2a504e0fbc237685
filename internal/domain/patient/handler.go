package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/rest"
)

const (
	msgNotFound = "Patient not found"
	msgInvalid  = "Invalid patient data"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
	api.POST("/patients", h.CreatePatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

// ListPatients applies ?search first, then ?departmentId. Other filters are
// ignored once one has matched.
func (h *Handler) ListPatients(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		patients []*Patient
		err      error
	)
	switch {
	case c.QueryParam("search") != "":
		patients, err = h.repo.Search(ctx, c.QueryParam("search"))
	case c.QueryParam("departmentId") != "":
		deptID, ok := rest.ParseID(c.QueryParam("departmentId"))
		if !ok {
			return c.JSON(http.StatusOK, []*Patient{})
		}
		patients, err = h.repo.ListByDepartment(ctx, deptID)
	default:
		patients, err = h.repo.List(ctx)
	}
	if err != nil {
		return rest.Internal("Failed to fetch patients", err)
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	p, err := h.repo.GetByID(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.Internal("Failed to fetch patient", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	if err := c.Validate(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	p := in.Patient()
	if err := h.repo.Create(c.Request().Context(), p); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
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
	p, err := h.repo.Update(c.Request().Context(), id, &patch)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	deleted, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return rest.Internal("Failed to delete patient", err)
	}
	if !deleted {
		return rest.NotFound(msgNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
