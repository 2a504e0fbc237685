package medicalrecord

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/rest"
)

const (
	msgNotFound = "Medical record not found"
	msgInvalid  = "Invalid medical record data"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/medical-records", h.ListRecords)
	api.GET("/medical-records/:id", h.GetRecord)
	api.POST("/medical-records", h.CreateRecord)
	api.PUT("/medical-records/:id", h.UpdateRecord)
	api.DELETE("/medical-records/:id", h.DeleteRecord)
}

// ListRecords narrows by ?patientId, or else by ?doctorId.
func (h *Handler) ListRecords(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		records []*MedicalRecord
		err     error
	)
	switch {
	case c.QueryParam("patientId") != "":
		id, ok := rest.ParseID(c.QueryParam("patientId"))
		if !ok {
			return c.JSON(http.StatusOK, []*MedicalRecord{})
		}
		records, err = h.repo.ListByPatient(ctx, id)
	case c.QueryParam("doctorId") != "":
		id, ok := rest.ParseID(c.QueryParam("doctorId"))
		if !ok {
			return c.JSON(http.StatusOK, []*MedicalRecord{})
		}
		records, err = h.repo.ListByDoctor(ctx, id)
	default:
		records, err = h.repo.List(ctx)
	}
	if err != nil {
		return rest.Internal("Failed to fetch medical records", err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) GetRecord(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	m, err := h.repo.GetByID(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.Internal("Failed to fetch medical record", err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	if err := c.Validate(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	m := in.Record()
	if err := h.repo.Create(c.Request().Context(), m); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateRecord(c echo.Context) error {
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
	m, err := h.repo.Update(c.Request().Context(), id, &patch)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	deleted, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return rest.Internal("Failed to delete medical record", err)
	}
	if !deleted {
		return rest.NotFound(msgNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
