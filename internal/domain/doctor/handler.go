package doctor

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/rest"
)

const (
	msgNotFound = "Doctor not found"
	msgInvalid  = "Invalid doctor data"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.POST("/doctors", h.CreateDoctor)
	api.PUT("/doctors/:id", h.UpdateDoctor)
	api.DELETE("/doctors/:id", h.DeleteDoctor)
}

// ListDoctors narrows by ?departmentId when it is present.
func (h *Handler) ListDoctors(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		docs []*Doctor
		err  error
	)
	if v := c.QueryParam("departmentId"); v != "" {
		deptID, ok := rest.ParseID(v)
		if !ok {
			return c.JSON(http.StatusOK, []*Doctor{})
		}
		docs, err = h.repo.ListByDepartment(ctx, deptID)
	} else {
		docs, err = h.repo.List(ctx)
	}
	if err != nil {
		return rest.Internal("Failed to fetch doctors", err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	doc, err := h.repo.GetByID(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.Internal("Failed to fetch doctor", err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	if err := c.Validate(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	doc := in.Doctor()
	if err := h.repo.Create(c.Request().Context(), doc); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
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
	doc, err := h.repo.Update(c.Request().Context(), id, &patch)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	deleted, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return rest.Internal("Failed to delete doctor", err)
	}
	if !deleted {
		return rest.NotFound(msgNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
