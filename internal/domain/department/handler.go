package department

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/rest"
)

const (
	msgNotFound = "Department not found"
	msgInvalid  = "Invalid department data"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/departments", h.ListDepartments)
	api.GET("/departments/:id", h.GetDepartment)
	api.POST("/departments", h.CreateDepartment)
	api.PUT("/departments/:id", h.UpdateDepartment)
	api.DELETE("/departments/:id", h.DeleteDepartment)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	depts, err := h.repo.List(c.Request().Context())
	if err != nil {
		return rest.Internal("Failed to fetch departments", err)
	}
	return c.JSON(http.StatusOK, depts)
}

func (h *Handler) GetDepartment(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	dept, err := h.repo.GetByID(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.Internal("Failed to fetch department", err)
	}
	return c.JSON(http.StatusOK, dept)
}

func (h *Handler) CreateDepartment(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	if err := c.Validate(&in); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	dept := in.Department()
	if err := h.repo.Create(c.Request().Context(), dept); err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusCreated, dept)
}

func (h *Handler) UpdateDepartment(c echo.Context) error {
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
	dept, err := h.repo.Update(c.Request().Context(), id, &patch)
	if errors.Is(err, ErrNotFound) {
		return rest.NotFound(msgNotFound)
	}
	if err != nil {
		return rest.BadRequest(msgInvalid, err)
	}
	return c.JSON(http.StatusOK, dept)
}

func (h *Handler) DeleteDepartment(c echo.Context) error {
	id, ok := rest.PathID(c)
	if !ok {
		return rest.NotFound(msgNotFound)
	}
	deleted, err := h.repo.Delete(c.Request().Context(), id)
	if err != nil {
		return rest.Internal("Failed to delete department", err)
	}
	if !deleted {
		return rest.NotFound(msgNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
