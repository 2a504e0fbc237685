package dashboard

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hospital/hms/internal/platform/rest"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 100
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/dashboard")
	g.GET("/stats", h.GetStats)
	g.GET("/recent-appointments", h.ListRecentAppointments)
}

func (h *Handler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return rest.Internal("Failed to fetch dashboard stats", err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListRecentAppointments falls back to the default limit when ?limit is
// missing or not a positive integer.
func (h *Handler) ListRecentAppointments(c echo.Context) error {
	limit := defaultRecentLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	appts, err := h.svc.RecentAppointments(c.Request().Context(), limit)
	if err != nil {
		return rest.Internal("Failed to fetch appointments", err)
	}
	return c.JSON(http.StatusOK, appts)
}
