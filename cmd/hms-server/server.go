package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/hospital/hms/internal/config"
	"github.com/hospital/hms/internal/domain/appointment"
	"github.com/hospital/hms/internal/domain/dashboard"
	"github.com/hospital/hms/internal/domain/department"
	"github.com/hospital/hms/internal/domain/doctor"
	"github.com/hospital/hms/internal/domain/medicalrecord"
	"github.com/hospital/hms/internal/domain/patient"
	"github.com/hospital/hms/internal/platform/db"
	"github.com/hospital/hms/internal/platform/middleware"
	"github.com/hospital/hms/internal/platform/rest"
	"github.com/hospital/hms/internal/platform/validate"
	"github.com/hospital/hms/internal/storage"
)

type serverDeps struct {
	cfg      *config.Config
	logger   zerolog.Logger
	store    *storage.Storage
	pool     *pgxpool.Pool
	registry *prometheus.Registry
}

func newServer(d serverDeps) *echo.Echo {
	cfg := d.cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = rest.ErrorHandler(d.logger)

	d.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(d.registry, "hms")

	e.Use(middleware.Recovery(d.logger))
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.Logger(d.logger, "/health", "/metrics"))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
			"storage": cfg.StorageDriver,
		})
	})
	if d.pool != nil {
		e.GET("/health/db", db.HealthHandler(d.pool))
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{})))

	api := e.Group("/api", middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
		IdleTTL:           middleware.DefaultRateLimitConfig().IdleTTL,
	}))

	s := d.store
	department.NewHandler(s.Departments).RegisterRoutes(api)
	doctor.NewHandler(s.Doctors).RegisterRoutes(api)
	patient.NewHandler(s.Patients).RegisterRoutes(api)
	appointment.NewHandler(s.Appointments).RegisterRoutes(api)
	medicalrecord.NewHandler(s.MedicalRecords).RegisterRoutes(api)
	dashboard.NewHandler(dashboard.NewService(s.Departments, s.Doctors, s.Patients, s.Appointments)).RegisterRoutes(api)

	return e
}
