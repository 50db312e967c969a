package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/time/rate"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	// JWTService guards administrative routes. Nil leaves them open.
	JWTService jwt.Service

	ClockRateLimit rate.Limit
	ClockBurst     int
}

func NewRouter(opts RouterOptions, departmentHandler DepartmentHandler, employeeHandler EmployeeHandler, attendanceHandler AttendanceHandler) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	adminOnly := func(r chi.Router) chi.Router {
		if opts.JWTService == nil {
			return r
		}
		return r.With(
			jwtauth.Verifier(opts.JWTService.JWTAuth()),
			middleware.AuthRequired(opts.JWTService.JWTAuth()),
			middleware.AdminOnly,
		)
	}

	clockLimit := middleware.RateLimitByIP(opts.ClockRateLimit, opts.ClockBurst)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.List)
			adminOnly(r).Post("/", departmentHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", departmentHandler.Get)
				adminOnly(r).Put("/", departmentHandler.Update)
				adminOnly(r).Delete("/", departmentHandler.Delete)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			adminOnly(r).Post("/", employeeHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				adminOnly(r).Put("/", employeeHandler.Update)
				adminOnly(r).Delete("/", employeeHandler.Delete)
			})
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.With(clockLimit).Post("/", attendanceHandler.ClockIn)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.With(clockLimit).Put("/", attendanceHandler.ClockOut)
				adminOnly(r).Delete("/", attendanceHandler.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}
