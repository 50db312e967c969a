package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	departmentService "github.com/cmlabs-hris/attendance-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/attendance-backend-go/internal/service/employee"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)
	response.SetDebug(cfg.App.Debug)

	loc, _ := cfg.Location()
	// Timestamps read back from PostgreSQL render in the server zone
	time.Local = loc

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("Error applying migrations", "error", err)
			os.Exit(1)
		}
	}

	var locker lock.Locker = lock.Noop{}
	if cfg.Redis.Addr != "" {
		client, err := lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("Error connecting to redis", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, cfg.Redis.LockTTL)
		slog.Info("Per-employee clock lock enabled", "redis", cfg.Redis.Addr, "ttl", cfg.Redis.LockTTL)
	}

	var jwtService jwt.Service
	if cfg.JWT.Secret != "" {
		jwtService = jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	} else {
		slog.Warn("JWT_SECRET_KEY is not set, administrative routes are unauthenticated")
	}

	// Repositories
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	historyRepo := postgresql.NewHistoryRepository(db)

	// Services
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		postgresql.NewTransactor(db),
		attendanceRepo,
		historyRepo,
		employeeRepo,
		locker,
		clock.New(loc),
	)

	// Handlers
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
			JWTService:     jwtService,
			ClockRateLimit: rate.Limit(cfg.RateLimit.RPS),
			ClockBurst:     cfg.RateLimit.Burst,
		},
		departmentHandler,
		employeeHandler,
		attendanceHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
