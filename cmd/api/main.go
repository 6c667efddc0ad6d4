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

	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/rota-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/rota-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/security"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository/postgresql"
	authService "github.com/cmlabs-hris/rota-backend-go/internal/service/auth"
	availabilityService "github.com/cmlabs-hris/rota-backend-go/internal/service/availability"
	dataService "github.com/cmlabs-hris/rota-backend-go/internal/service/data"
	holidayService "github.com/cmlabs-hris/rota-backend-go/internal/service/holiday"
	homeService "github.com/cmlabs-hris/rota-backend-go/internal/service/home"
	notificationService "github.com/cmlabs-hris/rota-backend-go/internal/service/notification"
	reportService "github.com/cmlabs-hris/rota-backend-go/internal/service/report"
	rotaService "github.com/cmlabs-hris/rota-backend-go/internal/service/rota"
	staffService "github.com/cmlabs-hris/rota-backend-go/internal/service/staff"
)

const (
	appName    = "staff-rota"
	appVersion = "1.0.0"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := appHTTP.RouterOptions{
		AppName:        appName,
		Version:        appVersion,
		Env:            cfg.App.Env,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}
	logger := appHTTP.NewLogger(opts)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	hasher := security.NewPINHasher(cfg.Security.PINHashCost)
	data := dataService.NewDataService(repos, hasher)
	if err := data.EnsureSeeded(ctx); err != nil {
		return fmt.Errorf("seeding staff directory: %w", err)
	}

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub(16)
	notifier := notificationService.NewNotificationService(repos.Notifications, hub)
	staffSvc := staffService.NewStaffService(repos, hasher, notifier)
	rotaSvc := rotaService.NewRotaService(repos.Shifts, staffSvc, notifier)
	authSvc := authService.NewAuthService(staffSvc, jwtSvc)
	availabilitySvc := availabilityService.NewAvailabilityService(repos.Availability, staffSvc)
	holidaySvc := holidayService.NewHolidayService(repos.Holidays, staffSvc, notifier)
	reportSvc := reportService.NewReportService(repos.Staff, repos.Shifts)
	homeSvc := homeService.NewHomeService(rotaSvc, repos.Holidays, repos.Availability, notifier)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Staff:        appHTTP.NewStaffHandler(staffSvc),
		Rota:         appHTTP.NewRotaHandler(rotaSvc),
		Availability: appHTTP.NewAvailabilityHandler(availabilitySvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Home:         appHTTP.NewHomeHandler(homeSvc),
		Notification: appHTTP.NewNotificationHandler(notifier, authSvc),
		Data:         appHTTP.NewDataHandler(data),
	}
	router := appHTTP.NewRouter(logger, opts, jwtSvc, handlers)

	scheduler := cron.NewScheduler(ctx)
	cron.NewTokenJobs(jwtSvc).RegisterJobs(scheduler, cfg.Jobs.RevokedTokenSweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "port", cfg.App.Port, "storage", cfg.Storage.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore returns the repository set for the configured driver and a
// function releasing its resources.
func openStore(ctx context.Context, cfg *config.Config) (repository.Set, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: cfg.Database.MaxConns})
		if err != nil {
			return repository.Set{}, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return repository.Set{}, nil, fmt.Errorf("ensuring schema: %w", err)
		}
		slog.Info("Using PostgreSQL storage", "host", cfg.Database.Host, "database", cfg.Database.Name)
		return postgresql.NewSet(db), db.Close, nil
	default:
		slog.Info("Using in-memory storage")
		return memory.NewSet(), func() {}, nil
	}
}
