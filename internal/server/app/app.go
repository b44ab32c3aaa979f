package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coursepilot/coursepilot/internal/server/filestore"
	httpapi "github.com/coursepilot/coursepilot/internal/server/http"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/internal/server/store/drivers/sqlite"
	"github.com/coursepilot/coursepilot/pkg/cryptox"
	"github.com/coursepilot/coursepilot/pkg/metricsx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the server with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	files   *filestore.Store
	metrics *metricsx.Metrics

	authService         *service.AuthService
	sessionService      *service.SessionService
	resultService       *service.ResultService
	paymentService      *service.PaymentService
	profileService      *service.ProfileService
	adminService        *service.AdminService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "coursepilot",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	files, err := filestore.New(cfg.UploadDir)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	app.files = files
	app.metrics = metricsx.New("http")

	app.initServices()

	if err := service.SeedAdmin(context.Background(), app.db, app.logger,
		cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("server starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("server stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.sessionService = &service.SessionService{
		Store: app.db,
		TTL:   app.cfg.SessionTTL,
	}
	app.resultService = &service.ResultService{Store: app.db}
	app.paymentService = &service.PaymentService{
		Store: app.db,
		Files: app.files,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.adminService = &service.AdminService{
		Store:       app.db,
		CoursePrice: app.cfg.CoursePrice,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.files,
		app.metrics,
		app.cfg.CookieSecure,
		app.logger,
	)

	app.router.AuthService = app.authService
	app.router.SessionService = app.sessionService
	app.router.ResultService = app.resultService
	app.router.PaymentService = app.paymentService
	app.router.ProfileService = app.profileService
	app.router.AdminService = app.adminService

	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}
}
