package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docmanager/docs"
	"docmanager/internal/config"
	"docmanager/internal/database"
	"docmanager/internal/database/migration"
	handlers "docmanager/internal/http/handler"
	"docmanager/internal/http/middleware"
	"docmanager/internal/logging"
	"docmanager/internal/otel"
	"docmanager/internal/repository"
	"docmanager/internal/repository/postgres"
	"docmanager/internal/repository/seed"
	"docmanager/internal/service"
	"docmanager/internal/storage"
	"docmanager/internal/store"
	"docmanager/internal/upload"
	"docmanager/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title Document Manager API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Location, logging.ParseLevel(cfg.LogLevel))

	if err := run(cfg, log); err != nil {
		log.Error("server_exit", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return err
	}

	db, repo, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	objects, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}

	ws := service.NewWorkspace(
		store.New(),
		log,
		metrics,
		service.WithLocation(cfg.Location),
		service.WithObjectStorage(objects),
	)
	if err := ws.Load(ctx, repo, cfg.DefaultUserID); err != nil {
		return err
	}

	pool := worker.NewPool(context.Background(), cfg.Upload.Workers, cfg.Upload.Workers*16, log)
	uploads := upload.NewManager(ws, objects, pool, log,
		upload.WithMaxBytes(cfg.Upload.MaxBytes),
		upload.WithTick(cfg.Upload.Tick),
		upload.WithRecorder(metrics),
	)

	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             int(cfg.Upload.MaxBytes) * 4,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMW.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        db,
		Workspace: ws,
		Objects:   objects,
		Uploads:   uploads,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_listening", slog.String("addr", addr), slog.String("catalog", cfg.SeedSource), slog.String("storage", cfg.StorageDriver))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		app.ShutdownWithContext(shutdownCtx),
		pool.Shutdown(shutdownCtx),
		shutdownTracing(shutdownCtx),
	)
}

// openCatalog returns the seed catalog source. db is nil for the built-in mock.
func openCatalog(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*sql.DB, repository.CatalogRepository, error) {
	if cfg.SeedSource != config.SeedPostgres {
		return nil, seed.Catalog{}, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	return db, postgres.NewCatalogPostgres(db), nil
}

func openStorage(ctx context.Context, cfg *config.AppConfig) (storage.Storage, error) {
	if cfg.StorageDriver == config.StorageMinIO {
		// Initialize reusable S3-compatible object storage client (MinIO-supported)
		return storage.NewMinIO(ctx, cfg.MinIO)
	}
	return storage.NewMemory(), nil
}
