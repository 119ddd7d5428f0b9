package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"planregistry/docs"
	"planregistry/internal/config"
	"planregistry/internal/database"
	"planregistry/internal/database/migration"
	handlers "planregistry/internal/http/handler"
	"planregistry/internal/http/middleware"
	"planregistry/internal/otel"
	"planregistry/internal/repository/postgres"
	"planregistry/internal/service"
	"planregistry/internal/storage"
	"planregistry/web"
)

// @title Master Plan Registry API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing degrades to a noop on exporter failure; only a config error aborts.
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// The document store is the only hard startup dependency.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	files, err := newFileStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize file store: %v", err)
	}

	repo := postgres.NewMasterPlanPostgres(db)
	svc := service.NewMasterPlanService(repo, files)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Leave headroom above the 10 MiB attachment limit so oversize uploads
		// reach the service and get a proper validation response.
		BodyLimit: 12 * 1024 * 1024,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, svc)

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

	// Embedded client application; registered last so API routes win.
	web.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newFileStore(cfg *config.AppConfig) (storage.FileStore, error) {
	if cfg.Storage.Driver == "s3" {
		return storage.NewMinIO(cfg.MinIO)
	}
	return storage.NewLocal(cfg.Storage.UploadDir)
}
