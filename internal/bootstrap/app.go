// Package bootstrap wires configuration, storage, repositories, services
// and handlers into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edalcin/medlog/internal/attachments"
	"github.com/edalcin/medlog/internal/consultations"
	"github.com/edalcin/medlog/internal/dashboard"
	"github.com/edalcin/medlog/internal/professionals"
	"github.com/edalcin/medlog/internal/shared/config"
	"github.com/edalcin/medlog/internal/shared/server"
	"github.com/edalcin/medlog/internal/shared/storage/db"
	localstore "github.com/edalcin/medlog/internal/shared/storage/object/local"
)

// App holds the shared dependencies of a running instance.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ProfessionalsRepo professionals.Repo
	ConsultationsRepo consultations.Repo
	AttachmentsRepo   attachments.Repo

	ProfessionalsService *professionals.Service
	ConsultationsService *consultations.Service
	AttachmentsService   *attachments.Service
}

// Build prepares all dependencies, applies migrations and mounts routes.
// Without a DATABASE_URL the app runs on in-memory repositories (dev and
// tests); in production the database is required.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	if sqlDB != nil {
		app.ProfessionalsRepo = &professionals.PGRepo{DB: sqlDB}
		app.ConsultationsRepo = &consultations.PGRepo{DB: sqlDB}
		app.AttachmentsRepo = &attachments.PGRepo{DB: sqlDB}
	} else {
		app.ProfessionalsRepo = professionals.NewMemoryRepo()
		app.ConsultationsRepo = consultations.NewMemoryRepo()
		app.AttachmentsRepo = attachments.NewMemoryRepo()
	}

	store := localstore.New(cfg.UploadDir)

	app.AttachmentsService = &attachments.Service{
		Repo:              app.AttachmentsRepo,
		Store:             store,
		AllowedExtensions: cfg.AllowedExtensions,
	}
	app.ProfessionalsService = &professionals.Service{
		Repo:          app.ProfessionalsRepo,
		Consultations: app.ConsultationsRepo,
	}
	app.ConsultationsService = &consultations.Service{
		Repo:          app.ConsultationsRepo,
		Professionals: app.ProfessionalsRepo,
		Files:         app.AttachmentsService,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Professionals: professionals.NewHandler(app.ProfessionalsService),
		Consultations: consultations.NewHandler(app.ConsultationsService, app.AttachmentsService),
		Attachments:   attachments.NewHandler(app.AttachmentsService, store),
		Dashboard:     dashboard.NewHandler(app.ProfessionalsRepo, app.ConsultationsRepo, app.AttachmentsRepo),
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, err
	}

	// Schema must be current before any traffic is served.
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}
