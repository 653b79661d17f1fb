// Package app wires configuration, storage, and services into a single
// container shared by the CLI and worker binaries.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	analyticsServices "github.com/felixgeelhaar/cadence/internal/analytics/application/services"
	analyticsDomain "github.com/felixgeelhaar/cadence/internal/analytics/domain"
	trackingServices "github.com/felixgeelhaar/cadence/internal/tracking/application/services"
	"github.com/felixgeelhaar/cadence/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/cadence/migrations"
	"github.com/felixgeelhaar/cadence/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Local record store. Always open; tracking commands write here.
	DB *sql.DB

	// Optional PostgreSQL pool, only when DATABASE_URL is set. Analytics
	// reads switch to it; tracking writes stay on the local store.
	Pool *pgxpool.Pool

	ActivityRepo *persistence.SQLiteActivityRepository
	SessionRepo  *persistence.SQLiteSessionRepository
	SlotRepo     *persistence.SQLiteSlotRepository
	DiaryRepo    *persistence.SQLiteDiaryRepository

	TrackingService *trackingServices.TrackingService
	Engine          *analyticsServices.Engine
}

// NewContainer builds the dependency graph from configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	dbConn, err := openSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     dbConn,
	}

	c.ActivityRepo = persistence.NewSQLiteActivityRepository(dbConn)
	c.SessionRepo = persistence.NewSQLiteSessionRepository(dbConn)
	c.SlotRepo = persistence.NewSQLiteSlotRepository(dbConn)
	c.DiaryRepo = persistence.NewSQLiteDiaryRepository(dbConn)

	c.TrackingService = trackingServices.NewTrackingService(
		c.ActivityRepo, c.SessionRepo, c.SlotRepo, c.DiaryRepo, loc, logger,
	)

	var source analyticsDomain.DataSource = persistence.NewSQLiteAnalyticsSource(dbConn)
	if cfg.UsePostgres() {
		pool, err := openPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Pool = pool
		source = persistence.NewPostgresAnalyticsSource(pool)
		logger.Info("analytics reads use PostgreSQL")
	}

	c.Engine = analyticsServices.NewEngine(source, loc, logger)

	return c, nil
}

// Close releases database resources.
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dbConn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := dbConn.ExecContext(ctx, pragma); err != nil {
			_ = dbConn.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	scripts, err := migrations.SQLiteUp()
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	for _, script := range scripts {
		if _, err := dbConn.ExecContext(ctx, script); err != nil {
			_ = dbConn.Close()
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return dbConn, nil
}

func openPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
