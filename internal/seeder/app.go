// Package seeder wires configuration, storage, the dataset generator and
// run reporting into one seeding run.
package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/homeseed/internal/logging"
	"github.com/dmitrijs2005/homeseed/internal/seeder/config"
	"github.com/dmitrijs2005/homeseed/internal/seeder/generator"
	"github.com/dmitrijs2005/homeseed/internal/seeder/report"
	"github.com/dmitrijs2005/homeseed/internal/seeder/repositories/repomanager"
)

var (
	openDB = func(dsn string) (*sql.DB, error) { return sql.Open("pgx", dsn) }
	now    = time.Now
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	out     io.Writer
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	return &App{
		config:  c,
		logger:  logger,
		manager: repomanager.NewPostgresRepositoryManager(),
		out:     os.Stdout,
	}
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// params maps the configured dataset shape onto generator parameters.
func (app *App) params(at time.Time) generator.Params {
	p := generator.DefaultParams(at)
	c := app.config
	p.UserCount = c.Users
	p.MinResidences, p.MaxResidences = c.MinResidences, c.MaxResidences
	p.MinScans, p.MaxScans = c.MinScans, c.MaxScans
	p.MaxObjectsPerScan = c.MaxObjectsPerScan
	p.MaxHistoryPerObject = c.MaxHistoryPerObject
	p.MinCatalog, p.MaxCatalog = c.MinCatalog, c.MaxCatalog
	p.BaseStart = at.Add(-c.HistoryWindow)
	return p
}

// connect opens the database, verifies it answers within the connect
// timeout and prepares the schema.
func (app *App) connect(ctx context.Context) (*sql.DB, error) {
	db, err := openDB(app.config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, app.config.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := app.manager.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if app.config.Reset {
		if err := app.manager.Reset(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("reset: %w", err)
		}
		app.logger.Info(ctx, "collections emptied")
	}
	return db, nil
}

func (app *App) repositories(ctx context.Context) (repomanager.Repositories, func(), error) {
	if app.config.DryRun {
		app.logger.Info(ctx, "dry run, seeding into memory")
		return repomanager.NewInMemoryStore().Repositories(), func() {}, nil
	}

	db, err := app.connect(ctx)
	if err != nil {
		return repomanager.Repositories{}, nil, err
	}
	return repomanager.Bind(app.manager, db), func() { _ = db.Close() }, nil
}

// Run performs one seeding run and publishes its report. Only failures to
// reach storage or to generate data are returned; publishing problems are
// logged.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := app.initSignalHandler(ctx)
	defer cancel()

	started := now()
	seed := app.config.Seed
	if seed == 0 {
		seed = uint64(started.UnixNano())
	}

	stats := report.New(seed, started)
	logger := app.logger.With("run_id", stats.RunID)
	logger.Info(ctx, "starting seeding run", "seed", seed, "dry_run", app.config.DryRun)

	repos, closeFn, err := app.repositories(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	factory := generator.NewFactory(rng, app.config.PasswordCost)

	gen, err := generator.New(repos, app.params(started), rng, factory, logger, stats)
	if err != nil {
		return err
	}

	stats.DryRun = app.config.DryRun
	runErr := gen.Run(ctx)
	stats.Finish(now())

	app.publish(ctx, logger, stats)

	if runErr != nil {
		return fmt.Errorf("seeding: %w", runErr)
	}
	logger.Info(ctx, "seeding finished", "duration", stats.Duration().String())
	return nil
}

// publish emits the report: always to stdout and ReportDir, and to S3 and
// the Pushgateway when they are configured.
func (app *App) publish(ctx context.Context, logger logging.Logger, stats *report.Report) {
	// the run may have been cancelled; still try to deliver what was written
	ctx = context.WithoutCancel(ctx)

	if err := stats.Print(app.out); err != nil {
		logger.Warn(ctx, "print report", "error", err)
	}

	if app.config.ReportDir != "" {
		path, err := stats.WriteFile(app.config.ReportDir)
		if err != nil {
			logger.Warn(ctx, "write report", "error", err)
		} else {
			logger.Info(ctx, "report written", "path", path)
		}
	}

	if app.config.S3Bucket != "" {
		pub, err := report.NewS3Publisher(ctx, report.S3Config{
			Region:       app.config.S3Region,
			Bucket:       app.config.S3Bucket,
			BaseEndpoint: app.config.S3BaseEndpoint,
			AccessKey:    app.config.S3RootUser,
			SecretKey:    app.config.S3RootPassword,
		})
		if err == nil {
			var key string
			key, err = pub.Publish(ctx, stats)
			if err == nil {
				logger.Info(ctx, "report uploaded", "bucket", app.config.S3Bucket, "key", key)
			}
		}
		if err != nil {
			logger.Warn(ctx, "upload report", "error", err)
		}
	}

	if app.config.PushgatewayURL != "" {
		if err := report.PushMetrics(ctx, app.config.PushgatewayURL, stats); err != nil {
			logger.Warn(ctx, "push metrics", "error", err)
		}
	}
}
