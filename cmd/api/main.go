package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/pratik-mahalle/usuarios-api/internal/api/handlers"
	"github.com/pratik-mahalle/usuarios-api/internal/api/middleware"
	"github.com/pratik-mahalle/usuarios-api/internal/api/router"
	"github.com/pratik-mahalle/usuarios-api/internal/config"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/logger"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/validator"
	"github.com/pratik-mahalle/usuarios-api/internal/repository/postgres"
	"github.com/pratik-mahalle/usuarios-api/internal/services"
	"github.com/pratik-mahalle/usuarios-api/internal/worker"
	"github.com/pratik-mahalle/usuarios-api/migrations"
)

// @title API de Gestión de Usuarios
// @version 1.0
// @description CRUD service for user records with lifecycle states and premium upgrades.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Level: "error", Format: "json"}).Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.ErrorWithErr(err, "Server exited with error")
		os.Exit(1)
	}
	log.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) (err error) {
	db, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	log.WithFields(map[string]interface{}{
		"driver": cfg.Database.Driver,
	}).Info("Database connected")

	dialect := postgres.DialectFor(cfg.Database.Driver)

	if cfg.Database.AutoMigrate {
		fsys, err := migrations.ForDriver(cfg.Database.Driver)
		if err != nil {
			return err
		}
		applied, err := postgres.RunMigrations(ctx, db, dialect, fsys)
		if err != nil {
			return err
		}
		log.WithFields(map[string]interface{}{
			"applied": applied,
		}).Info("Migrations up to date")
	}

	store := postgres.NewStore(db, dialect)
	usuarioService := services.NewUsuarioService(store, log)

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	val := validator.New()
	h := &router.Handlers{
		Health:  handlers.NewHealthHandler(store, log),
		Root:    handlers.NewRootHandler(),
		Usuario: handlers.NewUsuarioHandler(usuarioService, log, val),
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.New(cfg, log, limiter, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	scheduler := worker.NewScheduler(log, 30*time.Second)
	if cfg.Worker.StatsEnabled {
		if err := scheduler.Add("user-stats", cfg.Worker.StatsSchedule, worker.StatsJob(usuarioService)); err != nil {
			return err
		}
		// Publish gauges before the first tick
		_ = scheduler.RunNow(ctx, "user-stats")
	}
	if limiter != nil {
		if err := scheduler.Add("rate-limit-cleanup", "@every 5m", worker.CleanupJob(limiter)); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return scheduler.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
