// Command server runs the classtrack HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/classtrack/classtrack-api/internal/config"
	"github.com/classtrack/classtrack-api/internal/platform/logger"
	"github.com/classtrack/classtrack-api/internal/platform/mongodb"
	"github.com/classtrack/classtrack-api/internal/service/auth"
	"github.com/classtrack/classtrack-api/internal/store"
)

// application holds the process-wide dependencies, constructed once at
// startup and never mutated afterward.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	courseStore  store.CourseStore
	userStore    store.UserStore
	jwtService   auth.JWTService
	hasher       *auth.BcryptHasher
	loginLimiter *auth.LoginLimiter

	cleanupFuncs []func(context.Context) error
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.setupRouter())
}

func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
	}

	db, disconnect, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.cleanupFuncs = append(app.cleanupFuncs, disconnect)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	app.courseStore = mongodb.NewCourseStore(db)
	app.userStore = mongodb.NewUserStore(db)

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Login throttling is optional; it only exists when Redis is configured.
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		app.cleanupFuncs = append(app.cleanupFuncs, func(context.Context) error {
			return rdb.Close()
		})
		app.loginLimiter = auth.NewLoginLimiter(
			rdb,
			cfg.Redis.LoginMaxAttempts,
			time.Duration(cfg.Redis.LoginWindowMinutes)*time.Minute,
		)
		log.Info("login throttling enabled", "redis_addr", cfg.Redis.Addr)
	}

	return app, nil
}

// cleanup releases application resources in reverse construction order.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for i := len(app.cleanupFuncs) - 1; i >= 0; i-- {
		if err := app.cleanupFuncs[i](ctx); err != nil {
			app.logger.Error("cleanup failed", "error", err)
		}
	}
	app.cleanupFuncs = nil
}
