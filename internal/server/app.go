// Package server initializes and runs the application: it connects the
// document store, builds the services and starts the HTTP server, handling
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mygymbro/mygymbro/internal/logging"
	"github.com/mygymbro/mygymbro/internal/server/config"
	"github.com/mygymbro/mygymbro/internal/server/httpapi"
	"github.com/mygymbro/mygymbro/internal/server/repositories/mongodb"
	"github.com/mygymbro/mygymbro/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  mongodb.RepositoryManager
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := mongodb.NewMongoRepositoryManager(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userSvc := services.NewUserService(repos.Users(), cfg)
	catalogSvc := services.NewCatalogService(repos.Exercises(), repos.Meals(), repos.Users())
	workoutSvc := services.NewWorkoutService(repos.Users(), repos.UserExercises())
	picSvc := services.NewPicService(repos.Users(), cfg)

	api := httpapi.NewServer(cfg.EndpointAddrHTTP, logger,
		userSvc, catalogSvc, workoutSvc, picSvc, cfg.TokenValidityDuration)

	return &App{config: cfg, logger: logger, repos: repos, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
