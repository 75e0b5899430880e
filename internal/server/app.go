// Package server wires the reference sighting server together: storage,
// seed data, photo resolution, services and the HTTP API. It also handles
// graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/animalspotter/internal/logging"
	"github.com/dmitrijs2005/animalspotter/internal/server/config"
	"github.com/dmitrijs2005/animalspotter/internal/server/httpapi"
	"github.com/dmitrijs2005/animalspotter/internal/server/photos"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/animalspotter/internal/server/services"
)

var (
	logOutput      io.Writer = os.Stdout
	newRepoManager = repomanager.New
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	repos           repomanager.RepositoryManager
	userService     *services.UserService
	sightingService *services.SightingService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(logOutput, c.LogLevel)

	rm, err := newRepoManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	if err := rm.Seed(ctx, repomanager.DefaultSightings()); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	resolver, err := newResolver(ctx, c)
	if err != nil {
		_ = rm.Close()
		return nil, err
	}

	return &App{
		config:          c,
		logger:          logger,
		repos:           rm,
		userService:     services.NewUserService(rm.Users(), c.SecretKey, c.TokenValidityDuration),
		sightingService: services.NewSightingService(rm.Sightings(), resolver),
	}, nil
}

// newResolver prefers S3 presigning when a bucket is configured.
func newResolver(ctx context.Context, c *config.Config) (photos.Resolver, error) {
	if c.S3Bucket != "" {
		r, err := photos.NewS3Resolver(ctx, photos.S3Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		return r, nil
	}

	r, err := photos.NewStaticResolver(c.PhotoBaseURL)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// initSignalHandler cancels the app on SIGINT, SIGTERM or SIGQUIT. The
// returned channel is closed once the watcher has stopped listening, which
// happens on the first signal or when ctx is done.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", sig.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return stopped
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.sightingService, app.config.PhotoDir)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// HTTP server fails. Storage is closed before returning.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	signalsStopped := app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	cancelFunc()
	<-signalsStopped

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing storage failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
