// Package app assembles the HTTP server and runs it until shutdown.
package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/handler"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/logging/observes"
	"github.com/ncobase/taskboard/middleware"
)

// App represents the main application.
type App struct {
	config   *config.Config
	logger   *logger.Logger
	handler  *handler.Handler
	observes *observes.Observes
	engine   *gin.Engine
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *logger.Logger, h *handler.Handler, obs *observes.Observes) *App {
	switch cfg.RunMode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
		gin.SetMode(cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{
		config:   cfg,
		logger:   logger,
		handler:  h,
		observes: obs,
	}
	a.engine = a.setupRouter()
	return a
}

func (a *App) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Trace(),
		middleware.Logger(a.logger),
		middleware.Recovery(a.logger),
	)
	a.handler.RegisterRoutes(r)
	return r
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.engine
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sc := a.config.Server
	server := &http.Server{
		Addr:         sc.Addr(),
		Handler:      a.engine,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
		IdleTimeout:  sc.IdleTimeout,
	}

	config.Watch(a.config, func(c *config.Config) {
		a.logger.SetLevelValue(c.Logger.Level)
		a.logger.Info(context.Background(), "configuration reloaded", "log_level", c.Logger.Level)
	})

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(context.Background(), "Starting server", "addr", server.Addr,
			"sentry", a.observes.Sentry, "tracer", a.observes.Tracer)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.logger.Error(context.Background(), "Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(context.Background(), "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(context.Background(), "Server exited")
	return nil
}
