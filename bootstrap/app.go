package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/kbukum/gdax/logger"
	"github.com/kbukum/gdax/observability"
	"github.com/kbukum/gdax/version"
)

// App runs one finite task with a configured logger and telemetry, and shuts
// both down when the task ends or the process is interrupted.
//
//	app, err := bootstrap.NewApp(&cfg)
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    return download(ctx, app.Cfg, app.Logger)
//	})
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	onStart         []Hook
	onStop          []Hook
}

// NewApp applies defaults to cfg, validates it and builds the logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetServiceConfig()
	app := &App[C]{
		Name:            base.Name,
		Version:         version.Get(),
		Cfg:             cfg,
		gracefulTimeout: 10 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		app.Logger = logger.New(base.Logging, base.Name)
		app.OnStop(func(context.Context) error { return app.Logger.Close() })
	}
	return app, nil
}

// RunTask installs telemetry, runs the start hooks, then runs task with a
// context cancelled on SIGINT or SIGTERM. Stop hooks run whatever the outcome.
// The task error wins over a shutdown error.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := a.startup(ctx); err != nil {
		return stderrors.Join(err, a.stop())
	}

	taskErr := task(ctx)
	if ctx.Err() != nil && taskErr != nil {
		a.Logger.Info("task interrupted", logger.Fields(logger.FieldError, taskErr.Error()))
	}

	if stopErr := a.stop(); stopErr != nil {
		if taskErr != nil {
			a.Logger.Warn("shutdown failed", logger.Fields(logger.FieldError, stopErr.Error()))
			return taskErr
		}
		return stopErr
	}
	return taskErr
}

func (a *App[C]) startup(ctx context.Context) error {
	a.Logger.Debug("starting", logger.Fields("name", a.Name, "version", a.Version))

	telemetry := a.Cfg.GetServiceConfig().Telemetry
	shutdown, err := observability.Setup(ctx, telemetry)
	if err != nil {
		return fmt.Errorf("telemetry setup: %w", err)
	}
	if telemetry.Endpoint != "" {
		a.OnStop(Hook(shutdown))
	}

	if err := runHooks(ctx, a.onStart); err != nil {
		return fmt.Errorf("onStart hook failed: %w", err)
	}
	return nil
}

// stop runs the stop hooks newest first within the graceful timeout and
// returns every failure joined.
func (a *App[C]) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	hooks := slices.Clone(a.onStop)
	slices.Reverse(hooks)

	var errs []error
	for _, h := range hooks {
		if err := h(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
