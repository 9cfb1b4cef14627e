package app

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"vendora-dispatch/internal/config"
	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/service/dispatch"
	"vendora-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the order-event consumer and the queued-assignment sweeper.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun runs the worker and panics on any error other than cancellation.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Config   *config.Config
	Pool     *pgxpool.Pool
	Logger   logx.Logger
	Consumer *kafka.Consumer
	Sweeper  *dispatch.Sweeper
	Closers  []closer `group:"closers"`
}

func workerRun(in workerIn) error {
	if in.Sweeper == nil {
		return errors.New("sweeper is nil: worker container misconfigured")
	}
	defer closeWorker(in)

	g, ctx := errgroup.WithContext(in.Ctx)
	if in.Consumer != nil {
		g.Go(func() error { return in.Consumer.Run(ctx) })
	} else {
		in.Logger.Warn("kafka consumer disabled, only sweeping queued assignments")
	}
	g.Go(func() error { return in.Sweeper.Run(ctx, in.Config.Dispatch.SweepInterval) })

	in.Logger.Info("dispatch worker started")
	return g.Wait()
}

func closeWorker(in workerIn) {
	if in.Consumer != nil {
		if err := in.Consumer.Close(); err != nil {
			in.Logger.Error("kafka close error", logx.Err(err))
		}
	}
	closeAll(in.Logger, in.Closers)
	if in.Pool != nil {
		in.Pool.Close()
	}
}

func closeAll(logger logx.Logger, closers []closer) {
	for _, c := range closers {
		if c.fn == nil {
			continue
		}
		if err := c.fn(); err != nil {
			logger.Error("resource close error", logx.String("resource", c.name), logx.Err(err))
		}
	}
}
