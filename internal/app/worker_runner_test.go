package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"vendora-dispatch/internal/config"
	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/ports/sweeptx"
	"vendora-dispatch/internal/service/dispatch"
	testlog "vendora-dispatch/internal/testutil"
)

type countingRunner struct {
	calls atomic.Int32
}

func (r *countingRunner) WithTx(_ context.Context, _ func(sweeptx.Repository) error) error {
	r.calls.Add(1)
	return nil
}

func TestWorkerRunner_MustRun_NoPanicOnNil(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return nil }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_NoPanicOnCanceled(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_PanicsOnOtherError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &WorkerRunner{runFn: func(*dig.Container) error { return sentinel }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_ReturnsError_WhenSweeperNil(t *testing.T) {
	err := workerRun(workerIn{Ctx: context.Background(), Logger: logx.Nop()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sweeper is nil")
}

func TestWorkerRun_SweepsUntilCanceled_WithoutKafka(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := testlog.New()
	runner := &countingRunner{}
	sweeper := dispatch.NewSweeper(runner, nil, rec.Logger(), dispatch.SweepOptions{})

	var closed atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- workerRun(workerIn{
			Ctx:     ctx,
			Config:  &config.Config{Dispatch: config.Dispatch{SweepInterval: 5 * time.Millisecond}},
			Logger:  rec.Logger(),
			Sweeper: sweeper,
			Closers: []closer{{name: "redis", fn: func() error { closed.Add(1); return nil }}},
		})
	}()

	require.Eventually(t, func() bool { return runner.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	require.Equal(t, int32(1), closed.Load())
	require.True(t, rec.Has("warn", "kafka consumer disabled, only sweeping queued assignments"))
	require.True(t, rec.Has("info", "dispatch worker started"))
}
