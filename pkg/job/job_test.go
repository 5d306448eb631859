package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/pkg/job"
)

func TestService_Start(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ok, failing, panicking, disabled atomic.Int32

	s := job.NewService().
		RegisterJob("ok", 5*time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		RegisterJob("failing", 5*time.Millisecond, func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}).
		RegisterJob("panicking", 5*time.Millisecond, func(context.Context) error {
			panicking.Add(1)
			panic("boom")
		}).
		TryRegisterJob(false, "disabled", 5*time.Millisecond, func(context.Context) error {
			disabled.Add(1)
			return nil
		})

	s.Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	s.Stop()

	require.Zero(t, disabled.Load())
}

func TestService_RunHasDeadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deadlines := make(chan time.Duration, 1)

	s := job.NewService().
		RegisterJob("deadline", time.Hour, func(ctx context.Context) error {
			deadline, ok := ctx.Deadline()
			if ok {
				deadlines <- time.Until(deadline)
			}

			close(deadlines)

			return nil
		}).
		RegisterJob("zero interval", 0, func(context.Context) error {
			panic("must not run")
		})

	s.Start(ctx)

	left, ok := <-deadlines
	require.True(t, ok)
	require.Greater(t, left, 59*time.Minute)

	cancel()
	s.Stop()
}
