// Package job runs maintenance functions periodically in the background.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs each registered job once at Start and then on every tick of its interval, until the
// context passed to Start is done. A run is bounded by its interval.
type Service struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewService() *Service {
	return &Service{}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob registers the job only when isEnabled is set.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		return s
	}

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})

	return s
}

func (s *Service) Start(ctx context.Context) {
	s.wg.Add(len(s.jobs))

	for _, j := range s.jobs {
		go s.loop(ctx, j)
	}
}

// Stop waits for running jobs to return. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}

func (s *Service) loop(ctx context.Context, j job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		started := time.Now()

		if err := run(ctx, l, j); err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done", "took", time.Since(started))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func run(ctx context.Context, l *slog.Logger, j job) (err error) {
	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.fn(ctx)
}
