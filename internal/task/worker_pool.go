package task

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkerCount is used when no valid worker count is configured.
const DefaultWorkerCount = 10

// Unit is a single piece of work submitted to the pool.
type Unit func(ctx context.Context) error

// WorkerPool runs units with a fixed upper bound on concurrency.
// A WorkerPool holds no per-run state and may be used by concurrent callers.
type WorkerPool struct {
	// workerCount is the maximum number of units running at once
	workerCount int

	// logger for structured logging
	logger *slog.Logger
}

// WorkerPoolConfig holds configuration options for the worker pool
type WorkerPoolConfig struct {
	// WorkerCount determines how many units may run concurrently.
	// If zero or negative, DefaultWorkerCount is used.
	WorkerCount int
}

// DefaultWorkerPoolConfig returns a WorkerPoolConfig with reasonable defaults
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		WorkerCount: DefaultWorkerCount,
	}
}

// NewWorkerPool creates a new worker pool with the specified configuration
func NewWorkerPool(config WorkerPoolConfig, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", DefaultWorkerCount)
	}

	return &WorkerPool{
		workerCount: workerCount,
		logger:      logger,
	}
}

// WorkerCount returns the concurrency bound of the pool.
func (p *WorkerPool) WorkerCount() int {
	return p.workerCount
}

// Run executes every unit, at most WorkerCount at a time, and returns only
// after all of them have finished. A unit that fails or panics is reported
// to onError with its index and does not affect the others.
func (p *WorkerPool) Run(ctx context.Context, units []Unit, onError func(index int, err error)) {
	var g errgroup.Group
	g.SetLimit(p.workerCount)

	for i, unit := range units {
		g.Go(func() error {
			if err := p.execute(ctx, unit); err != nil && onError != nil {
				onError(i, err)
			}
			// Failures go to onError; the group itself never sees them.
			return nil
		})
	}

	_ = g.Wait()
	p.logger.Debug("worker pool run finished", slog.Int("units", len(units)))
}

// execute runs a unit, converting a panic into an error.
func (p *WorkerPool) execute(ctx context.Context, unit Unit) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unit panicked: %v", r)
		}
	}()
	return unit(ctx)
}
