package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/items-api/internal/domain"
	"github.com/phrazzld/items-api/internal/platform/logger"
	"github.com/phrazzld/items-api/internal/redact"
	"github.com/phrazzld/items-api/internal/store"
)

// ProcessorConfig configures an ItemProcessor.
type ProcessorConfig struct {
	// WorkerCount bounds how many items are processed at once.
	WorkerCount int

	// UnitTimeout bounds the store calls of a single item. Zero disables it.
	UnitTimeout time.Duration
}

// RunSummary describes one completed ProcessAll call.
type RunSummary struct {
	RunID     uuid.UUID
	Total     int
	Processed int
	Skipped   int
	Failed    int
	Duration  time.Duration
}

// ItemProcessor marks every stored item as processed.
type ItemProcessor struct {
	itemStore   store.ItemStore
	pool        *WorkerPool
	unitTimeout time.Duration
	logger      *slog.Logger
}

// NewItemProcessor creates an ItemProcessor backed by itemStore.
func NewItemProcessor(itemStore store.ItemStore, config ProcessorConfig, logger *slog.Logger) (*ItemProcessor, error) {
	if itemStore == nil {
		return nil, errors.New("itemStore cannot be nil")
	}
	if config.UnitTimeout < 0 {
		return nil, fmt.Errorf("unit timeout must not be negative, got %s", config.UnitTimeout)
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "item_processor")

	initPrometheusMetrics()

	return &ItemProcessor{
		itemStore:   itemStore,
		pool:        NewWorkerPool(WorkerPoolConfig{WorkerCount: config.WorkerCount}, logger),
		unitTimeout: config.UnitTimeout,
		logger:      logger,
	}, nil
}

// ProcessAll sets the status of every stored item to domain.StatusProcessed
// and returns the saved items once all of them have been handled.
//
// Items deleted before they are loaded or saved are skipped and never
// recreated. Items whose load
// or save fails are logged and left out of the result. An error is returned
// only when the item IDs cannot be listed. Once listing succeeded the run is
// not cancelled with ctx; every item is still handled. The returned slice is
// never nil and its order is unspecified.
func (p *ItemProcessor) ProcessAll(ctx context.Context) ([]domain.Item, error) {
	items, _, err := p.ProcessAllWithSummary(ctx)
	return items, err
}

// ProcessAllWithSummary is ProcessAll that also reports run statistics.
func (p *ItemProcessor) ProcessAllWithSummary(ctx context.Context) ([]domain.Item, RunSummary, error) {
	start := time.Now()
	summary := RunSummary{RunID: uuid.New()}

	log := logger.FromContextOrDefault(ctx, p.logger).With(slog.String("run_id", summary.RunID.String()))
	ctx = logger.WithLogger(ctx, log)

	ids, err := p.itemStore.FindAllIDs(ctx)
	if err != nil {
		log.Error("failed to list item IDs", slog.String("error", redact.Error(err)))
		recordRun(summary, err)
		return nil, summary, fmt.Errorf("failed to list item IDs: %w", err)
	}

	summary.Total = len(ids)
	log.Info("processing items", slog.Int("total", summary.Total), slog.Int("workers", p.pool.WorkerCount()))

	results := newResultSet(len(ids))
	units := make([]Unit, len(ids))
	for i, id := range ids {
		units[i] = func(ctx context.Context) error {
			return p.processItem(ctx, id, results)
		}
	}

	p.pool.Run(context.WithoutCancel(ctx), units, func(index int, err error) {
		results.failed.Add(1)
		log.Error("item processing failed",
			slog.Int64("item_id", ids[index]),
			slog.String("error", redact.Error(err)))
	})

	processed := results.snapshot()

	summary.Processed = int(results.processed.Load())
	summary.Skipped = int(results.skipped.Load())
	summary.Failed = int(results.failed.Load())
	summary.Duration = time.Since(start)

	log.Info("processing complete",
		slog.Int("total", summary.Total),
		slog.Int("processed", summary.Processed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Duration("duration", summary.Duration))
	recordRun(summary, nil)

	return processed, summary, nil
}

// processItem loads one item, marks it processed and saves it.
func (p *ItemProcessor) processItem(ctx context.Context, id int64, results *resultSet) error {
	if p.unitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.unitTimeout)
		defer cancel()
	}

	item, err := p.itemStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			results.skipped.Add(1)
			logger.FromContextOrDefault(ctx, p.logger).Debug("item vanished before processing",
				slog.Int64("item_id", id))
			return nil
		}
		return fmt.Errorf("failed to load item: %w", err)
	}

	item.MarkProcessed()

	saved, err := p.itemStore.Save(ctx, item)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			results.skipped.Add(1)
			logger.FromContextOrDefault(ctx, p.logger).Debug("item vanished before save",
				slog.Int64("item_id", id))
			return nil
		}
		return fmt.Errorf("failed to save item: %w", err)
	}

	results.add(*saved)
	return nil
}
