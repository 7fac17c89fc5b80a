package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"minhsangitdev/beerpriceworker/internal/feed"
	"minhsangitdev/beerpriceworker/internal/product"
	"minhsangitdev/beerpriceworker/logger"
	"minhsangitdev/beerpriceworker/services/cache"
	"minhsangitdev/beerpriceworker/services/exporter"
	"minhsangitdev/beerpriceworker/services/publisher"
)

// Worker drives the normalize-and-publish cycle: read every feed,
// assemble records, publish the new ones, export the combined batch.
type Worker struct {
	ctx           context.Context
	sources       []feed.Source
	publisher     publisher.Publisher
	cache         cache.CacheService
	exporter      exporter.Exporter
	log           *logger.Logger
	crawlInterval time.Duration
	dedupeTTL     time.Duration
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	sources []feed.Source,
	pub publisher.Publisher,
	cacheSvc cache.CacheService,
	exp exporter.Exporter,
	crawlInterval time.Duration,
	dedupeTTL time.Duration,
) *Worker {
	return &Worker{
		ctx:           ctx,
		sources:       sources,
		publisher:     pub,
		cache:         cacheSvc,
		exporter:      exp,
		log:           logger.ForWorker(),
		crawlInterval: crawlInterval,
		dedupeTTL:     dedupeTTL,
	}
}

// Start runs cycles until the context is cancelled
func (w *Worker) Start() error {
	ticker := time.NewTicker(w.crawlInterval)
	defer ticker.Stop()

	for {
		start := time.Now()
		w.runCycle()
		w.log.Info().
			Dur("elapsed", time.Since(start)).
			Msg("Cycle finished")

		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce runs a single cycle without waiting for the interval
func (w *Worker) RunOnce() {
	w.runCycle()
}

// runCycle processes all sources in parallel, exports the combined
// batch and trims the streams
func (w *Worker) runCycle() {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		all []product.Record
	)

	for _, s := range w.sources {
		wg.Add(1)
		go func(s feed.Source) {
			defer wg.Done()
			records := w.processSource(s)
			mu.Lock()
			all = append(all, records...)
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	if len(all) > 0 && w.exporter != nil {
		path, err := w.exporter.Export(all)
		if err != nil {
			w.log.Error().Err(err).Msg("CSV export failed")
		} else {
			w.log.Info().
				Str("path", path).
				Int("records", len(all)).
				Msg("Exported combined CSV")
		}
	}

	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Stream trimming failed")
	}
}

// processSource assembles one source's batch and publishes records not
// seen within the dedupe window. The full batch is returned for export
// regardless of dedupe.
func (w *Worker) processSource(s feed.Source) []product.Record {
	log := logger.ForSource(s.GetName())

	items, err := s.FetchItems()
	if err != nil {
		log.Error().Err(err).Msg("Feed fetch failed")
		return nil
	}
	if len(items) == 0 {
		log.Debug().Msg("Feed is empty")
		return nil
	}

	records := product.AssembleAll(items)

	published := 0
	for _, record := range records {
		if w.seen(record) {
			continue
		}

		data, err := json.Marshal(record)
		if err != nil {
			log.Error().Err(err).Str("code", record.Code).Msg("Record marshal failed")
			continue
		}

		if err := w.publisher.Publish(record.Source, data); err != nil {
			log.Error().Err(err).Str("code", record.Code).Msg("Publish failed")
			continue
		}

		w.markSeen(record)
		published++
	}

	log.Info().
		Int("records", len(records)).
		Int("published", published).
		Msg("Source processed")

	return records
}

// seen reports whether the record was already published within the
// dedupe window
func (w *Worker) seen(record product.Record) bool {
	if w.cache == nil {
		return false
	}
	_, err := w.cache.Get(dedupeKey(record))
	return err == nil
}

// markSeen records the publication in the dedupe window
func (w *Worker) markSeen(record product.Record) {
	if w.cache == nil {
		return
	}
	if err := w.cache.Set(dedupeKey(record), []byte("1"), w.dedupeTTL); err != nil {
		w.log.Warn().Err(err).Msg("Dedupe cache set failed")
	}
}

func dedupeKey(record product.Record) string {
	return "seen:" + record.Source + ":" + record.Code
}
