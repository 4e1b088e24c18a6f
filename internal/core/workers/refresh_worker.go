package workers

import (
	"context"
	"log"
	"time"
)

// Loader is the slice of a resource store the worker needs.
type Loader interface {
	Load(ctx context.Context) error
}

type RefreshJob struct {
	Collection string
}

// RefreshWorker reloads resource stores in the background: every tick it
// refreshes all registered collections, and targeted refreshes can be
// enqueued between ticks. Load failures are logged and leave the prior
// snapshot intact, so a flaky backend never blanks the dashboard.
type RefreshWorker struct {
	loaders  map[string]Loader
	interval time.Duration
	jobs     chan RefreshJob
}

func NewRefreshWorker(loaders map[string]Loader, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		loaders:  loaders,
		interval: interval,
		jobs:     make(chan RefreshJob, 100),
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Refresh worker started in background...")

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case job := <-w.jobs:
				w.refreshOne(ctx, job.Collection)
			case <-ticker.C:
				w.refreshAll(ctx)
			case <-ctx.Done():
				log.Println("Refresh worker shutting down...")
				return
			}
		}
	}()
}

// Enqueue requests a targeted refresh without blocking the caller. Jobs
// are dropped when the queue is full.
func (w *RefreshWorker) Enqueue(collection string) {
	select {
	case w.jobs <- RefreshJob{Collection: collection}:
	default:
		log.Printf("Refresh queue full! Dropping job for %s", collection)
	}
}

func (w *RefreshWorker) refreshOne(ctx context.Context, collection string) {
	loader, ok := w.loaders[collection]
	if !ok {
		log.Printf("Refresh requested for unknown collection %q", collection)
		return
	}
	if err := loader.Load(ctx); err != nil {
		log.Printf("Refresh failed for %s: %v", collection, err)
	}
}

func (w *RefreshWorker) refreshAll(ctx context.Context) {
	for name, loader := range w.loaders {
		if err := loader.Load(ctx); err != nil {
			log.Printf("Refresh failed for %s: %v", name, err)
		}
	}
}
