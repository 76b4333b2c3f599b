package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/keilholz/sheetindex/internal/config"
	"github.com/keilholz/sheetindex/internal/extract"
	"github.com/keilholz/sheetindex/internal/identify"
	"github.com/keilholz/sheetindex/internal/store"
)

// Orchestrator manages the sheet extraction pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	repo  *store.DocumentRepo
	stats *extract.Stats
	log   *slog.Logger
	cfg   config.Config

	identifyCfg identify.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Start launches its workers.
func NewOrchestrator(cfg config.Config, repo *store.DocumentRepo, stats *extract.Stats, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:        NewJobStore(cfg.JobTTL),
		queue:       make(chan *Job, cfg.MaxQueueSize),
		repo:        repo,
		stats:       stats,
		log:         log,
		cfg:         cfg,
		identifyCfg: identify.DefaultConfig(),
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.repo, o.stats, o.log, o.identifyCfg, o.cfg.MaxPages, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Repo returns the snapshot store for direct use by API handlers.
func (o *Orchestrator) Repo() *store.DocumentRepo {
	return o.repo
}
