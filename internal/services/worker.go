package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"talentgate/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(screeningID uuid.UUID)
}

type worker struct {
	screeningRepo repositories.ScreeningRepository
	screener      ScreenerService
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewWorker(
	screeningRepo repositories.ScreeningRepository,
	screener ScreenerService,
	concurrency int,
) Worker {
	return &worker{
		screeningRepo: screeningRepo,
		screener:      screener,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Requeue screenings left behind by a previous run
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(screeningID uuid.UUID) {
	select {
	case w.jobQueue <- screeningID:
		log.Printf("📥 Screening %s enqueued\n", screeningID)
	case <-w.stopChan:
		log.Printf("⚠️ Worker stopped, cannot enqueue screening %s\n", screeningID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case screeningID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing screening %s\n", workerID, screeningID)
			if err := w.screener.ProcessScreening(ctx, screeningID); err != nil {
				log.Printf("❌ Worker #%d failed on screening %s: %v\n", workerID, screeningID, err)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pending, err := w.screeningRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️ Failed to fetch pending screenings: %v\n", err)
				continue
			}

			for _, screening := range pending {
				w.EnqueueJob(screening.ID)
			}
		}
	}
}
