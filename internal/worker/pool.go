// Package worker provides background preview analysis for recommended
// tracks.
package worker

import (
	"context"
	"log"
	"sync"

	"github.com/segue-audio/segue/internal/core/ports"
	"github.com/segue-audio/segue/internal/core/services"
)

// Job represents one preview-analysis task.
type Job struct {
	RecommendationID string
	TrackID          string
	PreviewURL       string
}

// Pool manages background workers for async preview analysis. It
// implements the preview queue the recommendation service submits to.
type Pool struct {
	history ports.HistoryRepository
	jobs    chan Job
	wg      sync.WaitGroup
}

var _ services.PreviewQueue = (*Pool)(nil)

// NewPool creates a worker pool with the given queue size.
func NewPool(history ports.HistoryRepository, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{history: history, jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a preview-analysis job without blocking. A full queue
// drops the job: measured energy is enrichment, never required.
func (p *Pool) Submit(recommendationID, trackID, previewURL string) {
	job := Job{RecommendationID: recommendationID, TrackID: trackID, PreviewURL: previewURL}
	select {
	case p.jobs <- job:
	default:
		log.Printf("WARN worker: dropping preview job for %s", job.TrackID)
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		log.Printf("WARN worker: no preview URL for track %s, skipping analysis", job.TrackID)
		return
	}

	energy, err := AnalyzePreviewFunc(job.PreviewURL)
	if err != nil {
		log.Printf("WARN worker: preview analysis for %s failed: %v", job.TrackID, err)
		return
	}

	if err := p.history.UpdateTrackEnergy(context.Background(), job.RecommendationID, job.TrackID, energy); err != nil {
		log.Printf("WARN worker: failed to record energy for %s: %v", job.TrackID, err)
		return
	}
	log.Printf("DEBUG worker: measured energy %.2f for track %s", energy, job.TrackID)
}
