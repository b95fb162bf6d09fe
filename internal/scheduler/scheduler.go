// Package scheduler runs the download event retention policy. Pruning lives
// here, outside the admission path: the decision engine itself never deletes
// events.
package scheduler

import (
	"context"
	"sync"
	"time"

	"plughub/internal/service"
	"plughub/pkg/logger"
)

type Scheduler struct {
	downloadService service.DownloadService
	interval        time.Duration
	retention       time.Duration
	stopCh          chan struct{}
	wg              sync.WaitGroup
	cancelFunc      context.CancelFunc // cancels the current prune operation
	mu              sync.Mutex         // protects cancelFunc
}

func New(downloadService service.DownloadService, interval, retention time.Duration) *Scheduler {
	return &Scheduler{
		downloadService: downloadService,
		interval:        interval,
		retention:       retention,
		stopCh:          make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("retention scheduler started", "interval", s.interval, "retention", s.retention)
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing prune first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("retention scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.prune()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.prune()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	removed, err := s.downloadService.PruneEvents(ctx, s.retention)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("scheduled prune cancelled")
			return
		}
		logger.Error("scheduled prune", "error", err)
		return
	}
	if removed > 0 {
		logger.Info("pruned download events", "removed", removed)
	}
}
