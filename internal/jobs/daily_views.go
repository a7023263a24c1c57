package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ViewsResetter zeroes the site-wide daily view counter.
type ViewsResetter interface {
	ResetViewsToday(ctx context.Context) error
}

// ViewsResetProcessor resets the "views today" counter at midnight UTC.
// The total view counter is never reset.
type ViewsResetProcessor struct {
	meta    ViewsResetter
	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex

	// now is swappable for tests.
	now func() time.Time
}

// NewViewsResetProcessor creates a new daily views reset job
func NewViewsResetProcessor(meta ViewsResetter) *ViewsResetProcessor {
	return &ViewsResetProcessor{
		meta:   meta,
		stopCh: make(chan struct{}),
		now:    time.Now,
	}
}

// Start begins the daily views reset job
func (p *ViewsResetProcessor) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run()
	slog.Info("daily views reset job started")
}

// Stop gracefully stops the daily views reset job
func (p *ViewsResetProcessor) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	close(p.stopCh)
	p.wg.Wait()
	slog.Info("daily views reset job stopped")
}

func (p *ViewsResetProcessor) run() {
	defer p.wg.Done()

	for {
		wait := time.Until(p.NextReset())

		select {
		case <-time.After(wait):
			p.reset()
		case <-p.stopCh:
			return
		}
	}
}

func (p *ViewsResetProcessor) reset() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.meta.ResetViewsToday(ctx); err != nil {
		// Missing one reset is tolerable; the next midnight corrects it.
		slog.Error("daily views reset failed", slog.String("error", err.Error()))
		return
	}
	slog.Info("daily views counter reset")
}

// NextReset returns the next midnight UTC after the current time.
func (p *ViewsResetProcessor) NextReset() time.Time {
	now := p.now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next
}

// RunOnce runs the reset once (for testing or manual trigger)
func (p *ViewsResetProcessor) RunOnce(ctx context.Context) error {
	return p.meta.ResetViewsToday(ctx)
}

// IsRunning returns whether the processor is running
func (p *ViewsResetProcessor) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
