package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingResetter struct {
	calls atomic.Int64
}

func (c *countingResetter) ResetViewsToday(ctx context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestNextReset_IsFollowingMidnightUTC(t *testing.T) {
	t.Parallel()

	p := NewViewsResetProcessor(&countingResetter{})
	p.now = func() time.Time {
		return time.Date(2026, 3, 14, 22, 45, 0, 0, time.UTC)
	}

	next := p.NextReset()
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextReset_AtMidnight_SkipsToNextDay(t *testing.T) {
	t.Parallel()

	p := NewViewsResetProcessor(&countingResetter{})
	p.now = func() time.Time {
		return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	}

	next := p.NextReset()
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestRunOnce_CallsResetter(t *testing.T) {
	t.Parallel()

	resetter := &countingResetter{}
	p := NewViewsResetProcessor(resetter)

	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resetter.calls.Load() != 1 {
		t.Errorf("expected one reset call, got %d", resetter.calls.Load())
	}
}

func TestStartStop_Idempotent(t *testing.T) {
	t.Parallel()

	p := NewViewsResetProcessor(&countingResetter{})

	p.Start()
	p.Start() // second start is a no-op
	if !p.IsRunning() {
		t.Error("expected running after Start")
	}

	p.Stop()
	p.Stop() // second stop is a no-op
	if p.IsRunning() {
		t.Error("expected stopped after Stop")
	}
}
