package loop

import (
	"context"
	"time"
)

// TickerTimer is a RedirectTimer backed by time.Ticker. The ticker drops
// ticks for a slow receiver, so a delayed loop sees at most one fire.
type TickerTimer struct {
	ticker *time.Ticker
}

// NewTickerTimer starts a timer firing every interval.
func NewTickerTimer(interval time.Duration) *TickerTimer {
	return &TickerTimer{ticker: time.NewTicker(interval)}
}

// Fired polls the ticker without blocking.
func (t *TickerTimer) Fired() bool {
	select {
	case <-t.ticker.C:
		return true
	default:
		return false
	}
}

// Stop releases the ticker.
func (t *TickerTimer) Stop() {
	t.ticker.Stop()
}

// TickerPacer caps the loop at a fixed frame rate.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer for the given ticks per second.
func NewTickerPacer(fps int) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(max(fps, 1)))}
}

// Wait blocks for the remainder of the frame budget.
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-p.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// NopPacer never waits; the loop runs as fast as it can.
type NopPacer struct{}

// Wait returns immediately unless the context is done.
func (NopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}

// EveryNTicks is a RedirectTimer measured in loop iterations instead of
// wall time, for deterministic headless runs.
type EveryNTicks struct {
	N     int
	count int
}

// Fired reports true on every Nth poll.
func (t *EveryNTicks) Fired() bool {
	if t.N <= 0 {
		return false
	}
	t.count++
	if t.count >= t.N {
		t.count = 0
		return true
	}
	return false
}
