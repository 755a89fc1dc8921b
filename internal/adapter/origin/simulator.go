package origin

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	defaultMinLatency = 300 * time.Millisecond
	defaultMaxLatency = 800 * time.Millisecond
)

// Latency suspends callers for a uniformly random duration so the store
// layer sees the loading characteristics a remote origin would have.
// The bounds are exported on the simulators so tests can run at zero delay.
type Latency struct {
	Min time.Duration
	Max time.Duration
}

func defaultLatency() Latency {
	return Latency{Min: defaultMinLatency, Max: defaultMaxLatency}
}

func (l Latency) sleep(ctx context.Context) error {
	d := l.Min
	if l.Max > l.Min {
		d += rand.N(l.Max - l.Min)
	}
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
