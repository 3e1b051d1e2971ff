package geocode

import (
	"time"
)

// ResolveInterval is the minimum spacing between external resolver calls
// within one map-building traversal, per the provider's usage policy.
const ResolveInterval = time.Second

// Pacer enforces a minimum delay between consecutive calls. One Pacer is
// created per traversal, so throttling never blocks unrelated requests.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous Wait call. The first call returns immediately.
func (p *Pacer) Wait() {
	if !p.last.IsZero() {
		if d := p.interval - time.Since(p.last); d > 0 {
			time.Sleep(d)
		}
	}
	p.last = time.Now()
}
