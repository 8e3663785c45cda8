package location

import (
	"context"
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/ports"
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Feed connects a LocationSource to a LocationSink. Receivers often emit
// several sentences per epoch, so fixes arriving within the coalesce window
// are collapsed to the most recent one.
type Feed struct {
	source   ports.LocationSource
	sink     ports.LocationSink
	debounce func(func())

	mu     sync.Mutex
	latest domain.Coordinate
}

func NewFeed(source ports.LocationSource, sink ports.LocationSink, coalesce time.Duration) *Feed {
	f := &Feed{source: source, sink: sink}
	if coalesce > 0 {
		f.debounce = debounce.New(coalesce)
	}
	return f
}

// Run blocks until the source stops.
func (f *Feed) Run(ctx context.Context) error {
	return f.source.Run(ctx, f.offer)
}

func (f *Feed) offer(p domain.Coordinate) {
	if f.debounce == nil {
		f.sink.OfferLocation(p)
		return
	}

	f.mu.Lock()
	f.latest = p
	f.mu.Unlock()

	f.debounce(f.flush)
}

func (f *Feed) flush() {
	f.mu.Lock()
	p := f.latest
	f.mu.Unlock()

	f.sink.OfferLocation(p)
}
