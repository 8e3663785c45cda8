package session

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/geodesy"
	"time"
)

// LocationGate drops position fixes that arrive too soon or move too little.
// The first fix always passes.
type LocationGate struct {
	MinInterval       time.Duration
	MinMovementMeters float64

	last   *domain.Coordinate
	lastAt time.Time
}

// NewLocationGate returns a gate with the given thresholds.
func NewLocationGate(minInterval time.Duration, minMovementMeters float64) *LocationGate {
	return &LocationGate{MinInterval: minInterval, MinMovementMeters: minMovementMeters}
}

// Allow reports whether p should be applied and, if so, records it as the
// last applied fix.
func (g *LocationGate) Allow(p domain.Coordinate, now time.Time) bool {
	if g.last != nil {
		if now.Sub(g.lastAt) < g.MinInterval {
			return false
		}
		if geodesy.Distance(*g.last, p, domain.Metric) < g.MinMovementMeters {
			return false
		}
	}

	g.last = &p
	g.lastAt = now
	return true
}

// Reset forgets the last applied fix.
func (g *LocationGate) Reset() {
	g.last = nil
	g.lastAt = time.Time{}
}

// Mark records p as the last applied fix without checking thresholds.
// Fixes applied around the gate (manual placement) use it so the next gated
// fix is measured from where the user actually is.
func (g *LocationGate) Mark(p domain.Coordinate, now time.Time) {
	g.last = &p
	g.lastAt = now
}
