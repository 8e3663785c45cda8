package ports

import "discgolf-session-service/internal/domain"

// Port: a boundary that accepts raw position fixes and decides whether to
// apply them.
type LocationSink interface {
	// Offer a fix; report whether it was applied.
	OfferLocation(p domain.Coordinate) bool
}
