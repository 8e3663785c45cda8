package ports

import (
	"context"
	"discgolf-session-service/internal/domain"
)

// Contract for a device or service that produces position fixes.
type LocationSource interface {
	// Run delivers fixes to emit until ctx is cancelled or the source fails.
	// A cancelled context is not an error.
	Run(ctx context.Context, emit func(domain.Coordinate)) error
}
