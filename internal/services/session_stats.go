package services

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/geodesy"

	"github.com/samber/lo"
)

// SessionStats summarizes every throw currently in the session.
// Distances are always in feet, whatever the display unit.
type SessionStats struct {
	Count               int     `json:"count"`
	AverageDistance     float64 `json:"averageDistance"`
	AverageAngleOffline float64 `json:"averageAngleOffline"`
	LongestThrow        float64 `json:"longestThrow"`
}

// ComputeSessionStats aggregates throw distance from the user's position and
// bearing deviation from each throw's reference bearing. Picked and unpicked
// throws both count. It returns nil when there are no throws or when the
// target or user location is unknown.
func ComputeSessionStats(
	throws []domain.Throw,
	target *domain.Coordinate,
	userLocation *domain.Coordinate,
	classifier AccuracyClassifier,
) *SessionStats {
	if len(throws) == 0 || target == nil || userLocation == nil {
		return nil
	}

	distances := lo.Map(throws, func(t domain.Throw, _ int) float64 {
		return geodesy.Distance(*userLocation, t.Coordinate, domain.Imperial)
	})

	offline := lo.SumBy(throws, func(t domain.Throw) float64 {
		return classifier.AngleDiff(t.ThrowBearing, t.ReferenceBearing)
	})

	n := float64(len(throws))

	return &SessionStats{
		Count:               len(throws),
		AverageDistance:     lo.Sum(distances) / n,
		AverageAngleOffline: offline / n,
		LongestThrow:        lo.Max(distances),
	}
}
