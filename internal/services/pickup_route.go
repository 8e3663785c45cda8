package services

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/geodesy"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/samber/lo"
)

// Plan a pickup route using a greedy nearest-neighbor walk with crossing avoidance.
//
// At each step the walker moves to the nearest remaining throw whose leg does
// not cross a leg already on the route. When every candidate would cross, the
// plain nearest throw is taken instead. It does not attempt global route
// optimization; the design prioritizes determinism and simplicity over
// optimality, which is fine for the tens of throws in a practice round.
func PlanPickupRoute(currentLocation domain.Coordinate, throws []domain.Throw) domain.Route {
	points := []domain.RoutePoint{{
		Coordinate:  currentLocation,
		ID:          domain.StartPointID,
		IsThrowStop: false,
	}}

	remaining := lo.Filter(throws, func(t domain.Throw, _ int) bool { return !t.Picked })
	if len(remaining) == 0 {
		return domain.Route{Points: points}
	}

	head := currentLocation
	totalMeters := 0.0

	for len(remaining) > 0 {
		bestIdx, nearestIdx := -1, -1
		bestDistance, nearestDistance := math.Inf(1), math.Inf(1)

		// Select next stop by minimum walking distance (greedy step).
		// Strict comparison keeps the earliest supplied throw on ties.
		for i, t := range remaining {
			d := geodesy.Distance(head, t.Coordinate, domain.Imperial)
			if d < nearestDistance {
				nearestDistance = d
				nearestIdx = i
			}
			if d < bestDistance && !wouldCrossPath(head, t.Coordinate, points) {
				bestDistance = d
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			bestIdx = nearestIdx
		}
		next := remaining[bestIdx]

		totalMeters += geodesy.DistanceMeters(head, next.Coordinate)
		points = append(points, domain.RoutePoint{
			Coordinate:  next.Coordinate,
			ID:          next.ID,
			IsThrowStop: true,
		})

		head = next.Coordinate
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	return domain.Route{
		Points:              points,
		TotalDistanceMeters: int(math.Round(totalMeters)),
	}
}

// wouldCrossPath reports whether the leg start->end intersects any leg already
// on the route. The last leg ends where the new one begins, so it is skipped.
func wouldCrossPath(start, end domain.Coordinate, route []domain.RoutePoint) bool {
	if len(route) < 3 {
		return false
	}

	for i := 0; i < len(route)-2; i++ {
		if segmentsIntersect(start, end, route[i].Coordinate, route[i+1].Coordinate) {
			return true
		}
	}

	return false
}

// segmentsIntersect tests p1p2 against p3p4 in the lat/lon plane using the
// parametric form. Parallel and colinear segments never intersect.
func segmentsIntersect(p1, p2, p3, p4 domain.Coordinate) bool {
	a1, a2 := planar(p1), planar(p2)
	b1, b2 := planar(p3), planar(p4)

	da := a2.Sub(a1)
	db := b2.Sub(b1)

	denominator := da.Cross(db)
	if denominator == 0 {
		return false
	}

	offset := a1.Sub(b1)
	ua := db.Cross(offset) / denominator
	ub := da.Cross(offset) / denominator

	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

func planar(c domain.Coordinate) r2.Point {
	return r2.Point{X: c.Latitude, Y: c.Longitude}
}
