package geodesy

import "discgolf-session-service/internal/domain"

// RangeLineSpreadDegrees is the angular offset of each guide line from the target bearing.
const RangeLineSpreadDegrees = 20.0

// DefaultArcPoints is the number of points ArcPoints produces when n <= 0.
const DefaultArcPoints = 20

// Segment is a straight line between two coordinates.
type Segment struct {
	From domain.Coordinate `json:"from"`
	To   domain.Coordinate `json:"to"`
}

// RangeLines are the two guide lines drawn either side of the target line.
type RangeLines struct {
	Left  Segment `json:"left"`
	Right Segment `json:"right"`
}

// ComputeRangeLines returns guide lines from origin at bearing -/+ 20 degrees,
// each distanceMeters long.
func ComputeRangeLines(origin domain.Coordinate, bearing, distanceMeters float64) RangeLines {
	left := Normalize(bearing - RangeLineSpreadDegrees)
	right := Normalize(bearing + RangeLineSpreadDegrees)

	return RangeLines{
		Left:  Segment{From: origin, To: PointAtBearing(origin, left, distanceMeters)},
		Right: Segment{From: origin, To: PointAtBearing(origin, right, distanceMeters)},
	}
}

// ArcPoints returns n points spaced evenly along the arc of radius
// distanceMeters around center, sweeping clockwise from startBearing to
// endBearing. An end bearing below the start wraps through north.
func ArcPoints(center domain.Coordinate, distanceMeters, startBearing, endBearing float64, n int) []domain.Coordinate {
	if n <= 0 {
		n = DefaultArcPoints
	}
	if n == 1 {
		return []domain.Coordinate{PointAtBearing(center, Normalize(startBearing), distanceMeters)}
	}

	start, end := startBearing, endBearing
	if end < start {
		end += 360
	}

	step := (end - start) / float64(n-1)
	points := make([]domain.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		b := Normalize(start + step*float64(i))
		points = append(points, PointAtBearing(center, b, distanceMeters))
	}

	return points
}
