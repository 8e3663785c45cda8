// Package geodesy implements spherical-earth distance and bearing helpers.
//
// All functions are pure. The earth is modeled as a sphere of radius
// EarthRadiusMeters; that is accurate enough at disc-golf scale (tens to a
// few hundred meters).
package geodesy

import (
	"discgolf-session-service/internal/domain"
	"math"

	"github.com/golang/geo/s1"
)

// EarthRadiusMeters is the mean earth radius used by every calculation.
const EarthRadiusMeters = 6371000.0

func toRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func toDegrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

// Normalize wraps any bearing in degrees into [0, 360).
func Normalize(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	// math.Mod(-1e-15, 360) + 360 rounds to exactly 360.
	if b >= 360 {
		b = 0
	}
	return b
}

// DistanceMeters returns the haversine great-circle distance in meters, unrounded.
func DistanceMeters(a, b domain.Coordinate) float64 {
	φ1 := toRadians(a.Latitude)
	φ2 := toRadians(b.Latitude)
	Δφ := φ2 - φ1
	Δλ := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * δ
}

// Distance returns the great-circle distance from a to b in the given unit,
// rounded to the nearest whole meter or foot.
func Distance(a, b domain.Coordinate, unit domain.Unit) float64 {
	return math.Round(unit.FromMeters(DistanceMeters(a, b)))
}

// Bearing returns the initial great-circle bearing from a to b in degrees,
// normalized to [0, 360). Identical points yield 0.
func Bearing(a, b domain.Coordinate) float64 {
	φ1 := toRadians(a.Latitude)
	φ2 := toRadians(b.Latitude)
	Δλ := toRadians(b.Longitude - a.Longitude)

	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	θ := math.Atan2(y, x)

	return Normalize(toDegrees(θ))
}

// PointAtBearing solves the direct problem: the point reached by travelling
// distanceMeters from start along the initial bearing bearingDeg.
func PointAtBearing(start domain.Coordinate, bearingDeg, distanceMeters float64) domain.Coordinate {
	φ1 := toRadians(start.Latitude)
	λ1 := toRadians(start.Longitude)
	θ := toRadians(bearingDeg)
	δ := distanceMeters / EarthRadiusMeters

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return domain.Coordinate{Latitude: toDegrees(φ2), Longitude: toDegrees(λ2)}
}

// WeightedMidpoint interpolates linearly in lat/lon space between a and b.
// weightB is clamped to [0, 1]; 0 yields a and 1 yields b.
func WeightedMidpoint(a, b domain.Coordinate, weightB float64) domain.Coordinate {
	w2 := math.Max(0, math.Min(1, weightB))
	w1 := 1 - w2

	return domain.Coordinate{
		Latitude:  a.Latitude*w1 + b.Latitude*w2,
		Longitude: a.Longitude*w1 + b.Longitude*w2,
	}
}
