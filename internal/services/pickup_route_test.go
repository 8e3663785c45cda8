package services

import (
	"discgolf-session-service/internal/domain"
	"testing"
)

// grid maps small planar offsets to coordinates near the equator, where one
// unit is roughly 11 meters in either direction.
func grid(x, y float64) domain.Coordinate {
	const unit = 0.0001
	return domain.Coordinate{Latitude: x * unit, Longitude: y * unit}
}

func throwAt(id string, c domain.Coordinate) domain.Throw {
	return domain.Throw{Coordinate: c, ID: id}
}

func routeIDs(r domain.Route) []string {
	ids := make([]string, 0, len(r.Points))
	for _, p := range r.Points {
		ids = append(ids, p.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPlanPickupRouteEmpty(t *testing.T) {
	start := grid(1, 1)

	route := PlanPickupRoute(start, nil)

	if len(route.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(route.Points))
	}
	p := route.Points[0]
	if p.Coordinate != start || p.ID != domain.StartPointID || p.IsThrowStop {
		t.Fatalf("unexpected start point %+v", p)
	}
	if route.TotalDistanceMeters != 0 {
		t.Fatalf("distance = %d, want 0", route.TotalDistanceMeters)
	}
}

func TestPlanPickupRouteCollinear(t *testing.T) {
	throws := []domain.Throw{
		throwAt("far", grid(0, 30)),
		throwAt("near", grid(0, 10)),
		throwAt("mid", grid(0, 20)),
	}

	route := PlanPickupRoute(grid(0, 0), throws)

	want := []string{domain.StartPointID, "near", "mid", "far"}
	if got := routeIDs(route); !equalIDs(got, want) {
		t.Fatalf("route = %v, want %v", got, want)
	}
	for _, p := range route.Stops() {
		if !p.IsThrowStop {
			t.Fatalf("stop %q should be a throw stop", p.ID)
		}
	}
	// Three legs of roughly 111 meters each.
	if route.TotalDistanceMeters < 330 || route.TotalDistanceMeters > 336 {
		t.Fatalf("distance = %d, want about 333", route.TotalDistanceMeters)
	}
}

func TestPlanPickupRouteAvoidsCrossing(t *testing.T) {
	// The walk goes S -> A -> B -> C around three sides of a square. From C
	// the nearest throw D would cut back across the A-B leg, so the planner
	// takes the slightly farther E first.
	throws := []domain.Throw{
		throwAt("A", grid(0, 5)),
		throwAt("B", grid(5, 5)),
		throwAt("C", grid(5, -1)),
		throwAt("D", grid(-1, 20)),
		throwAt("E", grid(27, 0)),
	}

	route := PlanPickupRoute(grid(0, 0), throws)

	want := []string{domain.StartPointID, "A", "B", "C", "E", "D"}
	if got := routeIDs(route); !equalIDs(got, want) {
		t.Fatalf("route = %v, want %v", got, want)
	}
}

func TestPlanPickupRouteFallsBackToNearest(t *testing.T) {
	// After S -> A -> B, both remaining throws sit behind the S-A leg, so
	// every option crosses and the nearest one wins.
	throws := []domain.Throw{
		throwAt("A", grid(0, 4)),
		throwAt("B", grid(1, 5)),
		throwAt("far", grid(-5, -2)),
		throwAt("near", grid(-4, -1)),
	}

	route := PlanPickupRoute(grid(0, 0), throws)

	if got := routeIDs(route); got[3] != "near" {
		t.Fatalf("route = %v, want near as the third stop", got)
	}
	if len(route.Points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(route.Points))
	}
}

func TestPlanPickupRouteTieKeepsSupplyOrder(t *testing.T) {
	throws := []domain.Throw{
		throwAt("second", grid(0, -10)),
		throwAt("first", grid(0, 10)),
	}

	route := PlanPickupRoute(grid(0, 0), throws)

	if got := route.Points[1].ID; got != "second" {
		t.Fatalf("first stop = %q, want the earlier supplied throw", got)
	}
}

func TestPlanPickupRouteVisitsEachUnpickedThrowOnce(t *testing.T) {
	throws := []domain.Throw{
		throwAt("a", grid(3, 4)),
		throwAt("b", grid(-2, 7)),
		{Coordinate: grid(9, 9), ID: "picked", Picked: true},
		throwAt("c", grid(6, -3)),
		throwAt("d", grid(-5, -5)),
		throwAt("e", grid(1, 12)),
	}

	route := PlanPickupRoute(grid(0, 0), throws)

	if len(route.Points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(route.Points))
	}

	seen := map[string]int{}
	for _, p := range route.Stops() {
		seen[p.ID]++
	}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		if seen[id] != 1 {
			t.Errorf("throw %q visited %d times, want 1", id, seen[id])
		}
	}
	if seen["picked"] != 0 {
		t.Errorf("picked throw must not be on the route")
	}

	again := PlanPickupRoute(grid(0, 0), throws)
	if !equalIDs(routeIDs(route), routeIDs(again)) {
		t.Fatalf("planning is not deterministic: %v vs %v", routeIDs(route), routeIDs(again))
	}
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name           string
		p1, p2, p3, p4 domain.Coordinate
		want           bool
	}{
		{"crossing", grid(0, 0), grid(2, 2), grid(0, 2), grid(2, 0), true},
		{"disjoint", grid(0, 0), grid(1, 1), grid(3, 0), grid(4, 1), false},
		{"parallel", grid(0, 0), grid(2, 0), grid(0, 1), grid(2, 1), false},
		{"colinear overlap", grid(0, 0), grid(2, 0), grid(1, 0), grid(3, 0), false},
		{"touching endpoint", grid(0, 0), grid(1, 1), grid(1, 1), grid(2, 0), true},
		{"zero length", grid(1, 1), grid(1, 1), grid(0, 0), grid(2, 2), false},
	}

	for _, c := range cases {
		if got := segmentsIntersect(c.p1, c.p2, c.p3, c.p4); got != c.want {
			t.Errorf("%s: segmentsIntersect = %v, want %v", c.name, got, c.want)
		}
	}
}
