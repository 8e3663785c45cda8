package domain

// StartPointID identifies the first point of every route (the user's position).
const StartPointID = "current"

// Represents a single point on a pickup route.
// The first point is always the walker's position; every following point is
// a throw stop.
type RoutePoint struct {
	Coordinate
	ID          string `json:"id"`
	IsThrowStop bool   `json:"isThrowStop"`
}

// Represents the planned pickup walk.
// A Route is the output of the pickup planner and describes the ordered
// sequence of points starting at the walker's location, along with the
// aggregate walking distance. It is immutable planning data.
type Route struct {
	Points              []RoutePoint `json:"points"`
	TotalDistanceMeters int          `json:"totalDistanceMeters"`
}

// Stops returns the throw stops of the route, in visiting order.
func (r Route) Stops() []RoutePoint {
	if len(r.Points) <= 1 {
		return []RoutePoint{}
	}
	return r.Points[1:]
}

// Start returns the starting point, or false for an empty route.
func (r Route) Start() (RoutePoint, bool) {
	if len(r.Points) == 0 {
		return RoutePoint{}, false
	}
	return r.Points[0], true
}

// Clone returns a copy that shares no backing array with r.
func (r Route) Clone() Route {
	out := r
	out.Points = append([]RoutePoint(nil), r.Points...)
	return out
}
