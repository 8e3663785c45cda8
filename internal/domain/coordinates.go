package domain

// Immutable geographic coordinate (latitude, longitude) in degrees.
// There is no altitude component.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Return coordinates as [lat, lon] for map-layer compatibility.
func (c Coordinate) CoordsToList() []float64 { return []float64{c.Latitude, c.Longitude} }

// Ptr returns a pointer to a copy of c.
func (c Coordinate) Ptr() *Coordinate { return &c }
