package dto

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/session"
)

type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	// Force skips the movement/interval gate, for manual placement.
	Force bool `json:"force"`
}

type LocationResponse struct {
	Applied bool          `json:"applied"`
	State   session.State `json:"state"`
}

type SegmentResponse struct {
	From    domain.Coordinate `json:"from"`
	To      domain.Coordinate `json:"to"`
	Bearing float64           `json:"bearing"`
}

// RangeLinesResponse holds the two guide lines either side of the target
// bearing and the arc joining their far ends, as [lat, lon] pairs.
type RangeLinesResponse struct {
	Left  SegmentResponse `json:"left"`
	Right SegmentResponse `json:"right"`
	Arc   [][]float64     `json:"arc"`
}
