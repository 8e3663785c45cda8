package domain

// Represents one recorded disc landing point.
// A Throw carries the bearing it was thrown on and the target bearing that
// was in effect when it was recorded, so accuracy can be judged later even
// if the target moves. Only the position and bearing fields ever change
// after creation.
type Throw struct {
	Coordinate
	ID               string  `json:"id"`
	Picked           bool    `json:"picked"`
	ThrowBearing     float64 `json:"throwBearing"`
	ReferenceBearing float64 `json:"referenceBearing"`
}
