package session

import (
	"discgolf-session-service/internal/domain"

	"github.com/samber/lo"
)

const (
	InstructionPickup   = "Tap a throw marker when you pick it up."
	InstructionComplete = "All throws collected!"
)

// State is one immutable snapshot of a session. Distances in Range,
// LastThrow and OffCenter are whole units of Unit.
type State struct {
	Mode         domain.Mode        `json:"mode"`
	Target       *domain.Coordinate `json:"target"`
	UserLocation *domain.Coordinate `json:"userLocation"`
	Bearing      *float64           `json:"bearing"`
	Range        *float64           `json:"range"`
	LastThrow    *float64           `json:"lastThrow"`
	OffCenter    *float64           `json:"offCenter"`
	Throws       []domain.Throw     `json:"throws"`
	Selection    *string            `json:"selection"`
	Unit         domain.Unit        `json:"unit"`
	Route        *domain.Route      `json:"route"`
	Instruction  string             `json:"instruction,omitempty"`
}

// NewState returns the initial state for a fresh session.
func NewState(unit domain.Unit) State {
	return State{
		Mode:   domain.ModeInitial,
		Throws: []domain.Throw{},
		Unit:   unit,
	}
}

// IsMetric reports whether distances are shown in meters.
func (s State) IsMetric() bool { return s.Unit.IsMetric() }

// Throw looks up a throw by id.
func (s State) Throw(id string) (domain.Throw, bool) {
	t, _, ok := lo.FindIndexOf(s.Throws, func(t domain.Throw) bool { return t.ID == id })
	return t, ok
}

// UnpickedThrows returns the throws still on the ground, in throw order.
func (s State) UnpickedThrows() []domain.Throw {
	return lo.Filter(s.Throws, func(t domain.Throw, _ int) bool { return !t.Picked })
}

// Clone returns a deep copy. Pointer fields are copied by value.
func (s State) Clone() State {
	out := s
	out.Target = clonePtr(s.Target)
	out.UserLocation = clonePtr(s.UserLocation)
	out.Bearing = clonePtr(s.Bearing)
	out.Range = clonePtr(s.Range)
	out.LastThrow = clonePtr(s.LastThrow)
	out.OffCenter = clonePtr(s.OffCenter)
	out.Selection = clonePtr(s.Selection)
	out.Throws = append(make([]domain.Throw, 0, len(s.Throws)), s.Throws...)
	if s.Route != nil {
		r := s.Route.Clone()
		out.Route = &r
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptr[T any](v T) *T { return &v }
