package session

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/geodesy"
	"discgolf-session-service/internal/services"
	"slices"
)

// Result is the outcome of reducing one command.
// Applied is false when the command's preconditions were not met; State is
// then the unchanged input and Events is empty.
type Result struct {
	State   State
	Events  []Event
	Applied bool
}

// Reducer applies commands to states. It holds configuration only, never state.
type Reducer struct {
	Classifier services.AccuracyClassifier
}

// Reduce returns the state that follows s after cmd. The input is never modified.
func (r Reducer) Reduce(s State, cmd Command) Result {
	switch c := cmd.(type) {
	case BeginSettingTarget:
		return r.beginSettingTarget(s)
	case SetTarget:
		return r.setTarget(s, c)
	case BeginMarkingThrow:
		return r.beginMarkingThrow(s)
	case RecordThrow:
		return r.recordThrow(s, c)
	case SelectThrow:
		return r.selectThrow(s, c)
	case ClearSelection:
		return r.clearSelection(s)
	case MoveSelectedThrow:
		return r.moveSelectedThrow(s, c)
	case DeleteSelectedThrow:
		return r.deleteSelectedThrow(s)
	case ResetThrows:
		return r.resetThrows(s)
	case EnterPickupMode:
		return r.enterPickupMode(s)
	case ConfirmPickup:
		return r.confirmPickup(s, c)
	case ExitPickupMode:
		return r.exitPickupMode(s)
	case UpdateUserLocation:
		return r.updateUserLocation(s, c)
	case ToggleUnit:
		return r.toggleUnit(s)
	}
	return ignored(s)
}

func ignored(s State) Result {
	return Result{State: s}
}

func applied(s State, events ...Event) Result {
	if events == nil {
		events = []Event{}
	}
	return Result{State: s, Events: events, Applied: true}
}

func (r Reducer) beginSettingTarget(s State) Result {
	if s.Mode == domain.ModePickup {
		return ignored(s)
	}

	next := s.Clone()
	next.Mode = domain.ModeSettingTarget
	// The previous target stays visible; only the target line goes away.
	next.Bearing = nil

	return applied(next)
}

func (r Reducer) setTarget(s State, c SetTarget) Result {
	if s.Mode != domain.ModeSettingTarget || c.CurrentLocation == nil {
		return ignored(s)
	}

	user := *c.CurrentLocation
	target := c.Point

	next := s.Clone()
	next.Target = &target
	next.UserLocation = &user
	next.Range = ptr(geodesy.Distance(user, target, s.Unit))
	next.Bearing = ptr(geodesy.Bearing(user, target))
	next.Throws = []domain.Throw{}
	next.LastThrow = nil
	next.OffCenter = nil
	next.Selection = nil
	next.Route = nil
	next.Instruction = ""
	next.Mode = domain.ModeThrowMarking

	return applied(next, Event{Type: EventTargetSet, Target: ptr(target)})
}

func (r Reducer) beginMarkingThrow(s State) Result {
	if s.Mode != domain.ModeThrowMarking {
		return ignored(s)
	}

	next := s.Clone()
	next.Mode = domain.ModeMarkingThrow

	return applied(next)
}

func (r Reducer) recordThrow(s State, c RecordThrow) Result {
	if s.Mode != domain.ModeMarkingThrow || s.Target == nil || s.UserLocation == nil || s.Bearing == nil {
		return ignored(s)
	}
	if c.ID == "" {
		return ignored(s)
	}
	if _, exists := s.Throw(c.ID); exists {
		return ignored(s)
	}

	user, target, point := *s.UserLocation, *s.Target, c.Point

	throwDistance := geodesy.Distance(user, point, s.Unit)
	t := domain.Throw{
		Coordinate:       point,
		ID:               c.ID,
		Picked:           false,
		ThrowBearing:     geodesy.Bearing(user, point),
		ReferenceBearing: *s.Bearing,
	}

	classification := r.Classifier.Classify(services.ThrowMeasurement{
		ThrowBearing:         t.ThrowBearing,
		ReferenceBearing:     t.ReferenceBearing,
		ThrowDistance:        throwDistance,
		TargetDistance:       geodesy.Distance(user, target, s.Unit),
		DistanceToTargetFeet: geodesy.Distance(point, target, domain.Imperial),
	})

	next := s.Clone()
	next.Throws = append(next.Throws, t)
	next.LastThrow = ptr(throwDistance)
	next.OffCenter = ptr(geodesy.Distance(point, target, s.Unit))
	next.Mode = domain.ModeThrowMarking

	return applied(next, Event{
		Type:      EventThrowRecorded,
		Throw:     ptr(t),
		Feedback:  classification.Tags,
		LineColor: services.HexColor(classification.LineColor),
	})
}

func (r Reducer) selectThrow(s State, c SelectThrow) Result {
	if _, ok := s.Throw(c.ID); !ok {
		return ignored(s)
	}

	next := s.Clone()
	next.Selection = ptr(c.ID)

	return applied(next)
}

func (r Reducer) clearSelection(s State) Result {
	if s.Selection == nil {
		return ignored(s)
	}

	next := s.Clone()
	next.Selection = nil

	return applied(next)
}

func (r Reducer) moveSelectedThrow(s State, c MoveSelectedThrow) Result {
	if s.Selection == nil || s.Mode != domain.ModeMarkingThrow {
		return ignored(s)
	}
	idx := slices.IndexFunc(s.Throws, func(t domain.Throw) bool { return t.ID == *s.Selection })
	if idx < 0 {
		return ignored(s)
	}

	next := s.Clone()
	moved := next.Throws[idx]
	moved.Coordinate = c.Point
	if next.UserLocation != nil {
		moved.ThrowBearing = geodesy.Bearing(*next.UserLocation, c.Point)
	}
	next.Throws[idx] = moved
	next.Selection = nil
	next.Mode = domain.ModeThrowMarking

	return applied(next)
}

func (r Reducer) deleteSelectedThrow(s State) Result {
	if s.Selection == nil {
		return ignored(s)
	}
	idx := slices.IndexFunc(s.Throws, func(t domain.Throw) bool { return t.ID == *s.Selection })
	if idx < 0 {
		return ignored(s)
	}

	next := s.Clone()
	next.Throws = slices.Delete(next.Throws, idx, idx+1)
	next.Selection = nil

	if next.Mode != domain.ModePickup {
		return applied(next)
	}

	if len(next.UnpickedThrows()) == 0 {
		next.Mode = domain.ModeThrowMarking
		next.Route = nil
		next.Instruction = ""
		return applied(next)
	}

	ev := replan(&next)
	return applied(next, ev)
}

func (r Reducer) resetThrows(s State) Result {
	next := s.Clone()
	next.Throws = []domain.Throw{}
	next.LastThrow = nil
	next.OffCenter = nil
	next.Selection = nil

	// Mode is kept; in pickup the route shrinks to the start point and keeps
	// following the user.
	if next.Mode == domain.ModePickup && next.UserLocation != nil {
		ev := replan(&next)
		return applied(next, ev)
	}

	return applied(next)
}

func (r Reducer) enterPickupMode(s State) Result {
	if s.Mode != domain.ModeThrowMarking && s.Mode != domain.ModeMarkingThrow {
		return ignored(s)
	}
	if s.UserLocation == nil || len(s.UnpickedThrows()) == 0 {
		return ignored(s)
	}

	next := s.Clone()
	next.Mode = domain.ModePickup
	next.Selection = nil
	next.Instruction = InstructionPickup

	ev := replan(&next)
	return applied(next, ev)
}

func (r Reducer) confirmPickup(s State, c ConfirmPickup) Result {
	if s.Mode != domain.ModePickup || s.UserLocation == nil {
		return ignored(s)
	}
	idx := slices.IndexFunc(s.Throws, func(t domain.Throw) bool { return t.ID == c.ID })
	if idx < 0 || s.Throws[idx].Picked {
		return ignored(s)
	}

	next := s.Clone()
	next.Throws = slices.Delete(next.Throws, idx, idx+1)
	if next.Selection != nil && *next.Selection == c.ID {
		next.Selection = nil
	}

	if len(next.UnpickedThrows()) == 0 {
		next.Mode = domain.ModeThrowMarking
		next.Route = nil
		next.Instruction = InstructionComplete
		return applied(next, Event{Type: EventAllThrowsPickedUp})
	}

	ev := replan(&next)
	return applied(next, ev)
}

func (r Reducer) exitPickupMode(s State) Result {
	if s.Mode != domain.ModePickup {
		return ignored(s)
	}

	next := s.Clone()
	next.Mode = domain.ModeThrowMarking
	next.Route = nil
	next.Instruction = ""

	return applied(next)
}

func (r Reducer) updateUserLocation(s State, c UpdateUserLocation) Result {
	next := s.Clone()
	next.UserLocation = ptr(c.Point)

	if next.Mode == domain.ModePickup {
		ev := replan(&next)
		return applied(next, ev)
	}

	return applied(next)
}

func (r Reducer) toggleUnit(s State) Result {
	from := s.Unit
	to := from.Toggle()

	// Cached scalars are converted in place rather than re-derived from
	// coordinates, so repeated toggles can drift by rounding.
	convert := func(v *float64) *float64 {
		if v == nil {
			return nil
		}
		return ptr(domain.ConvertRounded(*v, from, to))
	}

	next := s.Clone()
	next.Unit = to
	next.Range = convert(s.Range)
	next.LastThrow = convert(s.LastThrow)
	next.OffCenter = convert(s.OffCenter)

	return applied(next)
}

// replan recomputes the pickup route of s in place from its user location.
func replan(s *State) Event {
	route := services.PlanPickupRoute(*s.UserLocation, s.UnpickedThrows())
	s.Route = &route

	return Event{Type: EventRouteUpdated, Route: ptr(route.Clone())}
}
