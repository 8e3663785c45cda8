package session

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/services"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Config tunes a Machine. Zero durations and thresholds fall back to
// DefaultConfig values.
type Config struct {
	Unit                      domain.Unit
	WrapAngles                bool
	LocationMinInterval       time.Duration
	LocationMinMovementMeters float64
	FeedbackDisplay           time.Duration

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

func DefaultConfig() Config {
	return Config{
		Unit:                      domain.Imperial,
		LocationMinInterval:       500 * time.Millisecond,
		LocationMinMovementMeters: 1,
		FeedbackDisplay:           2500 * time.Millisecond,
		Now:                       time.Now,
		NewID:                     uuid.NewString,
	}
}

// Observer receives the events of every applied command, in emission order,
// together with the resulting state.
type Observer func(ev Event, s State)

// Machine owns the current State and runs commands through the Reducer.
// It also owns the location gate and feedback queue that sit between the
// reducer and the outside world.
type Machine struct {
	reducer  Reducer
	state    State
	gate     *LocationGate
	feedback *FeedbackQueue
	now      func() time.Time
	newID    func() string

	observers map[int]Observer
	order     []int
	nextObs   int
}

func NewMachine(cfg Config) *Machine {
	def := DefaultConfig()
	if cfg.LocationMinInterval <= 0 {
		cfg.LocationMinInterval = def.LocationMinInterval
	}
	if cfg.LocationMinMovementMeters <= 0 {
		cfg.LocationMinMovementMeters = def.LocationMinMovementMeters
	}
	if cfg.FeedbackDisplay <= 0 {
		cfg.FeedbackDisplay = def.FeedbackDisplay
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = def.NewID
	}

	return &Machine{
		reducer:   Reducer{Classifier: services.AccuracyClassifier{WrapAngles: cfg.WrapAngles}},
		state:     NewState(cfg.Unit),
		gate:      NewLocationGate(cfg.LocationMinInterval, cfg.LocationMinMovementMeters),
		feedback:  NewFeedbackQueue(cfg.FeedbackDisplay),
		now:       cfg.Now,
		newID:     cfg.NewID,
		observers: map[int]Observer{},
	}
}

// Dispatch reduces cmd against the current state and, when applied, stores
// the new state, queues throw feedback and notifies observers.
func (m *Machine) Dispatch(cmd Command) Result {
	if rt, ok := cmd.(RecordThrow); ok && rt.ID == "" {
		rt.ID = m.newID()
		cmd = rt
	}

	res := m.reducer.Reduce(m.state, cmd)
	if !res.Applied {
		return Result{State: m.state.Clone(), Events: []Event{}}
	}

	m.state = res.State

	if loc, ok := cmd.(UpdateUserLocation); ok {
		m.gate.Mark(loc.Point, m.now())
	}

	for _, ev := range res.Events {
		if ev.Type == EventThrowRecorded {
			m.feedback.Push(ev.Feedback, m.now())
		}
	}

	// Observers may unsubscribe during delivery; iterate over a snapshot and
	// skip any that were removed meanwhile.
	ids := append([]int(nil), m.order...)
	for _, ev := range res.Events {
		for _, id := range ids {
			fn, ok := m.observers[id]
			if !ok {
				continue
			}
			fn(ev, m.state.Clone())
		}
	}

	res.State = m.state.Clone()
	return res
}

// Subscribe registers fn and returns a function that removes it.
// Observers run synchronously inside Dispatch and must not call Dispatch.
func (m *Machine) Subscribe(fn Observer) (unsubscribe func()) {
	id := m.nextObs
	m.nextObs++
	m.observers[id] = fn
	m.order = append(m.order, id)

	return func() {
		if _, ok := m.observers[id]; !ok {
			return
		}
		delete(m.observers, id)
		m.order = slices.DeleteFunc(slices.Clone(m.order), func(o int) bool { return o == id })
	}
}

// State returns a copy of the current snapshot.
func (m *Machine) State() State { return m.state.Clone() }

// Route returns the active pickup route, or false outside pickup mode.
func (m *Machine) Route() (domain.Route, bool) {
	if m.state.Route == nil {
		return domain.Route{}, false
	}
	return m.state.Route.Clone(), true
}

// Stats summarizes the recorded throws, or nil before any throw exists.
func (m *Machine) Stats() *services.SessionStats {
	return services.ComputeSessionStats(m.state.Throws, m.state.Target, m.state.UserLocation, m.reducer.Classifier)
}

// Feedback returns the tag batch currently on display.
func (m *Machine) Feedback() []domain.Tag {
	return m.feedback.Current(m.now())
}

// PendingFeedback returns the number of batches queued or on display.
func (m *Machine) PendingFeedback() int {
	return m.feedback.Len(m.now())
}

// OfferLocation passes a raw position fix through the location gate and
// applies it when accepted. It reports whether the fix was applied.
func (m *Machine) OfferLocation(p domain.Coordinate) bool {
	if !m.gate.Allow(p, m.now()) {
		return false
	}
	return m.Dispatch(UpdateUserLocation{Point: p}).Applied
}

func (m *Machine) BeginSettingTarget() Result { return m.Dispatch(BeginSettingTarget{}) }

func (m *Machine) SetTarget(point domain.Coordinate, currentLocation *domain.Coordinate) Result {
	return m.Dispatch(SetTarget{Point: point, CurrentLocation: currentLocation})
}

func (m *Machine) BeginMarkingThrow() Result { return m.Dispatch(BeginMarkingThrow{}) }

func (m *Machine) RecordThrow(point domain.Coordinate) Result {
	return m.Dispatch(RecordThrow{Point: point})
}

func (m *Machine) SelectThrow(id string) Result { return m.Dispatch(SelectThrow{ID: id}) }

func (m *Machine) ClearSelection() Result { return m.Dispatch(ClearSelection{}) }

func (m *Machine) MoveSelectedThrow(point domain.Coordinate) Result {
	return m.Dispatch(MoveSelectedThrow{Point: point})
}

func (m *Machine) DeleteSelectedThrow() Result { return m.Dispatch(DeleteSelectedThrow{}) }

func (m *Machine) ResetThrows() Result { return m.Dispatch(ResetThrows{}) }

func (m *Machine) EnterPickupMode() Result { return m.Dispatch(EnterPickupMode{}) }

func (m *Machine) ConfirmPickup(id string) Result { return m.Dispatch(ConfirmPickup{ID: id}) }

func (m *Machine) ExitPickupMode() Result { return m.Dispatch(ExitPickupMode{}) }

func (m *Machine) UpdateUserLocation(point domain.Coordinate) Result {
	return m.Dispatch(UpdateUserLocation{Point: point})
}

func (m *Machine) ToggleUnit() Result { return m.Dispatch(ToggleUnit{}) }
