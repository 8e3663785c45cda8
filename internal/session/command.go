package session

import (
	"bytes"
	"discgolf-session-service/internal/domain"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Command is a request to change session state.
type Command interface {
	// CommandName returns the wire name used by DecodeCommand.
	CommandName() string
}

// BeginSettingTarget enters target placement from any mode except pickup.
type BeginSettingTarget struct{}

// SetTarget places the target while in target placement.
// CurrentLocation is required and becomes the user location.
type SetTarget struct {
	Point           domain.Coordinate  `json:"point"`
	CurrentLocation *domain.Coordinate `json:"currentLocation"`
}

// BeginMarkingThrow waits for the next landing point.
type BeginMarkingThrow struct{}

// RecordThrow appends a throw at Point. An empty ID is filled by Machine.
type RecordThrow struct {
	Point domain.Coordinate `json:"point"`
	ID    string            `json:"id,omitempty"`
}

// SelectThrow marks a throw as selected for move or delete.
type SelectThrow struct {
	ID string `json:"id"`
}

// ClearSelection drops the current selection.
type ClearSelection struct{}

// MoveSelectedThrow relocates the selected throw while marking.
type MoveSelectedThrow struct {
	Point domain.Coordinate `json:"point"`
}

// DeleteSelectedThrow removes the selected throw.
type DeleteSelectedThrow struct{}

// ResetThrows removes every throw without changing mode.
type ResetThrows struct{}

// EnterPickupMode plans a pickup route over the unpicked throws.
type EnterPickupMode struct{}

// ConfirmPickup removes a picked-up throw and replans.
type ConfirmPickup struct {
	ID string `json:"id"`
}

// ExitPickupMode abandons the pickup walk.
type ExitPickupMode struct{}

// UpdateUserLocation moves the user, replanning in pickup mode.
type UpdateUserLocation struct {
	Point domain.Coordinate `json:"point"`
}

// ToggleUnit flips between metric and imperial display.
type ToggleUnit struct{}

func (BeginSettingTarget) CommandName() string  { return "beginSettingTarget" }
func (SetTarget) CommandName() string           { return "setTarget" }
func (BeginMarkingThrow) CommandName() string   { return "beginMarkingThrow" }
func (RecordThrow) CommandName() string         { return "recordThrow" }
func (SelectThrow) CommandName() string         { return "selectThrow" }
func (ClearSelection) CommandName() string      { return "clearSelection" }
func (MoveSelectedThrow) CommandName() string   { return "moveSelectedThrow" }
func (DeleteSelectedThrow) CommandName() string { return "deleteSelectedThrow" }
func (ResetThrows) CommandName() string         { return "resetThrows" }
func (EnterPickupMode) CommandName() string     { return "enterPickupMode" }
func (ConfirmPickup) CommandName() string       { return "confirmPickup" }
func (ExitPickupMode) CommandName() string      { return "exitPickupMode" }
func (UpdateUserLocation) CommandName() string  { return "updateUserLocation" }
func (ToggleUnit) CommandName() string          { return "toggleUnit" }

var commandFactories = map[string]func() Command{
	"beginSettingTarget":  func() Command { return &BeginSettingTarget{} },
	"setTarget":           func() Command { return &SetTarget{} },
	"beginMarkingThrow":   func() Command { return &BeginMarkingThrow{} },
	"recordThrow":         func() Command { return &RecordThrow{} },
	"selectThrow":         func() Command { return &SelectThrow{} },
	"clearSelection":      func() Command { return &ClearSelection{} },
	"moveSelectedThrow":   func() Command { return &MoveSelectedThrow{} },
	"deleteSelectedThrow": func() Command { return &DeleteSelectedThrow{} },
	"resetThrows":         func() Command { return &ResetThrows{} },
	"enterPickupMode":     func() Command { return &EnterPickupMode{} },
	"confirmPickup":       func() Command { return &ConfirmPickup{} },
	"exitPickupMode":      func() Command { return &ExitPickupMode{} },
	"updateUserLocation":  func() Command { return &UpdateUserLocation{} },
	"toggleUnit":          func() Command { return &ToggleUnit{} },
}

// DecodeCommand builds a Command from its wire name and an optional JSON body.
// Unknown fields are rejected.
func DecodeCommand(name string, body []byte) (Command, error) {
	factory, ok := commandFactories[name]
	if !ok {
		return nil, fmt.Errorf("decode command %q: %w", name, ErrUnknownCommand)
	}

	cmd := factory()
	if len(bytes.TrimSpace(body)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cmd); err != nil {
			return nil, fmt.Errorf("decode command %q: %w", name, err)
		}
	}

	return deref(cmd), nil
}

// deref turns the pointer built for decoding back into the value form the
// reducer switches on.
func deref(cmd Command) Command {
	switch c := cmd.(type) {
	case *BeginSettingTarget:
		return *c
	case *SetTarget:
		return *c
	case *BeginMarkingThrow:
		return *c
	case *RecordThrow:
		return *c
	case *SelectThrow:
		return *c
	case *ClearSelection:
		return *c
	case *MoveSelectedThrow:
		return *c
	case *DeleteSelectedThrow:
		return *c
	case *ResetThrows:
		return *c
	case *EnterPickupMode:
		return *c
	case *ConfirmPickup:
		return *c
	case *ExitPickupMode:
		return *c
	case *UpdateUserLocation:
		return *c
	case *ToggleUnit:
		return *c
	}
	return cmd
}

// CommandNames lists every name DecodeCommand accepts, sorted.
func CommandNames() []string {
	names := lo.Keys(commandFactories)
	slices.Sort(names)
	return names
}
