package domain

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Mode is the phase a practice session is in.
type Mode int

const (
	ModeInitial       Mode = iota // No target yet.
	ModeSettingTarget             // Waiting for the user to place a target.
	ModeThrowMarking              // Target set, idle between throws.
	ModeMarkingThrow              // Waiting for a landing point.
	ModePickup                    // Walking the pickup route.
)

var (
	modeNames = [...]string{
		ModeInitial:       "initial",
		ModeSettingTarget: "settingTarget",
		ModeThrowMarking:  "throwMarking",
		ModeMarkingThrow:  "markingThrow",
		ModePickup:        "pickup",
	}
	modeByName = map[string]Mode{
		"initial":       ModeInitial,
		"settingTarget": ModeSettingTarget,
		"throwMarking":  ModeThrowMarking,
		"markingThrow":  ModeMarkingThrow,
		"pickup":        ModePickup,
	}
)

var (
	_ fmt.Stringer             = Mode(0)
	_ json.Marshaler           = Mode(0)
	_ json.Unmarshaler         = (*Mode)(nil)
	_ encoding.TextMarshaler   = Mode(0)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

func (m Mode) isValid() bool {
	return m >= ModeInitial && m <= ModePickup
}

// HasTarget reports whether the mode guarantees a non-nil target.
func (m Mode) HasTarget() bool {
	return m == ModeThrowMarking || m == ModeMarkingThrow || m == ModePickup
}

// String returns the mode name. For invalid values it returns "Mode(n)".
func (m Mode) String() string {
	if m.isValid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.isValid() {
		return nil, fmt.Errorf("domain: invalid mode: %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, ok := modeByName[string(text)]
	if !ok {
		return fmt.Errorf("domain: invalid mode: %q", text)
	}
	*m = v
	return nil
}

// MarshalJSON implements json.Marshaler. Mode serializes as a JSON string.
func (m Mode) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain: invalid mode: %s", data)
	}
	return m.UnmarshalText([]byte(s))
}
