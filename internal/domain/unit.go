package domain

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// FeetPerMeter is the fixed metric/imperial conversion factor.
const FeetPerMeter = 3.28084

// Unit selects how distances are displayed. Stored geometry is always lat/lon.
type Unit int

const (
	Imperial Unit = iota // feet
	Metric               // meters
)

var (
	_ fmt.Stringer             = Unit(0)
	_ json.Marshaler           = Unit(0)
	_ json.Unmarshaler         = (*Unit)(nil)
	_ encoding.TextMarshaler   = Unit(0)
	_ encoding.TextUnmarshaler = (*Unit)(nil)
)

// String returns "imperial" or "metric".
func (u Unit) String() string {
	switch u {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsMetric reports whether u is Metric.
func (u Unit) IsMetric() bool { return u == Metric }

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Metric {
		return Imperial
	}
	return Metric
}

// Abbrev returns the short display suffix ("ft" or "m").
func (u Unit) Abbrev() string {
	if u == Metric {
		return "m"
	}
	return "ft"
}

// FromMeters converts a length in meters to u, unrounded.
func (u Unit) FromMeters(meters float64) float64 {
	if u == Metric {
		return meters
	}
	return meters * FeetPerMeter
}

// ConvertRounded converts a cached whole-unit value from one unit to another,
// rounding to the nearest whole unit. Repeated conversions accumulate rounding.
func ConvertRounded(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == Metric {
		return math.Round(value * FeetPerMeter)
	}
	return math.Round(value / FeetPerMeter)
}

// ParseUnit accepts "metric"/"m" or "imperial"/"ft" (case-insensitive).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "imperial", "ft", "feet":
		return Imperial, nil
	case "metric", "m", "meters":
		return Metric, nil
	}
	return Imperial, fmt.Errorf("domain: invalid unit: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if u != Imperial && u != Metric {
		return nil, fmt.Errorf("domain: invalid unit: %d", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts every
// spelling ParseUnit does.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (u Unit) MarshalJSON() ([]byte, error) {
	text, err := u.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain: invalid unit: %s", data)
	}
	return u.UnmarshalText([]byte(s))
}
