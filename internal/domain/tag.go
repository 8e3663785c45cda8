package domain

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Tag is one piece of qualitative throw feedback.
type Tag int

const (
	TagBullseye Tag = iota + 1
	TagJuiced
	TagOoof
	TagGoodLine
)

var tagNames = [...]string{
	TagBullseye: "Bullseye",
	TagJuiced:   "Juiced",
	TagOoof:     "Ooof",
	TagGoodLine: "GoodLine",
}

var (
	_ fmt.Stringer             = Tag(0)
	_ json.Marshaler           = Tag(0)
	_ json.Unmarshaler         = (*Tag)(nil)
	_ encoding.TextMarshaler   = Tag(0)
	_ encoding.TextUnmarshaler = (*Tag)(nil)
)

var tagMessages = [...]string{
	TagBullseye: "Bullseye!",
	TagJuiced:   "Juiced it!",
	TagOoof:     "Ooof!",
	TagGoodLine: "Good line!",
}

func (t Tag) isValid() bool {
	return t >= TagBullseye && t <= TagGoodLine
}

// String returns the tag name ("Bullseye", "Juiced", "Ooof", "GoodLine").
func (t Tag) String() string {
	if t.isValid() {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Message returns the toast text shown for the tag.
func (t Tag) Message() string {
	if t.isValid() {
		return tagMessages[t]
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.isValid() {
		return nil, fmt.Errorf("domain: invalid tag: %d", int(t))
	}
	return []byte(tagNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	for i := TagBullseye; i <= TagGoodLine; i++ {
		if tagNames[i] == string(text) {
			*t = i
			return nil
		}
	}
	return fmt.Errorf("domain: invalid tag: %q", text)
}

// MarshalJSON implements json.Marshaler. Tag serializes as its name.
func (t Tag) MarshalJSON() ([]byte, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain: invalid tag: %s", data)
	}
	return t.UnmarshalText([]byte(s))
}

// Messages returns the toast text for every tag, in order.
func Messages(tags []Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Message())
	}
	return out
}
