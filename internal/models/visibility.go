package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Visibility is whether an item shows on the public menu
type Visibility string

const (
	VisibilityVisible Visibility = "VISIBLE"
	VisibilityPaused  Visibility = "PAUSED"
)

// Toggle returns the opposite state
func (v Visibility) Toggle() Visibility {
	if v == VisibilityPaused {
		return VisibilityVisible
	}
	return VisibilityPaused
}

// IsVisible treats the zero value as visible
func (v Visibility) IsVisible() bool {
	return v != VisibilityPaused
}

// WireValue is the representation the menu API stores (1 or 0)
func (v Visibility) WireValue() int {
	if v.IsVisible() {
		return 1
	}
	return 0
}

// ParseVisibility accepts the enum names as well as every legacy encoding.
// Missing and null values are visible.
func ParseVisibility(raw string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "null", "1", "true", "visible":
		return VisibilityVisible, nil
	case "0", "false", "paused":
		return VisibilityPaused, nil
	}
	return "", fmt.Errorf("invalid visibility %q", raw)
}

// MarshalJSON emits the enum name
func (v Visibility) MarshalJSON() ([]byte, error) {
	if v.IsVisible() {
		return json.Marshal(string(VisibilityVisible))
	}
	return json.Marshal(string(VisibilityPaused))
}

// UnmarshalJSON accepts 1/0, true/false, their string forms, the enum names and null
func (v *Visibility) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	parsed, err := ParseVisibility(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
