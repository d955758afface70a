package models

import (
	"fmt"
	"strings"
)

// ItemStatus defines the lifecycle state of an item in the demo API.
// It is rendered by name both in JSON and in query strings.
type ItemStatus int

const (
	// ItemStatusDraft marks an item that is not visible to other users yet.
	ItemStatusDraft ItemStatus = iota

	// ItemStatusActive marks a published item.
	ItemStatusActive

	// ItemStatusArchived marks an item that is kept only for history.
	ItemStatusArchived
)

var itemStatusNames = map[ItemStatus]string{
	ItemStatusDraft:    "Draft",
	ItemStatusActive:   "Active",
	ItemStatusArchived: "Archived",
}

// String returns the status name, or "Unknown" for values outside the enum.
func (s ItemStatus) String() string {
	if name, ok := itemStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText renders the status by name.
func (s ItemStatus) MarshalText() ([]byte, error) {
	if _, ok := itemStatusNames[s]; !ok {
		return nil, fmt.Errorf("unknown item status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name, case-insensitively.
func (s *ItemStatus) UnmarshalText(text []byte) error {
	for status, name := range itemStatusNames {
		if strings.EqualFold(name, string(text)) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown item status %q", text)
}
