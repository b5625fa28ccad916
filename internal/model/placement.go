package model

import (
	"fmt"
	"strings"
)

// Placement controls which window an opened file lands in.
type Placement int

const (
	// ReuseCurrent opens the file in the active window.
	ReuseCurrent Placement = iota
	// SplitLeft opens the file in a new vertical split to the left.
	SplitLeft
	// SplitRight opens the file in a new vertical split to the right.
	SplitRight
	// FocusLeft opens the file in the window to the left, splitting if there is none.
	FocusLeft
	// FocusRight opens the file in the window to the right, splitting if there is none.
	FocusRight
)

var placementNames = []string{
	ReuseCurrent: "reuse",
	SplitLeft:    "split-left",
	SplitRight:   "split-right",
	FocusLeft:    "focus-left",
	FocusRight:   "focus-right",
}

func (p Placement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return fmt.Sprintf("Placement(%d)", int(p))
	}

	return placementNames[p]
}

// Placements returns every placement name in declaration order.
func Placements() []string {
	names := make([]string, len(placementNames))
	copy(names, placementNames)

	return names
}

// ParsePlacement converts a placement name into a Placement. The empty string
// maps to ReuseCurrent.
func ParsePlacement(value string) (Placement, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return ReuseCurrent, nil
	}

	for i, candidate := range placementNames {
		if candidate == name {
			return Placement(i), nil
		}
	}

	return ReuseCurrent, fmt.Errorf("unknown placement %q (expected one of %s)", value, strings.Join(placementNames, ", "))
}
