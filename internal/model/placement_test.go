package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input string
		want  Placement
	}{
		{input: "", want: ReuseCurrent},
		{input: "reuse", want: ReuseCurrent},
		{input: "split-left", want: SplitLeft},
		{input: "Split-Right", want: SplitRight},
		{input: " focus-left ", want: FocusLeft},
		{input: "focus-right", want: FocusRight},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlacement(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlacement_Unknown(t *testing.T) {
	_, err := ParsePlacement("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
	assert.Contains(t, err.Error(), "focus-right")
}

func TestPlacement_String(t *testing.T) {
	for i, name := range Placements() {
		assert.Equal(t, name, Placement(i).String())
	}

	assert.Equal(t, "Placement(42)", Placement(42).String())
}
