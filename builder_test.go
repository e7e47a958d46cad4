package wselect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wselect "github.com/loyd/weighted-select"
)

func TestAppendRejectsNonPositiveWeight(t *testing.T) {
	tests := []struct {
		name   string
		weight int
	}{
		{name: "zero weight", weight: 0},
		{name: "negative weight", weight: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "wselect: weight must be positive", func() {
				wselect.NewBuilder[int]().Append(wselect.FromSlice(1), tt.weight)
			})
		})
	}
}

func TestBuilderIsSpentAfterBuild(t *testing.T) {
	b := wselect.NewBuilder[int]().
		Append(wselect.FromSlice(1), 1)
	b.Build()

	assert.PanicsWithValue(t, "wselect: Append called after Build", func() {
		b.Append(wselect.FromSlice(2), 1)
	})
	assert.PanicsWithValue(t, "wselect: Build called twice", func() {
		b.Build()
	})
}

func TestZeroBuilderIsUsable(t *testing.T) {
	var b wselect.Builder[int]
	b.Append(wselect.FromSlice(1, 2), 1)

	assert.Equal(t, []int{1, 2}, drain(t, b.Build()))
}
