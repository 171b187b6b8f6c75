package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
)

func TestLineScore(t *testing.T) {
	testCases := []struct {
		lines    int
		expected int
	}{
		{0, 0},
		{1, 100},
		{2, 250},
		{3, 400},
		{4, 550},
		{5, 700},
	}

	for _, tc := range testCases {
		if got := core.LineScore(tc.lines); got != tc.expected {
			t.Errorf("LineScore(%d) = %d, expected %d", tc.lines, got, tc.expected)
		}
	}
}
