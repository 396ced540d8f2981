package perft

import (
	"context"
	"testing"

	"github.com/hailam/corechess/internal/board"
)

func TestCountStartingPosition(t *testing.T) {
	pos := board.NewPosition()

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		if got := Count(pos, tc.depth); got != tc.expected {
			t.Errorf("Count(depth=%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestCountParallelMatchesSequential(t *testing.T) {
	pos := board.NewPosition()

	for depth := 1; depth <= 4; depth++ {
		want := Count(pos, depth)
		got, err := CountParallel(context.Background(), pos, depth)
		if err != nil {
			t.Fatalf("CountParallel(depth=%d) returned error: %v", depth, err)
		}
		if got != want {
			t.Errorf("CountParallel(depth=%d) = %d, want %d (sequential)", depth, got, want)
		}
	}
}

func TestDivideSumsToTotal(t *testing.T) {
	pos := board.NewPosition()
	depth := 3

	divided := Divide(pos, depth)

	var sum uint64
	for _, n := range divided {
		sum += n
	}

	if want := Count(pos, depth); sum != want {
		t.Errorf("Divide sums to %d, want %d", sum, want)
	}

	moves := pos.GenerateLegalMoves()
	if len(divided) != moves.Len() {
		t.Errorf("Divide has %d entries, want %d (one per root move)", len(divided), moves.Len())
	}
}
