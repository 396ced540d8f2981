package engine

import (
	"testing"

	"github.com/hailam/corechess/internal/board"
)

func TestBestMoveStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine()

	move, _ := eng.BestMove(pos, 3, nil)
	if move == board.NoMove {
		t.Fatal("BestMove returned NoMove for starting position")
	}
	if _, ok := eng.MakeMove(pos, move); !ok {
		t.Errorf("BestMove returned a move MakeMove rejects as illegal: %s", move.String())
	}
}

func TestBestMoveDeliversMateInOne(t *testing.T) {
	pos, err := board.ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}

	eng := NewEngine()
	move, score := eng.BestMove(pos, 2, nil)
	if move == board.NoMove {
		t.Fatal("BestMove returned NoMove")
	}

	next, ok := eng.MakeMove(pos, move)
	if !ok {
		t.Fatalf("BestMove chose an illegal move: %s", move.String())
	}
	if next.BoardState() != board.Checkmate {
		t.Errorf("expected mate-in-one, got board state %v after %s", next.BoardState(), move.String())
	}
	if score <= Mate-10 {
		t.Errorf("expected near-mate score, got %d", score)
	}
}

func TestBestMoveRespectsRepetitionHistory(t *testing.T) {
	pos := board.NewPosition()
	eng := NewEngine()

	history := map[board.BitboardTuple]int{pos.Tuple(): 2}
	move, score := eng.BestMove(pos, 2, history)
	if move == board.NoMove {
		t.Fatal("BestMove returned NoMove for starting position")
	}
	if score != 0 {
		t.Errorf("expected draw score 0 with a pre-seeded repetition, got %d", score)
	}
	if len(history) != 1 || history[pos.Tuple()] != 2 {
		t.Errorf("BestMove must leave caller's history map as it found it, got %v", history)
	}
}

func TestPerftMatchesKnownNodeCounts(t *testing.T) {
	eng := NewEngine()
	pos := board.NewPosition()

	tests := []struct {
		depth    int
		expected uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tc := range tests {
		if got := eng.Perft(pos, tc.depth); got != tc.expected {
			t.Errorf("Perft(depth=%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestBoardStateClassifiesCheckmateAndStalemate(t *testing.T) {
	mate, err := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}
	eng := NewEngine()
	if eng.BoardState(mate) != board.Checkmate {
		t.Errorf("expected checkmate, got %v", eng.BoardState(mate))
	}

	stalemate, err := board.ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatalf("failed to parse FEN: %v", err)
	}
	if eng.BoardState(stalemate) != board.Stalemate {
		t.Errorf("expected stalemate, got %v", eng.BoardState(stalemate))
	}
}
