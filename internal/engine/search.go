package engine

import (
	"github.com/hailam/corechess/internal/board"
)

// Mate is a constant larger than any material swing can produce, used as
// the base of mate-distance scoring. Infinity bounds the initial
// alpha-beta window.
const (
	Mate     = 999999
	Infinity = Mate + 1
)

// Searcher runs negamax alpha-beta search over immutable Positions. It
// carries no transposition table, no quiescence search, and no move
// ordering beyond the move generator's own enumeration order: it searches
// exactly what legal_moves(pos) hands it, in that order, to a fixed
// depth. There is no cancellation mechanism — a search runs to the
// requested depth and returns; a caller wanting a time budget owns that
// externally, on its own copy of the position.
type Searcher struct {
	nodes    uint64
	maxDepth int
	history  map[board.BitboardTuple]int
	best     board.Move
}

// NewSearcher creates a Searcher ready for repeated use across positions.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Nodes returns the number of negamax calls made during the last Search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search returns the best move for pos and its negamax score, searching
// to the given depth. history counts prior occurrences of positions
// earlier in the game (by piece-bitboard tuple, per the repetition rule
// in negamax); pass nil if there is no game history to seed. Search
// leaves history exactly as it found it — entries added while
// exploring the tree are unwound before returning. The returned move is
// NoMove if pos has no legal moves.
func (s *Searcher) Search(pos board.Position, depth int, history map[board.BitboardTuple]int) (board.Move, int) {
	s.nodes = 0
	s.maxDepth = depth
	s.best = board.NoMove

	if history == nil {
		history = make(map[board.BitboardTuple]int)
	}
	s.history = history

	tuple := pos.Tuple()
	s.history[tuple]++
	score := s.negamax(pos, depth, 0, -Infinity, Infinity)
	s.history[tuple]--
	if s.history[tuple] == 0 {
		delete(s.history, tuple)
	}

	// The root can be scored without visiting any child (a repetition draw,
	// or depth 0); fall back to the first legal move, the same first-found
	// choice the search makes among equal scores.
	if s.best == board.NoMove {
		if moves := pos.GenerateLegalMoves(); moves.Len() > 0 {
			s.best = moves.Get(0)
		}
	}

	return s.best, score
}

// negamax implements negamax with alpha-beta pruning, mate-distance
// scoring, and threefold-repetition draw detection keyed by the
// piece-bitboard tuple. The move ordering is whatever GenerateLegalMoves
// produces: no captures-first, no killer moves, no history heuristic.
func (s *Searcher) negamax(pos board.Position, depth, ply int, alpha, beta int) int {
	s.nodes++

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if pos.InCheck() {
			return -Mate + (s.maxDepth - depth)
		}
		return 0
	}

	if s.history[pos.Tuple()] >= 2 {
		return 0
	}

	if depth == 0 {
		return Evaluate(pos)
	}

	best := -Infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		next := pos.MakeMove(m)

		tuple := next.Tuple()
		s.history[tuple]++
		score := -s.negamax(next, depth-1, ply+1, -beta, -alpha)
		s.history[tuple]--
		if s.history[tuple] == 0 {
			delete(s.history, tuple)
		}

		if score > best {
			best = score
			if ply == 0 {
				s.best = m
			}
		}
		if best >= beta {
			break
		}
		if best > alpha {
			alpha = best
		}
	}

	return best
}
