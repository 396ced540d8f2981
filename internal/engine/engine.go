package engine

import (
	"github.com/hailam/corechess/internal/board"
)

// Engine is the external-facing driver over the core: it owns a Searcher
// and exposes the operations the core provides a caller — legal move
// generation, move application, best-move search, and perft — without
// any of the surrounding product concerns (opening books, tablebases,
// NNUE, UCI time management, parallel workers) that sit outside the
// core's scope.
type Engine struct {
	searcher *Searcher
}

// NewEngine creates an Engine ready for repeated use.
func NewEngine() *Engine {
	return &Engine{searcher: NewSearcher()}
}

// LegalMoves returns every legal move of pos.
func (e *Engine) LegalMoves(pos board.Position) *board.MoveList {
	return pos.GenerateLegalMoves()
}

// MakeMove applies move to pos if it is legal, returning the resulting
// position and true; otherwise pos is returned unchanged with false.
func (e *Engine) MakeMove(pos board.Position, move board.Move) (board.Position, bool) {
	return board.MakeMoveIfLegal(pos, move)
}

// BoardState classifies pos as ongoing, checkmate, or stalemate.
func (e *Engine) BoardState(pos board.Position) board.State {
	return pos.BoardState()
}

// BestMove searches pos to the given fixed depth and returns the best
// move found and its negamax score. history counts prior occurrences
// of positions earlier in the game, by piece-bitboard tuple, for
// threefold-repetition detection; pass nil if the game has no prior
// history. There is no time budget and no cancellation — the search
// runs to completion at the requested depth.
func (e *Engine) BestMove(pos board.Position, depth int, history map[board.BitboardTuple]int) (board.Move, int) {
	return e.searcher.Search(pos, depth, history)
}

// Nodes returns the number of negamax calls made during the last BestMove.
func (e *Engine) Nodes() uint64 {
	return e.searcher.Nodes()
}

// Perft counts the leaf nodes reachable from pos in exactly depth plies
// of legal moves, recursing over immutable Positions with no unmake.
func (e *Engine) Perft(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		nodes += e.Perft(pos.MakeMove(moves.Get(i)), depth-1)
	}
	return nodes
}

// Evaluate returns the static evaluation of pos from the side-to-move's
// perspective, with no search.
func (e *Engine) Evaluate(pos board.Position) int {
	return Evaluate(pos)
}
