// Package engine implements the negamax search engine.
package engine

import (
	"github.com/hailam/corechess/internal/board"
)

// Evaluate returns the static evaluation of pos from the side-to-move's
// perspective: material balance plus a mobility term, nothing else. Kings
// are not counted in material (their presence is an invariant, not a
// variable to weigh).
func Evaluate(pos board.Position) int {
	material := materialBalance(pos)
	mobility := attackSetSize(pos, board.White) - attackSetSize(pos, board.Black)

	score := material + 2*mobility
	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// materialBalance returns (white material - black material) using the
// board package's point scale.
func materialBalance(pos board.Position) int {
	score := 0
	for pt := board.Pawn; pt < board.King; pt++ {
		score += pos.Pieces[board.White][pt].PopCount() * board.PieceValue[pt]
		score -= pos.Pieces[board.Black][pt].PopCount() * board.PieceValue[pt]
	}
	return score
}

// attackSetSize returns the sum, over every piece of color, of the
// popcount of that piece's own attack bitboard (a square attacked by two
// pieces of the same color is counted once per attacking piece).
func attackSetSize(pos board.Position, color board.Color) int {
	occupied := pos.AllOccupied
	count := 0

	pawns := pos.Pieces[color][board.Pawn]
	for pawns != 0 {
		sq := pawns.PopLSB()
		count += board.PawnAttacks(sq, color).PopCount()
	}

	knights := pos.Pieces[color][board.Knight]
	for knights != 0 {
		sq := knights.PopLSB()
		count += board.KnightAttacks(sq).PopCount()
	}

	bishops := pos.Pieces[color][board.Bishop]
	for bishops != 0 {
		sq := bishops.PopLSB()
		count += board.BishopAttacks(sq, occupied).PopCount()
	}

	rooks := pos.Pieces[color][board.Rook]
	for rooks != 0 {
		sq := rooks.PopLSB()
		count += board.RookAttacks(sq, occupied).PopCount()
	}

	queens := pos.Pieces[color][board.Queen]
	for queens != 0 {
		sq := queens.PopLSB()
		count += board.QueenAttacks(sq, occupied).PopCount()
	}

	count += board.KingAttacks(pos.KingSquare[color]).PopCount()

	return count
}
