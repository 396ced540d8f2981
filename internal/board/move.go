package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   origin square (0-63)
// bits 6-11:  destination square (0-63)
// bits 12-15: move-type tag
//
// The encoding is total and injective over the legal domain: no two
// distinct legal moves collide, and since a real move always has
// origin != destination, the all-zero pattern (which doubles as the
// MoveType zero value, QuietMove) can never arise from a legal move. A
// MoveList still tracks its length explicitly rather than leaning on that
// fact, since relying on an all-zero sentinel is a sharp edge worth
// avoiding rather than depending on.
type Move uint16

// MoveType is the 4-bit move-type tag.
type MoveType uint8

const (
	QuietMove MoveType = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Capture
	EnPassant
	QueenPromotion
	RookPromotion
	BishopPromotion
	KnightPromotion
	QueenPromotionCapture
	RookPromotionCapture
	BishopPromotionCapture
	KnightPromotionCapture
)

// NoMove represents an invalid or null move. Never produced by a legal
// move encoding (see the Move doc comment).
const NoMove Move = 0

func encode(from, to Square, t MoveType) Move {
	return Move(from) | Move(to)<<6 | Move(t)<<12
}

// NewMove creates a quiet (non-capture, non-special) move.
func NewMove(from, to Square) Move {
	return encode(from, to, QuietMove)
}

// NewCapture creates a non-promotion capture.
func NewCapture(from, to Square) Move {
	return encode(from, to, Capture)
}

// NewDoublePawnPush creates a two-square pawn advance from its start rank.
func NewDoublePawnPush(from, to Square) Move {
	return encode(from, to, DoublePawnPush)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return encode(from, to, EnPassant)
}

// NewCastling creates a castling move (king's movement only).
func NewCastling(from, to Square, kingside bool) Move {
	if kingside {
		return encode(from, to, KingCastle)
	}
	return encode(from, to, QueenCastle)
}

var promoTag = [4]MoveType{KnightPromotion, BishopPromotion, RookPromotion, QueenPromotion}
var promoCaptureTag = [4]MoveType{KnightPromotionCapture, BishopPromotionCapture, RookPromotionCapture, QueenPromotionCapture}

// promoIndex maps a promotion PieceType to its 0-3 slot (Knight=0..Queen=3).
func promoIndex(pt PieceType) int {
	return int(pt - Knight)
}

// NewPromotion creates a promotion move (capture is inferred by the caller
// via isCapture, since the origin position, not the Move, knows whether
// the destination square was occupied).
func NewPromotion(from, to Square, promo PieceType, isCapture bool) Move {
	idx := promoIndex(promo)
	if isCapture {
		return encode(from, to, promoCaptureTag[idx])
	}
	return encode(from, to, promoTag[idx])
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Type returns the move-type tag.
func (m Move) Type() MoveType {
	return MoveType(m >> 12)
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type() >= QueenPromotion
}

// Promotion returns the promotion piece type (only valid if IsPromotion()).
func (m Move) Promotion() PieceType {
	switch m.Type() {
	case QueenPromotion, QueenPromotionCapture:
		return Queen
	case RookPromotion, RookPromotionCapture:
		return Rook
	case BishopPromotion, BishopPromotionCapture:
		return Bishop
	case KnightPromotion, KnightPromotionCapture:
		return Knight
	default:
		return NoPieceType
	}
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	t := m.Type()
	return t == KingCastle || t == QueenCastle
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type() == EnPassant
}

// IsCapture returns true if this move captures a piece, including
// promotion-captures and en passant.
func (m Move) IsCapture() bool {
	switch m.Type() {
	case Capture, EnPassant, QueenPromotionCapture, RookPromotionCapture, BishopPromotionCapture, KnightPromotionCapture:
		return true
	default:
		return false
	}
}

// IsQuiet returns true if this is not a capture, castle, or promotion.
func (m Move) IsQuiet() bool {
	return m.Type() == QuietMove || m.Type() == DoublePawnPush
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
		s += string(promoChars[m.Promotion()])
	}

	return s
}

// ParseMove parses a UCI format move string against a position, to
// recover the move-type tag the bare from/to squares don't carry.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	pt := piece.Type()
	capture := !pos.IsEmpty(to)

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo, capture), nil
	}

	if pt == King && abs(int(to)-int(from)) == 2 {
		return NewCastling(from, to, to.File() == 6), nil
	}

	if pt == Pawn && to == pos.EnPassant && capture == false && from.File() != to.File() {
		return NewEnPassant(from, to), nil
	}

	if pt == Pawn && abs(to.Rank()-from.Rank()) == 2 {
		return NewDoublePawnPush(from, to), nil
	}

	if capture {
		return NewCapture(from, to), nil
	}
	return NewMove(from, to), nil
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
