package types

// MoveType distinguishes the four shapes a move can take; each needs
// slightly different handling in DoMove/UndoMove and in the generator.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// Move is a compact encoding of a pseudo-legal move: origin and destination
// square, promotion piece type (if any) and move type. It carries no undo
// information of its own — Position.DoMove/UndoMove keep that on an
// internal history stack so a Move stays small enough to live in the
// transposition table, killer slots and history table.
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-14: promotion piece type (valid only when MoveType==Promotion)
//	bits 15-16: move type
type Move uint32

const MoveNone Move = 0

// NewMove builds a Normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotionMove builds a Promotion move to the given piece type.
func NewPromotionMove(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo)<<12 | Move(Promotion)<<15
}

// NewEnPassantMove builds an EnPassant capture move.
func NewEnPassantMove(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(EnPassant)<<15
}

// NewCastlingMove builds a Castling move (king's from/to square only; the
// rook's move is implied by the destination file).
func NewCastlingMove(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(Castling)<<15
}

func (m Move) From() Square {
	return Square(m & 0x3F)
}

func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

func (m Move) PromotionType() PieceType {
	return PieceType((m >> 12) & 0x7)
}

func (m Move) MoveType() MoveType {
	return MoveType((m >> 15) & 0x3)
}

// IsValid reports whether m encodes a real (non-null) move with distinct
// endpoints.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().String()
	}
	return s
}

// UndoInfo captures everything Position.UndoMove needs to invert a DoMove
// call: the moving piece, the captured piece (if any, with en-passant
// resolved to the actual captured pawn square), and the state fields a move
// can clobber.
type UndoInfo struct {
	Move               Move
	MovingPiece        Piece
	CapturedPiece      Piece
	CastlingRightsPrev CastlingRights
	HalfMoveClockPrev  int
	EnPassantPrev      Square
	KeyPrev            uint64
}
