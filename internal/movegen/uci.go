package movegen

import (
	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// ParseUCI resolves a "<from><to>[promo]" token (spec §6, e.g. "e7e8q")
// against pos's pseudo-legal moves, returning the fully-typed Move (with
// its castling/en-passant/promotion flag set correctly) or (MoveNone,
// false) if no pseudo-legal move matches. promo case is irrelevant; the
// destination rank alone would otherwise identify a valid promotion, but
// matching against the generated list also rejects tokens that aren't
// reachable moves at all.
func ParseUCI(pos *position.Position, token string) (Move, bool) {
	if len(token) < 4 {
		return MoveNone, false
	}
	from := MakeSquare(token[0:2])
	to := MakeSquare(token[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, false
	}
	promo := PtNone
	if len(token) >= 5 {
		promo = promotionFromChar(token[4])
	}

	for _, m := range GenerateAll(pos).Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.MoveType() == Promotion {
			if m.PromotionType() == promo {
				return m, true
			}
			continue
		}
		if promo == PtNone {
			return m, true
		}
	}
	return MoveNone, false
}

func promotionFromChar(c byte) PieceType {
	switch c {
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	default:
		return PtNone
	}
}
