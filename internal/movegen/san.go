package movegen

import (
	"regexp"
	"strings"

	"github.com/corvid/corvid/internal/position"
	. "github.com/corvid/corvid/internal/types"
)

// regexSanMove matches standard algebraic notation: an optional piece
// letter, optional file/rank disambiguation, an optional capture "x", the
// destination square (or a castling token), an optional promotion suffix
// and trailing check/mate/annotation punctuation, which is ignored.
var regexSanMove = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?[!?+#]*$`)

// ParseSAN resolves a SAN token (as found in EPD "bm"/"am" opcodes, e.g.
// "Nf3", "exd5", "O-O", "e8=Q") against pos's legal moves. It returns
// MoveNone if the token is malformed, ambiguous or matches nothing.
func ParseSAN(pos *position.Position, san string) Move {
	matches := regexSanMove.FindStringSubmatch(strings.TrimSpace(san))
	if matches == nil {
		return MoveNone
	}
	pieceLetter := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	dest := matches[4]
	promoLetter := matches[6]

	found := MoveNone
	count := 0

	for _, m := range GenerateLegalMoves(pos).Slice() {
		if m.MoveType() == Castling {
			var castleToken string
			switch m.To() {
			case SqG1, SqG8:
				castleToken = "O-O"
			case SqC1, SqC8:
				castleToken = "O-O-O"
			default:
				continue
			}
			if castleToken == dest {
				found = m
				count++
			}
			continue
		}

		if m.To().String() != dest {
			continue
		}

		movingType := pos.PieceAt(m.From()).TypeOf()
		movingLetter := strings.ToUpper(movingType.String())
		switch {
		case pieceLetter != "" && movingLetter != pieceLetter:
			continue
		case pieceLetter == "" && movingType != Pawn:
			continue
		}

		if disambFile != "" && m.From().FileOf().String() != disambFile {
			continue
		}
		if disambRank != "" && m.From().RankOf().String() != disambRank {
			continue
		}

		if promoLetter != "" {
			if m.MoveType() != Promotion || strings.ToUpper(m.PromotionType().String()) != promoLetter {
				continue
			}
		} else if m.MoveType() == Promotion {
			continue
		}

		found = m
		count++
	}

	if count != 1 {
		return MoveNone
	}
	return found
}
