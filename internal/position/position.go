package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/corvid/corvid/internal/assert"
	"github.com/corvid/corvid/internal/attacks"
	mylog "github.com/corvid/corvid/internal/logging"
	. "github.com/corvid/corvid/internal/types"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = mylog.GetLog()
	}
	return log
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the make/unmake stack; long games simply never reach it
// within the length of a single search/game.
const maxHistory = 2048

// Position is the full game state: the board plus whose move it is,
// castling rights, the en-passant target, clocks and the running Zobrist
// key. Create with NewPosition/NewPositionFen; mutate only through
// DoMove/UndoMove.
type Position struct {
	Board

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	plyCount        int
	key             Key

	historyCount int
	history      [maxHistory]UndoInfo
	keyHistory   []Key
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	p, _ := NewPositionFen(StartFen)
	return p
}

// NewPositionFen creates a position from a FEN string, or returns an error
// describing what was wrong with it. The core never calls DoMove/search on
// a Position whose construction failed.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{Board: newEmptyBoard(), enPassantSquare: SqNone}
	if err := p.setupFromFen(fen); err != nil {
		getLog().Errorf("invalid fen %q: %v", fen, err)
		return nil, err
	}
	p.keyHistory = append(p.keyHistory, p.key)
	return p, nil
}

// Clone returns a deep, independent copy suitable for a concurrent search
// thread to mutate freely (spec §5: `go` clones the position before the
// worker starts searching it).
func (p *Position) Clone() *Position {
	c := *p
	c.keyHistory = append([]Key(nil), p.keyHistory...)
	return &c
}

func (p *Position) setupFromFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("fen needs at least 4 fields, got %d", len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen board needs 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += File(ch - '0')
			default:
				pc := PieceFromChar(byte(ch))
				if pc == PieceNone {
					return fmt.Errorf("invalid piece char %q", ch)
				}
				if !file.IsValid() {
					return fmt.Errorf("rank %d overflows with piece %q", i, ch)
				}
				p.Put(pc, SquareOf(file, rank))
				file++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("invalid side to move %q", fields[1])
	}

	p.castlingRights = NoCastling
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights = p.castlingRights.Add(WhiteKingside)
			case 'Q':
				p.castlingRights = p.castlingRights.Add(WhiteQueenside)
			case 'k':
				p.castlingRights = p.castlingRights.Add(BlackKingside)
			case 'q':
				p.castlingRights = p.castlingRights.Add(BlackQueenside)
			default:
				return fmt.Errorf("invalid castling char %q", ch)
			}
		}
	}

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("invalid en passant square %q", fields[3])
		}
		if sq.RankOf() != Rank3 && sq.RankOf() != Rank6 {
			return fmt.Errorf("en passant square %q not on rank 3 or 6", fields[3])
		}
		p.enPassantSquare = sq
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = v
		}
	}
	fullMove := 1
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			fullMove = v
		}
	}
	p.plyCount = (fullMove - 1) * 2
	if p.sideToMove == Black {
		p.plyCount++
	}

	p.key = p.computeKeyFromScratch()
	return nil
}

func (p *Position) computeKeyFromScratch() Key {
	var k Key
	for sq := SqA1; sq < SqNone; sq++ {
		if pc := p.PieceAt(sq); pc != PieceNone {
			k ^= zobristPieceSquare(pc, sq)
		}
	}
	if p.sideToMove == Black {
		k ^= zobrist.sideToMove
	}
	k ^= zobristCastling(p.castlingRights)
	if p.enPassantSquare != SqNone {
		k ^= zobristEnPassant(p.enPassantSquare.FileOf())
	}
	return k
}

// FEN renders the current position back to a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
		if r == Rank1 {
			break
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.plyCount/2 + 1))
	return sb.String()
}

func (p *Position) String() string {
	return p.FEN()
}

// Accessors

func (p *Position) SideToMove() Color             { return p.sideToMove }
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }
func (p *Position) EnPassantSquare() Square        { return p.enPassantSquare }
func (p *Position) HalfMoveClock() int             { return p.halfMoveClock }
func (p *Position) PlyCount() int                  { return p.plyCount }
func (p *Position) ZobristKey() Key                { return p.key }

// IsInCheck reports whether color's king is currently attacked.
func (p *Position) IsInCheck(c Color) bool {
	return attacks.IsInCheck(&p.Board, c)
}

// IsLegalMove reports whether a pseudo-legal move m is legal, i.e. true
// when it does not leave the mover's own king in check. This is the legality filter spec'd for the move
// generator: do_move, test check, undo_move (§4.4).
func (p *Position) IsLegalMove(m Move) bool {
	mover := p.sideToMove
	p.DoMove(m)
	legal := !p.IsInCheck(mover)
	p.UndoMove()
	return legal
}

// IsAttacked reports whether sq is attacked by a piece of color `by`.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return attacks.IsAttacked(&p.Board, sq, by)
}

// IsFiftyMoveDraw reports the 50-move-rule draw condition (spec §4.3).
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfMoveClock >= 100
}

// IsRepetitionDraw reports whether the current key has occurred at least
// `priorOccurrences` times earlier in keyHistory (spec keeps the full
// game-plus-search-stack history; see DESIGN.md Open Question).
func (p *Position) IsRepetitionDraw(priorOccurrences int) bool {
	count := 0
	// Only positions with the same side to move can repeat; stride by 2.
	for i := len(p.keyHistory) - 3; i >= 0; i -= 2 {
		if p.keyHistory[i] == p.key {
			count++
			if count >= priorOccurrences {
				return true
			}
		}
	}
	return false
}

// DoMove commits m to the board. m must be a move produced by the move
// generator for this exact position; the generator is the only legal
// input to DoMove (spec §7) and an invalid move here is a programmer
// error, asserted away in debug builds only.
func (p *Position) DoMove(m Move) {
	fromSq, toSq := m.From(), m.To()
	movingPiece := p.PieceAt(fromSq)

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "DoMove: invalid move %s", m)
		assert.Assert(movingPiece != PieceNone, "DoMove: no piece on %s for move %s", fromSq, m)
	}

	info := UndoInfo{
		Move:               m,
		MovingPiece:        movingPiece,
		CastlingRightsPrev: p.castlingRights,
		HalfMoveClockPrev:  p.halfMoveClock,
		EnPassantPrev:      p.enPassantSquare,
		KeyPrev:            uint64(p.key),
	}

	var captured Piece
	switch m.MoveType() {
	case Normal:
		captured = p.doNormalMove(fromSq, toSq, movingPiece)
	case Promotion:
		captured = p.doPromotionMove(m, fromSq, toSq, movingPiece)
	case EnPassant:
		captured = p.doEnPassantMove(fromSq, toSq, movingPiece)
	case Castling:
		captured = PieceNone
		p.doCastlingMove(fromSq, toSq, movingPiece)
	}
	info.CapturedPiece = captured

	// castling rights: drop king's own rights, drop whichever corner right
	// `from`/`to` extinguish (covers both a moving rook and a captured one).
	p.key ^= zobristCastling(p.castlingRights)
	if movingPiece.TypeOf() == King {
		p.castlingRights = p.castlingRights.RemoveForColor(movingPiece.ColorOf())
	}
	p.castlingRights = p.castlingRights.RemoveForCorner(fromSq).RemoveForCorner(toSq)
	p.key ^= zobristCastling(p.castlingRights)

	// en passant: clear, then re-set only if this was a double pawn push
	// with a capturable opposing pawn beside the arrival square.
	if p.enPassantSquare != SqNone {
		p.key ^= zobristEnPassant(p.enPassantSquare.FileOf())
	}
	p.enPassantSquare = SqNone
	if movingPiece.TypeOf() == Pawn && fromSq.RankDiff(toSq) == 2 {
		candidate := SquareOf(fromSq.FileOf(), (fromSq.RankOf()+toSq.RankOf())/2)
		opp := movingPiece.ColorOf().Flip()
		if epCaptureAvailable(p, toSq, opp) {
			p.enPassantSquare = candidate
			p.key ^= zobristEnPassant(candidate.FileOf())
		}
	}

	if movingPiece.TypeOf() == Pawn || captured != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zobrist.sideToMove
	p.plyCount++

	p.history[p.historyCount] = info
	p.historyCount++
	p.keyHistory = append(p.keyHistory, p.key)
}

// epCaptureAvailable reports whether an opposing pawn stands beside toSq
// ready to capture en passant, the condition spec §3 requires before the
// key (and the en-passant square) includes it at all.
func epCaptureAvailable(p *Position, toSq Square, opp Color) bool {
	for _, neighbor := range [2]Square{toSq.To(East), toSq.To(West)} {
		if neighbor != SqNone && p.PieceAt(neighbor) == MakePiece(opp, Pawn) {
			return true
		}
	}
	return false
}

func (p *Position) doNormalMove(fromSq, toSq Square, movingPiece Piece) Piece {
	captured := p.PieceAt(toSq)
	if captured != PieceNone {
		p.Remove(toSq)
		p.key ^= zobristPieceSquare(captured, toSq)
	}
	p.Remove(fromSq)
	p.key ^= zobristPieceSquare(movingPiece, fromSq)
	p.Put(movingPiece, toSq)
	p.key ^= zobristPieceSquare(movingPiece, toSq)
	return captured
}

func (p *Position) doPromotionMove(m Move, fromSq, toSq Square, movingPiece Piece) Piece {
	captured := p.PieceAt(toSq)
	if captured != PieceNone {
		p.Remove(toSq)
		p.key ^= zobristPieceSquare(captured, toSq)
	}
	p.Remove(fromSq)
	p.key ^= zobristPieceSquare(movingPiece, fromSq)
	promoted := MakePiece(movingPiece.ColorOf(), m.PromotionType())
	p.Put(promoted, toSq)
	p.key ^= zobristPieceSquare(promoted, toSq)
	return captured
}

func (p *Position) doEnPassantMove(fromSq, toSq Square, movingPiece Piece) Piece {
	capturedSq := SquareOf(toSq.FileOf(), fromSq.RankOf())
	captured := p.PieceAt(capturedSq)
	p.Remove(capturedSq)
	p.key ^= zobristPieceSquare(captured, capturedSq)
	p.Remove(fromSq)
	p.key ^= zobristPieceSquare(movingPiece, fromSq)
	p.Put(movingPiece, toSq)
	p.key ^= zobristPieceSquare(movingPiece, toSq)
	return captured
}

func (p *Position) doCastlingMove(fromSq, toSq Square, king Piece) {
	p.Remove(fromSq)
	p.key ^= zobristPieceSquare(king, fromSq)
	p.Put(king, toSq)
	p.key ^= zobristPieceSquare(king, toSq)

	rookFrom, rookTo := castlingRookSquares(toSq)
	rook := p.PieceAt(rookFrom)
	p.Remove(rookFrom)
	p.key ^= zobristPieceSquare(rook, rookFrom)
	p.Put(rook, rookTo)
	p.key ^= zobristPieceSquare(rook, rookTo)
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("invalid castling destination %s", kingTo))
	}
}

// UndoMove reverts the last DoMove call, restoring every field DoMove
// could have touched. position_test.go checks undo(do(P, m)) == P for a
// set of fixed moves.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCount > 0, "UndoMove: nothing to undo")
	}
	p.historyCount--
	info := p.history[p.historyCount]
	p.keyHistory = p.keyHistory[:len(p.keyHistory)-1]

	m := info.Move
	fromSq, toSq := m.From(), m.To()

	switch m.MoveType() {
	case Normal:
		p.Remove(toSq)
		p.Put(info.MovingPiece, fromSq)
		if info.CapturedPiece != PieceNone {
			p.Put(info.CapturedPiece, toSq)
		}
	case Promotion:
		p.Remove(toSq)
		p.Put(info.MovingPiece, fromSq)
		if info.CapturedPiece != PieceNone {
			p.Put(info.CapturedPiece, toSq)
		}
	case EnPassant:
		capturedSq := SquareOf(toSq.FileOf(), fromSq.RankOf())
		p.Remove(toSq)
		p.Put(info.MovingPiece, fromSq)
		p.Put(info.CapturedPiece, capturedSq)
	case Castling:
		p.Remove(toSq)
		p.Put(info.MovingPiece, fromSq)
		rookFrom, rookTo := castlingRookSquares(toSq)
		rook := p.PieceAt(rookTo)
		p.Remove(rookTo)
		p.Put(rook, rookFrom)
	}

	p.castlingRights = info.CastlingRightsPrev
	p.enPassantSquare = info.EnPassantPrev
	p.halfMoveClock = info.HalfMoveClockPrev
	p.key = Key(info.KeyPrev)
	p.sideToMove = p.sideToMove.Flip()
	p.plyCount--
}
