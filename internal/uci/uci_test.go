package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/search"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler()
	assert.Equal(t, position.StartFen, h.pos.FEN())
}

func TestLoop(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestUciCommand(t *testing.T) {
	h := NewHandler()
	result := h.Command("uci")
	assert.Contains(t, result, "id name "+EngineName)
	assert.Contains(t, result, "id author "+EngineAuthor)
	assert.Contains(t, result, "option name Hash type spin")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestSetOptionHash(t *testing.T) {
	h := NewHandler()
	h.Command("setoption name Hash value 32")
	// a second resize shouldn't panic and should round-trip through
	// config's clamp.
	h.Command("setoption name Hash value 999999")
}

func TestPositionCommandStartpos(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	assert.Equal(t, position.StartFen, h.pos.FEN())
}

func TestPositionCommandFen(t *testing.T) {
	h := NewHandler()
	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.FEN())
}

func TestPositionCommandStartposWithMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5 g1f3 b8c6")
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", h.pos.FEN())
}

func TestPositionCommandIllegalMoveIsIgnored(t *testing.T) {
	h := NewHandler()
	before := h.pos.FEN()
	h.Command("position startpos moves e2e5")
	assert.Equal(t, before, h.pos.FEN())
}

// TestGoDepthSendsBestMove drives the search synchronously via srch.Go so
// the "info ..."/"bestmove" output can be asserted without racing the
// background goroutine goCommand spawns for real UCI use.
func TestGoDepthSendsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.srch.Go(h.pos, search.Limits{Depth: 3})
	h.sendBestMove()
	_ = h.OutIo.Flush()
	assert.Contains(t, buf.String(), "info depth")
	assert.Contains(t, buf.String(), "bestmove")
}

func TestStopCommandStopsSearch(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.handle("go infinite")
	h.handle("stop")
	assert.False(t, h.srch.IsSearching())
}

func TestUciNewGameResetsPosition(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4")
	h.Command("ucinewgame")
	assert.Equal(t, position.StartFen, h.pos.FEN())
}

func TestParseSetOption(t *testing.T) {
	name, value, ok := parseSetOption([]string{"setoption", "name", "Hash", "value", "128"})
	assert.True(t, ok)
	assert.Equal(t, "Hash", name)
	assert.Equal(t, "128", value)

	_, _, ok = parseSetOption([]string{"setoption"})
	assert.False(t, ok)
}

func TestPvString(t *testing.T) {
	assert.Equal(t, "", pvString(nil))
}
