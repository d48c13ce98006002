// Package uci implements the UCI text protocol front-end: the line-based
// command loop, FEN/move parsing glue, and the default reporter that
// prints search progress to the UCI user interface (spec §1 external
// collaborators, §6).
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/corvid/corvid/internal/config"
	myLogging "github.com/corvid/corvid/internal/logging"
	"github.com/corvid/corvid/internal/movegen"
	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/search"
	. "github.com/corvid/corvid/internal/types"
)

// EngineName and EngineAuthor answer the "uci" handshake.
const (
	EngineName   = "corvid"
	EngineAuthor = "corvid contributors"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Handler owns the protocol loop, the current Position and the Search
// instance it drives. Create with NewHandler(); call Loop() to read
// commands from stdin until "quit".
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *position.Position
	srch   *search.Search
	log    *logging.Logger
	uciLog *logging.Logger
}

// NewHandler creates a Handler wired to stdin/stdout, the standard
// starting position and a fresh Search sized per config.Settings.
func NewHandler() *Handler {
	config.Setup()
	h := &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.NewPosition(),
		srch:   search.NewSearch(config.Settings.Search.HashSizeMb),
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUciLog(),
	}
	h.InIo.Buffer(make([]byte, 1024*1024), 1024*1024)
	h.srch.SetReporter(h)
	return h
}

// Loop reads lines from InIo until EOF or "quit".
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns everything
// it wrote to OutIo, for tests and scripted use.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

func (h *Handler) send(line string) {
	h.uciLog.Infof(">> %s", line)
	_, _ = h.OutIo.WriteString(line)
	_, _ = h.OutIo.WriteString("\n")
	_ = h.OutIo.Flush()
}

// Send implements search.Reporter: one "info ..." line per completed
// iteration (spec §6 emitted-to-front-end Report).
func (h *Handler) Send(r search.Report) {
	score := scoreString(r.EvalCp, r.Mate, r.MateIn)
	nps := uint64(0)
	if r.Elapsed > 0 {
		nps = uint64(float64(r.Nodes) / r.Elapsed.Seconds())
	}
	h.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d hashfull %d time %d score %s pv %s",
		r.Depth, r.SeldDepth, r.Nodes, nps, h.srch.Hashfull(), r.Elapsed.Milliseconds(), score, pvString(r.PV)))
}

func scoreString(eval Value, mate bool, mateIn int) string {
	if mate {
		return fmt.Sprintf("mate %d", mateIn)
	}
	return fmt.Sprintf("cp %d", eval)
}

func pvString(pv []Move) string {
	var sb strings.Builder
	for i, m := range pv {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.String())
	}
	return sb.String()
}

func (h *Handler) handle(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.uciLog.Infof("<< %s", line)
	tokens := regexWhiteSpace.Split(line, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewPosition()
		h.srch.NewGame()
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		// StopSearch blocks until the running search unwinds; the
		// goroutine `go` spawned is the one that sends bestmove, so it
		// doesn't race a second send from here.
		h.srch.StopSearch()
	case "ponderhit":
		// Time control activates at the next `go`; nothing to do for a
		// Ponder search that was already running without one.
	default:
		h.log.Warningf("unknown uci command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s", EngineName))
	h.send(fmt.Sprintf("id author %s", EngineAuthor))
	h.send(fmt.Sprintf("option name Hash type spin default %d min %d max %d",
		config.DefaultHashSizeMb, config.MinHashSizeMb, config.MaxHashSizeMb))
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		h.log.Warningf("malformed setoption: %v", tokens)
		return
	}
	if !strings.EqualFold(name, "Hash") {
		h.log.Warningf("unknown option: %s", name)
		return
	}
	mb, err := strconv.Atoi(value)
	if err != nil {
		h.log.Warningf("bad Hash value %q", value)
		return
	}
	h.srch.ResizeHash(config.ClampHash(mb))
}

// parseSetOption extracts name/value from "setoption name <N...> value <V>".
func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 2 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	if len(nameParts) == 0 {
		return "", "", false
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = strings.Join(tokens[i+1:], " ")
	}
	return name, value, true
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.log.Warning("malformed position command")
		return
	}
	fen := position.StartFen
	i := 1
	switch tokens[1] {
	case "startpos":
		i = 2
	case "fen":
		var sb strings.Builder
		i = 2
		for i < len(tokens) && tokens[i] != "moves" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(tokens[i])
			i++
		}
		fen = sb.String()
	default:
		h.log.Warningf("malformed position command: %v", tokens)
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		h.log.Warningf("invalid fen %q: %v", fen, err)
		return
	}
	h.pos = p

	if i < len(tokens) && tokens[i] == "moves" {
		for _, tok := range tokens[i+1:] {
			m, found := movegen.ParseUCI(h.pos, tok)
			if !found {
				h.log.Warningf("illegal move in position command: %s", tok)
				return
			}
			h.pos.DoMove(m)
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits := search.NewLimits()
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			limits.Depth = atoiOr(tokens, i, 0)
		case "nodes":
			i++
			limits.Nodes = uint64(atoiOr(tokens, i, 0))
		case "movetime":
			i++
			limits.TimeControl = true
			limits.MoveTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "wtime":
			i++
			limits.TimeControl = true
			limits.WhiteTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "btime":
			i++
			limits.TimeControl = true
			limits.BlackTime = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "winc":
			i++
			limits.WhiteInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "binc":
			i++
			limits.BlackInc = time.Duration(atoiOr(tokens, i, 0)) * time.Millisecond
		case "infinite":
			limits.Infinite = true
		case "ponder":
			limits.Ponder = true
		}
	}
	h.srch.StartSearch(h.pos, *limits)
	go func() {
		h.srch.WaitWhileSearching()
		h.sendBestMove()
	}()
}

func (h *Handler) sendBestMove() {
	result := h.srch.LastResult()
	if result == nil {
		h.send("bestmove (none)")
		return
	}
	if result.BestMove == MoveNone {
		h.send("bestmove (none)")
		return
	}
	if result.PonderMove != MoveNone {
		h.send(fmt.Sprintf("bestmove %s ponder %s", result.BestMove.String(), result.PonderMove.String()))
		return
	}
	h.send(fmt.Sprintf("bestmove %s", result.BestMove.String()))
}

func atoiOr(tokens []string, i, def int) int {
	if i < 0 || i >= len(tokens) {
		return def
	}
	v, err := strconv.Atoi(tokens[i])
	if err != nil {
		return def
	}
	return v
}
