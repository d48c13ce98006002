// Package testsuite runs EPD (Extended Position Description) test files
// against the engine's search, the standard way of regression-testing a
// chess engine's move choice without a human opponent.
// https://www.chessprogramming.org/Extended_Position_Description
// Only the "bm" (best move), "am" (avoid move) and "dm" (direct mate)
// opcodes are implemented.
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/corvid/corvid/internal/logging"
	"github.com/corvid/corvid/internal/movegen"
	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/search"
	. "github.com/corvid/corvid/internal/types"
)

var log *logging.Logger

func getLog() *logging.Logger {
	if log == nil {
		log = myLogging.GetLog()
	}
	return log
}

// testType identifies which EPD opcode a Test was built from.
type testType uint8

const (
	noTest testType = iota
	dmTest
	bmTest
	amTest
)

// resultType is the outcome of running a single Test.
type resultType uint8

const (
	notTested resultType = iota
	skipped
	failed
	success
)

func (rt resultType) String() string {
	switch rt {
	case skipped:
		return "skipped"
	case failed:
		return "failed"
	case success:
		return "success"
	default:
		return "not tested"
	}
}

// Test is one EPD line: a position plus the expected-result opcode, and
// (after RunTests) the move the engine actually chose.
type Test struct {
	id          string
	fen         string
	line        string
	kind        testType
	targetMoves []Move
	mateDepth   int

	actual Move
	result resultType
}

// SuiteResult tallies a TestSuite's outcomes.
type SuiteResult struct {
	Total     int
	Success   int
	Failed    int
	Skipped   int
	NotTested int
}

// TestSuite is every Test read from one EPD file, plus the per-position
// search budget used to run them.
type TestSuite struct {
	Tests      []*Test
	SearchTime time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

var epdLineRegex = regexp.MustCompile(`^\s*(.*?)\s+(bm|dm|am)\s+(.*?);(.*\bid\s+"(.*?)";)?.*$`)

// NewTestSuite reads filePath into a TestSuite ready for RunTests.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	lines, err := readLines(filePath)
	if err != nil {
		return nil, err
	}
	ts := &TestSuite{
		FilePath:   filePath,
		SearchTime: searchTime,
		Depth:      depth,
	}
	for _, line := range lines {
		if t := parseEpdLine(line); t != nil {
			ts.Tests = append(ts.Tests, t)
		}
	}
	return ts, nil
}

// RunTests executes every Test in the suite sequentially against a fresh
// Search, in the order they were read (spec §5: searches are serialized),
// and populates ts.LastResult.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		return
	}
	s := search.NewSearch(16)
	limits := search.NewLimits()
	limits.Depth = ts.Depth
	if ts.SearchTime > 0 {
		limits.TimeControl = true
		limits.MoveTime = ts.SearchTime
	}

	for _, t := range ts.Tests {
		runSingleTest(s, *limits, t)
	}

	r := &SuiteResult{}
	for _, t := range ts.Tests {
		r.Total++
		switch t.result {
		case notTested:
			r.NotTested++
		case skipped:
			r.Skipped++
		case failed:
			r.Failed++
		case success:
			r.Success++
		}
	}
	ts.LastResult = r
}

func runSingleTest(s *search.Search, limits search.Limits, t *Test) {
	s.NewGame()
	pos, err := position.NewPositionFen(t.fen)
	if err != nil {
		t.result = skipped
		return
	}

	switch t.kind {
	case dmTest:
		limits.Depth = t.mateDepth*2 - 1
	case bmTest, amTest:
	default:
		getLog().Warningf("unknown EPD opcode for test %s", t.id)
		t.result = skipped
		return
	}

	result := s.Go(pos, limits)
	t.actual = result.BestMove

	matched := false
	for _, m := range t.targetMoves {
		if m == t.actual {
			matched = true
			break
		}
	}

	switch t.kind {
	case amTest:
		if matched {
			t.result = failed
		} else {
			t.result = success
		}
	default:
		if matched {
			t.result = success
		} else {
			t.result = failed
		}
	}
}

func parseEpdLine(raw string) *Test {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	matches := epdLineRegex.FindStringSubmatch(line)
	if matches == nil {
		getLog().Warningf("no EPD found in line: %s", line)
		return nil
	}

	fen := matches[1]
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		getLog().Warningf("invalid fen in EPD line: %s", fen)
		return nil
	}

	var kind testType
	switch matches[2] {
	case "dm":
		kind = dmTest
	case "bm":
		kind = bmTest
	case "am":
		kind = amTest
	default:
		return nil
	}

	test := &Test{
		id:   matches[5],
		fen:  fen,
		line: line,
		kind: kind,
	}

	resultField := strings.TrimSpace(matches[3])
	if kind == dmTest {
		depth, err := strconv.Atoi(resultField)
		if err != nil {
			getLog().Warningf("invalid direct mate depth in EPD line: %s", line)
			return nil
		}
		test.mateDepth = depth
		return test
	}

	for _, san := range strings.Fields(resultField) {
		san = strings.TrimRight(san, "!?")
		if m := movegen.ParseSAN(pos, san); m != MoveNone {
			test.targetMoves = append(test.targetMoves, m)
		}
	}
	if len(test.targetMoves) == 0 {
		getLog().Warningf("no valid target move in EPD line: %s", line)
		return nil
	}
	return test
}

func readLines(filePath string) ([]string, error) {
	if !filepath.IsAbs(filePath) {
		wd, _ := os.Getwd()
		filePath = filepath.Join(wd, filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening EPD file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading EPD file: %w", err)
	}
	return lines, nil
}
