package testsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEpdLineBestMove(t *testing.T) {
	line := `r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1 bm Bxh6; id "test #1";`
	test := parseEpdLine(line)
	assert.NotNil(t, test)
	assert.Equal(t, bmTest, test.kind)
	assert.Equal(t, "test #1", test.id)
	assert.Len(t, test.targetMoves, 1)
}

func TestParseEpdLinePromotion(t *testing.T) {
	line := `6k1/P7/8/8/8/8/8/3K4 w - - bm a8=Q; id "promo #1";`
	test := parseEpdLine(line)
	assert.NotNil(t, test)
	assert.Len(t, test.targetMoves, 1)
	assert.Equal(t, "a7a8q", test.targetMoves[0].String())
}

func TestParseEpdLineDirectMate(t *testing.T) {
	line := `6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - dm 1; id "mate #1";`
	test := parseEpdLine(line)
	assert.NotNil(t, test)
	assert.Equal(t, dmTest, test.kind)
	assert.Equal(t, 1, test.mateDepth)
}

func TestParseEpdLineInvalidFenIsNil(t *testing.T) {
	line := `not-a-fen bm e2e4; id "bad";`
	assert.Nil(t, parseEpdLine(line))
}

func TestParseEpdLineCommentIsNil(t *testing.T) {
	assert.Nil(t, parseEpdLine("# just a comment"))
	assert.Nil(t, parseEpdLine(""))
}

func TestNewTestSuiteAndRunTests(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.epd")
	content := "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - bm Ra8; id \"back rank #1\";\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ts, err := NewTestSuite(path, 0, 3)
	assert.NoError(t, err)
	assert.Len(t, ts.Tests, 1)

	ts.RunTests()
	assert.NotNil(t, ts.LastResult)
	assert.Equal(t, 1, ts.LastResult.Total)
	assert.Equal(t, 1, ts.LastResult.Success)
}

func TestRunDirectory(t *testing.T) {
	dir := t.TempDir()
	content := "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - bm Ra8; id \"back rank #1\";\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "one.epd"), []byte(content), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "two.epd"), []byte(content), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not an epd"), 0o644))

	result, err := RunDirectory(dir, 0, 3)
	assert.NoError(t, err)
	assert.Len(t, result.Suites, 2)
	assert.Equal(t, 2, result.Totals.Total)
	assert.Contains(t, result.Report(), "TOTAL")
}
