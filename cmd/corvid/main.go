// Command corvid is the engine's executable: by default it speaks UCI on
// stdin/stdout, with flags for perft benchmarking and offline EPD test
// suite runs (spec §1 external collaborators, §6, §9).
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvid/corvid/internal/config"
	"github.com/corvid/corvid/internal/logging"
	"github.com/corvid/corvid/internal/movegen"
	"github.com/corvid/corvid/internal/position"
	"github.com/corvid/corvid/internal/testsuite"
	"github.com/corvid/corvid/internal/uci"
)

const engineVersion = "1.0.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	hashSize := flag.Int("hash", 0, "transposition table size in MB (0 = use config/default)")
	perft := flag.Int("perft", 0, "runs perft to the given depth on -fen (or the start position) and exits")
	fen := flag.String("fen", position.StartFen, "fen used by -perft")
	testSuite := flag.String("testsuite", "", "path to an EPD file, or a folder of EPD files, to run and exit")
	testTime := flag.Int("testtime", 2000, "per-position search time in ms for -testsuite")
	testDepth := flag.Int("testdepth", 0, "per-position search depth for -testsuite (0 = use -testtime)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a pprof CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *hashSize > 0 {
		config.Settings.Search.HashSizeMb = config.ClampHash(*hashSize)
	}

	if *perft != 0 {
		runPerft(*fen, *perft)
		return
	}

	if *testSuite != "" {
		runTestSuite(*testSuite, time.Duration(*testTime)*time.Millisecond, *testDepth)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fen string, depth int) {
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen %q: %v\n", fen, err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(pos, d)
		elapsed := time.Since(start)
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(nodes) / elapsed.Seconds())
		}
		out.Printf("perft(%d) = %d  (%s, %d nps)\n", d, nodes, elapsed, nps)
	}
}

func runTestSuite(path string, searchTime time.Duration, depth int) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if info.IsDir() {
		result, err := testsuite.RunDirectory(path, searchTime, depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Print(result.Report())
		return
	}
	ts, err := testsuite.NewTestSuite(path, searchTime, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	ts.RunTests()
	fmt.Printf("%s: %d/%d passed\n", path, ts.LastResult.Success, ts.LastResult.Total)
}

func printVersionInfo() {
	out.Printf("corvid %s\n", engineVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
