package testsuite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DirectoryResult is the combined outcome of running every ".epd" file in
// a directory.
type DirectoryResult struct {
	Suites map[string]*TestSuite
	Totals SuiteResult
	Time   time.Duration
}

// RunDirectory runs every ".epd" file under folder concurrently, one
// goroutine per file, capped at runtime.NumCPU() in flight, and returns
// the combined result. A broken file does not abort the others; it is
// logged as skipped and left out of Suites.
func RunDirectory(folder string, searchTime time.Duration, depth int) (*DirectoryResult, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading test suite folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".epd" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	result := &DirectoryResult{Suites: make(map[string]*TestSuite, len(files))}
	var mu sync.Mutex

	start := time.Now()
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for _, name := range files {
		name := name
		g.Go(func() error {
			ts, err := NewTestSuite(filepath.Join(folder, name), searchTime, depth)
			if err != nil {
				getLog().Warningf("skipping %s: %v", name, err)
				return nil
			}
			ts.RunTests()
			mu.Lock()
			result.Suites[name] = ts
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	result.Time = time.Since(start)

	for _, ts := range result.Suites {
		if ts.LastResult == nil {
			continue
		}
		result.Totals.Total += ts.LastResult.Total
		result.Totals.Success += ts.LastResult.Success
		result.Totals.Failed += ts.LastResult.Failed
		result.Totals.Skipped += ts.LastResult.Skipped
		result.Totals.NotTested += ts.LastResult.NotTested
	}
	return result, nil
}

// Report renders a DirectoryResult as a fixed-width summary table, one
// row per file, in the same file order RunDirectory read them.
func (r *DirectoryResult) Report() string {
	names := make([]string, 0, len(r.Suites))
	for name := range r.Suites {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-30s %6s %6s %6s %6s\n", "file", "total", "ok", "fail", "skip")
	for _, name := range names {
		ts := r.Suites[name]
		lr := ts.LastResult
		if lr == nil {
			fmt.Fprintf(&sb, "%-30s %6s %6s %6s %6s\n", name, "-", "-", "-", "-")
			continue
		}
		fmt.Fprintf(&sb, "%-30s %6d %6d %6d %6d\n", name, lr.Total, lr.Success, lr.Failed, lr.Skipped)
	}
	fmt.Fprintf(&sb, "%-30s %6d %6d %6d %6d\n", "TOTAL", r.Totals.Total, r.Totals.Success, r.Totals.Failed, r.Totals.Skipped)
	fmt.Fprintf(&sb, "elapsed: %s\n", r.Time)
	return sb.String()
}
