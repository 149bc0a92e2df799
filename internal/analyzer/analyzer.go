package analyzer

import (
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"iolens/internal/locator"
	"iolens/internal/model"
	"iolens/internal/parser"
)

// DefaultThreshold is the minimum max-await, in milliseconds, a record must
// reach to appear in a report when the caller gives no threshold.
const DefaultThreshold = 100.0

// ExtremeThreshold is the floor the threshold is raised to in extreme-only
// runs.
const ExtremeThreshold = 1000.0

// Options controls one analysis run.
type Options struct {
	Threshold   float64 // minimum max-await in ms; 0 means DefaultThreshold
	ExtremeOnly bool    // raise the threshold to at least ExtremeThreshold
	Limit       int     // cap on the ranked view; 0 = unlimited
}

// EffectiveThreshold resolves the threshold actually applied: the caller's
// value, defaulted, and raised to ExtremeThreshold when ExtremeOnly is set.
// Limit never feeds into this; it only truncates the ranked view.
func (o Options) EffectiveThreshold() float64 {
	t := o.Threshold
	if t == 0 {
		t = DefaultThreshold
	}
	if o.ExtremeOnly && t < ExtremeThreshold {
		t = ExtremeThreshold
	}
	return t
}

// Run scans every input file and builds the full report. Files are scanned
// concurrently; each scanner's timestamp state is its own, and results are
// merged back in discovered-file order so ranking tie-breaks stay
// deterministic. A file that cannot be opened is logged and skipped, never
// fatal.
func Run(files []locator.File, opts Options) *model.Report {
	type fileResult struct {
		records []model.LatencyRecord
		skipped int
		err     error
	}
	results := make([]fileResult, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		g.Go(func() error {
			fh, err := os.Open(f.Path)
			if err != nil {
				results[i].err = err
				return nil
			}
			defer fh.Close()

			sc := parser.NewScanner(f.Host, f.Name, f.Path)
			records, err := sc.Scan(fh)
			results[i] = fileResult{records: records, skipped: sc.Skipped(), err: err}
			return nil
		})
	}
	_ = g.Wait() // per-file failures are collected, never returned

	var candidates []model.LatencyRecord
	var processed, failed, skipped int
	for i, res := range results {
		if res.err != nil {
			log.Printf("warning: skipping %s: %v", files[i].Path, res.err)
			failed++
			continue
		}
		processed++
		skipped += res.skipped
		candidates = append(candidates, res.records...)
	}

	report := BuildReport(candidates, opts)
	report.FilesProcessed = processed
	report.FilesFailed = failed
	report.LinesSkipped = skipped
	return report
}
