// Command speedup sweeps thread counts for both row schedules and writes
// one CSV per schedule.
//
// Usage:
//
//	speedup [flags]
//
// Examples:
//
//	speedup
//	speedup -max-threads 16 -runs 3 -o results
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cwbudde/algo-par/fractal/mandelbrot"
	"github.com/cwbudde/algo-par/fractal/speedup"
)

func main() {
	maxThreads := flag.Int("max-threads", 8, "largest thread count of the sweep")
	runs := flag.Int("runs", 5, "repetitions per measurement; the fastest is kept")
	view := flag.Int("view", 1, "view index: 1 = full set, 2 = zoomed")
	outDir := flag.String("o", "speedup_plots", "output directory for the CSV files")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: speedup [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Measures threaded Mandelbrot speedup for block and interleaved schedules.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	v, err := mandelbrot.LookupView(*view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	p := mandelbrot.DefaultParams()
	p.View = v

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := speedup.Run(ctx,
		speedup.WithParams(p),
		speedup.WithMaxWorkers(*maxThreads),
		speedup.WithRuns(*runs))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := speedup.WriteTable(os.Stdout, results); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write table: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	for _, s := range mandelbrot.Schedules() {
		path := filepath.Join(*outDir, fmt.Sprintf("speedup_%s.csv", s))
		if err := writeCSV(path, speedup.BySchedule(results, s)); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

func writeCSV(path string, results []speedup.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return speedup.WriteCSV(f, results)
}
