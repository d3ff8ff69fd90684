// Command mandelbrot renders the Mandelbrot set serially and with several
// goroutines, verifies that both images agree, and reports the speedup.
//
// Usage:
//
//	mandelbrot [flags]
//
// Examples:
//
//	mandelbrot -t 8
//	mandelbrot -t 8 -s interleaved -v 2
//	mandelbrot -t 4 -profile
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-par/fractal/mandelbrot"
	"github.com/cwbudde/algo-par/fractal/ppm"
	"github.com/cwbudde/algo-par/fractal/profile"
	"github.com/cwbudde/algo-par/fractal/speedup"
)

func main() {
	var (
		threads  int
		view     int
		schedule string
	)
	flag.IntVar(&threads, "t", 2, "number of threads (shorthand)")
	flag.IntVar(&threads, "threads", 2, "number of threads")
	flag.IntVar(&view, "v", 1, "view index (shorthand)")
	flag.IntVar(&view, "view", 1, "view index: 1 = full set, 2 = zoomed")
	flag.StringVar(&schedule, "s", "block", "row schedule (shorthand)")
	flag.StringVar(&schedule, "schedule", "block", "row schedule: block or interleaved")
	runs := flag.Int("runs", 5, "repetitions per measurement; the fastest is reported")
	outDir := flag.String("o", ".", "directory for the PPM images")
	noImages := flag.Bool("no-images", false, "skip writing PPM images")
	workerStats := flag.Bool("workers", false, "print per-worker timings of the fastest threaded run")
	showProfile := flag.Bool("profile", false, "print the predicted load balance of each schedule")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mandelbrot [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders the Mandelbrot set serially and threaded and reports the speedup.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mandelbrot -t 8\n")
		fmt.Fprintf(os.Stderr, "  mandelbrot -t 8 -s interleaved -v 2\n")
		fmt.Fprintf(os.Stderr, "  mandelbrot -t 4 -profile\n")
	}
	flag.Parse()

	if err := checkThreads(threads); err != nil {
		if errors.Is(err, mandelbrot.ErrTooManyWorkers) {
			fmt.Fprintf(os.Stderr, "Error: Max allowed threads is %d\n", mandelbrot.MaxWorkers)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	sched, err := mandelbrot.ParseSchedule(schedule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	v, err := mandelbrot.LookupView(view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	p := mandelbrot.DefaultParams()
	p.View = v

	if err := run(p, threads, sched, *runs, *outDir, !*noImages, *workerStats, *showProfile); err != nil {
		var m *mandelbrot.Mismatch
		if errors.As(err, &m) {
			fmt.Fprintf(os.Stderr, "%v\n", m)
			fmt.Fprintf(os.Stderr, "Error : Output from threads does not match serial output\n")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(p mandelbrot.Params, threads int, sched mandelbrot.Schedule, runs int,
	outDir string, images, workerStats, showProfile bool,
) error {
	fmt.Printf("Kernel: %s (available: %s), schedule: %s\n",
		mandelbrot.KernelName(), strings.Join(mandelbrot.Kernels(), ", "), sched)

	gold, serial, err := speedup.Serial(p, runs)
	if err != nil {
		return err
	}
	fmt.Printf("[mandelbrot serial]:\t\t[%.3f] ms\n", serial.Seconds()*1000)
	if images {
		if err := writeImage(outDir, "mandelbrot-serial.ppm", p, gold); err != nil {
			return err
		}
	}

	res, err := speedup.Measure(context.Background(), p, gold, serial, threads, sched, runs)
	if err != nil {
		return err
	}
	fmt.Printf("[mandelbrot thread]:\t\t[%.3f] ms\n", res.Threaded.Seconds()*1000)

	if images {
		if err := writeImage(outDir, "mandelbrot-thread.ppm", p, res.Image); err != nil {
			return err
		}
	}

	if workerStats {
		for _, st := range res.Stats {
			fmt.Printf("Thread %d took %.3f ms (%d rows, %d iterations)\n",
				st.Worker, st.Elapsed.Seconds()*1000, st.Rows, st.Iterations)
		}
	}

	fmt.Printf("\t\t\t\t(%.2fx speedup from %d threads)\n", res.Speedup(), threads)

	if showProfile {
		return printProfile(gold, p.Width, threads)
	}
	return nil
}

// checkThreads rejects thread counts before any work starts.
func checkThreads(threads int) error {
	if threads > mandelbrot.MaxWorkers {
		return mandelbrot.ErrTooManyWorkers
	}
	if threads < 1 {
		return fmt.Errorf("%w: got %d threads", mandelbrot.ErrInvalidWorkers, threads)
	}
	return nil
}

func writeImage(dir, name string, p mandelbrot.Params, iters []int) error {
	path := filepath.Join(dir, name)
	if err := ppm.WriteFile(path, iters, p.Width, p.Height, p.MaxIterations); err != nil {
		return err
	}
	fmt.Printf("Wrote image file %s\n", path)
	return nil
}

func printProfile(iters []int, width, threads int) error {
	costs, err := profile.RowCosts(iters, width)
	if err != nil {
		return err
	}
	preds, err := profile.Compare(costs, threads)
	if err != nil {
		return err
	}
	power, err := profile.Spectrum(costs)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nSchedule\tImbalance\tPredicted speedup\n"); err != nil {
		return err
	}
	for _, pr := range preds {
		if _, err := fmt.Fprintf(tw, "%s\t%.3f\t%.2fx\n", pr.Schedule, pr.Imbalance, pr.Speedup); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("Low-frequency share of row cost variation: %.1f%%\n", 100*profile.LowBandRatio(power, threads))
	return nil
}
