// Package speedup measures threaded Mandelbrot rendering against the serial
// baseline for a range of worker counts and schedules.
//
// For each configuration the fastest of Runs repetitions is kept, which
// filters out scheduler noise better than a mean on a shared machine.
// Every threaded image is verified against the serial one.
package speedup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-par/fractal/mandelbrot"
)

// ErrRuns is returned when fewer than one repetition is requested.
var ErrRuns = errors.New("speedup: runs must be at least 1")

// Config controls a sweep.
type Config struct {
	Params     mandelbrot.Params
	MaxWorkers int
	Runs       int
	Schedules  []mandelbrot.Schedule
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig sweeps 1..8 workers over both schedules, best of 5, on the
// default image.
func DefaultConfig() Config {
	return Config{
		Params:     mandelbrot.DefaultParams(),
		MaxWorkers: 8,
		Runs:       5,
		Schedules:  mandelbrot.Schedules(),
	}
}

// WithParams sets the image.
func WithParams(p mandelbrot.Params) Option {
	return func(cfg *Config) { cfg.Params = p }
}

// WithMaxWorkers sets the largest worker count of the sweep.
func WithMaxWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxWorkers = n
		}
	}
}

// WithRuns sets the number of repetitions per measurement.
func WithRuns(n int) Option {
	return func(cfg *Config) { cfg.Runs = n }
}

// WithSchedules restricts the sweep to the given schedules.
func WithSchedules(s ...mandelbrot.Schedule) Option {
	return func(cfg *Config) {
		if len(s) > 0 {
			cfg.Schedules = append([]mandelbrot.Schedule(nil), s...)
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Result is one point of the sweep.
type Result struct {
	Schedule mandelbrot.Schedule
	Workers  int
	Serial   time.Duration
	Threaded time.Duration

	// Workers' own timings from the fastest threaded run.
	Stats []mandelbrot.WorkerStat

	// Image is the output of the last threaded run.
	Image []int
}

// Speedup returns Serial/Threaded, or 0 when Threaded is zero.
func (r Result) Speedup() float64 {
	if r.Threaded <= 0 {
		return 0
	}
	return float64(r.Serial) / float64(r.Threaded)
}

// BestOf calls fn runs times and returns the shortest wall time.
func BestOf(runs int, fn func() error) (time.Duration, error) {
	if runs < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrRuns, runs)
	}

	best := time.Duration(-1)
	for range runs {
		start := time.Now()
		if err := fn(); err != nil {
			return 0, err
		}
		if d := time.Since(start); best < 0 || d < best {
			best = d
		}
	}
	return best, nil
}

// Serial measures the serial baseline of p and returns the image with it.
func Serial(p mandelbrot.Params, runs int) ([]int, time.Duration, error) {
	out := make([]int, p.Pixels())
	d, err := BestOf(runs, func() error {
		return mandelbrot.Serial(p, 0, p.Height, out)
	})
	if err != nil {
		return nil, 0, err
	}
	return out, d, nil
}

// Measure times one threaded configuration against a precomputed serial
// image and verifies the output.
func Measure(ctx context.Context, p mandelbrot.Params, gold []int, serial time.Duration,
	workers int, s mandelbrot.Schedule, runs int,
) (Result, error) {
	if runs < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrRuns, runs)
	}

	out := make([]int, p.Pixels())
	res := Result{Schedule: s, Workers: workers, Serial: serial}

	best := time.Duration(-1)
	for range runs {
		clear(out)
		start := time.Now()
		stats, err := mandelbrot.Threaded(ctx, p, out,
			mandelbrot.WithWorkers(workers), mandelbrot.WithSchedule(s))
		if err != nil {
			return Result{}, err
		}
		if d := time.Since(start); best < 0 || d < best {
			best = d
			res.Stats = stats
		}
	}
	res.Threaded = best
	res.Image = out

	if err := mandelbrot.Verify(gold, out, p.Width); err != nil {
		return Result{}, fmt.Errorf("speedup: %v with %d workers: %w", s, workers, err)
	}
	return res, nil
}

// Run executes the sweep. Results are grouped by schedule in cfg order and
// ascending worker count.
func Run(ctx context.Context, opts ...Option) ([]Result, error) {
	cfg := ApplyOptions(opts...)
	if cfg.MaxWorkers > mandelbrot.MaxWorkers {
		return nil, fmt.Errorf("speedup: %w", mandelbrot.ErrTooManyWorkers)
	}

	gold, serial, err := Serial(cfg.Params, cfg.Runs)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(cfg.Schedules)*cfg.MaxWorkers)
	for _, s := range cfg.Schedules {
		for workers := 1; workers <= cfg.MaxWorkers; workers++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res, err := Measure(ctx, cfg.Params, gold, serial, workers, s, cfg.Runs)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// BySchedule returns the results of one schedule, preserving order.
func BySchedule(results []Result, s mandelbrot.Schedule) []Result {
	var out []Result
	for _, r := range results {
		if r.Schedule == s {
			out = append(out, r)
		}
	}
	return out
}
