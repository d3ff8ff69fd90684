// Package profile estimates how well a static row decomposition balances a
// Mandelbrot image before any goroutine is spawned.
//
// The cost of a row is the sum of its escape iteration counts. Given the
// per-row costs, Predict sums them per worker for a schedule and reports
// the imbalance (max/mean worker cost) and the speedup an ideal machine
// would reach (total/max worker cost).
//
// Spectrum looks at the same profile in the frequency domain. Energy near
// DC means the expensive rows are clustered, which is what hurts block
// decomposition; interleaving only suffers when the profile oscillates at
// a period close to the worker count.
package profile

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-par/fractal/mandelbrot"
)

var (
	ErrShape   = errors.New("profile: iteration buffer is not a whole number of rows")
	ErrWorkers = errors.New("profile: worker count must be at least 1")
	ErrEmpty   = errors.New("profile: empty cost profile")
)

// RowCosts returns the total iteration count of every row of iters.
func RowCosts(iters []int, width int) ([]int64, error) {
	if width <= 0 || len(iters)%width != 0 {
		return nil, fmt.Errorf("%w: %d pixels, width %d", ErrShape, len(iters), width)
	}
	rows := len(iters) / width
	costs := make([]int64, rows)
	for j := range costs {
		var c int64
		for _, it := range iters[j*width : (j+1)*width] {
			c += int64(it)
		}
		costs[j] = c
	}
	return costs, nil
}

// Prediction is the modelled outcome of running one schedule.
type Prediction struct {
	Schedule mandelbrot.Schedule
	Workers  int

	// WorkerCost is the summed row cost of each worker.
	WorkerCost []int64

	// Imbalance is max(WorkerCost) / mean(WorkerCost); 1 is perfect.
	Imbalance float64

	// Speedup is total cost / max(WorkerCost).
	Speedup float64
}

// Predict distributes costs over workers with s, using the row assignment
// of mandelbrot.Rows.
func Predict(costs []int64, workers int, s mandelbrot.Schedule) (Prediction, error) {
	if workers < 1 {
		return Prediction{}, fmt.Errorf("%w: got %d", ErrWorkers, workers)
	}
	if len(costs) == 0 {
		return Prediction{}, ErrEmpty
	}

	p := Prediction{
		Schedule:   s,
		Workers:    workers,
		WorkerCost: make([]int64, workers),
	}

	var total, peak int64
	for w := 0; w < workers; w++ {
		for _, rr := range mandelbrot.Rows(s, w, workers, len(costs)) {
			for _, c := range costs[rr.Start : rr.Start+rr.Count] {
				p.WorkerCost[w] += c
			}
		}
		total += p.WorkerCost[w]
		peak = max(peak, p.WorkerCost[w])
	}

	if peak == 0 {
		p.Imbalance = 1
		p.Speedup = float64(workers)
		return p, nil
	}

	mean := float64(total) / float64(workers)
	p.Imbalance = float64(peak) / mean
	p.Speedup = float64(total) / float64(peak)
	return p, nil
}

// Compare predicts every schedule for the given worker count.
func Compare(costs []int64, workers int) ([]Prediction, error) {
	var out []Prediction
	for _, s := range mandelbrot.Schedules() {
		p, err := Predict(costs, workers, s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
