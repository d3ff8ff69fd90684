package mandelbrot

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// WorkerStat reports what one worker did during Threaded.
type WorkerStat struct {
	Worker     int
	Rows       int
	Iterations int64
	Elapsed    time.Duration
}

// Threaded renders p into out with cfg.Workers goroutines. The calling
// goroutine is worker 0. The returned stats are indexed by worker id.
//
// ctx is checked between rows; on cancellation every worker stops at its
// next row boundary and ctx.Err() is returned after all workers have
// joined. out is then only partially written.
func Threaded(ctx context.Context, p Params, out []int, opts ...Option) ([]WorkerStat, error) {
	cfg := ApplyOptions(opts...)

	if cfg.Workers > MaxWorkers {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyWorkers, cfg.Workers)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, cfg.Workers)
	}
	if err := checkBuffers(p, out); err != nil {
		return nil, err
	}

	row := rowKernel()
	r := p.region()
	stats := make([]WorkerStat, cfg.Workers)

	work := func(id int) {
		st := WorkerStat{Worker: id}
		start := time.Now()

		for _, band := range Rows(cfg.Schedule, id, cfg.Workers, p.Height) {
			for j := band.Start; j < band.Start+band.Count; j++ {
				if ctx.Err() != nil {
					st.Elapsed = time.Since(start)
					stats[id] = st
					return
				}
				dst := out[j*p.Width : (j+1)*p.Width]
				row(r, j, dst)
				for _, n := range dst {
					st.Iterations += int64(n)
				}
				st.Rows++
			}
		}

		st.Elapsed = time.Since(start)
		stats[id] = st
	}

	var wg sync.WaitGroup
	for id := 1; id < cfg.Workers; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work(id)
		}()
	}
	work(0)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}
