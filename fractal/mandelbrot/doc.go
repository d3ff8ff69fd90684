// Package mandelbrot renders escape-time images of the Mandelbrot set and
// splits the work across goroutines with static row decompositions.
//
// # Work decomposition
//
// Two schedules are provided:
//
//   - Block: worker t owns one contiguous band of Height/Workers rows; the
//     last worker also takes the remainder. Bands that cover the set's
//     interior cost far more than bands over the escape region, so block
//     decomposition is sensitive to where the expensive rows sit.
//   - Interleaved: worker t owns rows t, t+n, t+2n, ... which spreads
//     expensive regions evenly across workers.
//
// Threaded runs a fork-join: the calling goroutine is worker 0, the others
// are spawned and joined before returning. Workers write disjoint rows of
// the output buffer, so no locking is needed.
//
// # Kernels
//
// Rows are computed by the best kernel registered for the detected CPU
// (see KernelName). Every kernel produces output identical to Serial for
// the same Params.
//
//	p := mandelbrot.DefaultParams()
//	out := make([]int, p.Width*p.Height)
//	stats, err := mandelbrot.Threaded(ctx, p, out,
//	    mandelbrot.WithWorkers(8),
//	    mandelbrot.WithSchedule(mandelbrot.Interleaved))
package mandelbrot
