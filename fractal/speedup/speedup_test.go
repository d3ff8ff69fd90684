package speedup

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-par/fractal/mandelbrot"
)

func tinyParams() mandelbrot.Params {
	return mandelbrot.Params{View: mandelbrot.DefaultView(), Width: 48, Height: 36, MaxIterations: 64}
}

func TestRun(t *testing.T) {
	results, err := Run(context.Background(),
		WithParams(tinyParams()), WithMaxWorkers(3), WithRuns(2))
	require.NoError(t, err)
	require.Len(t, results, 6)

	block := BySchedule(results, mandelbrot.Block)
	inter := BySchedule(results, mandelbrot.Interleaved)
	require.Len(t, block, 3)
	require.Len(t, inter, 3)

	for i, r := range block {
		assert.Equal(t, i+1, r.Workers)
		assert.Len(t, r.Stats, i+1)
		assert.Positive(t, r.Serial)
		assert.Positive(t, r.Threaded)
		assert.Equal(t, block[0].Serial, r.Serial, "serial baseline is shared")
	}
}

func TestRunSingleSchedule(t *testing.T) {
	results, err := Run(context.Background(),
		WithParams(tinyParams()), WithMaxWorkers(2), WithRuns(1),
		WithSchedules(mandelbrot.Interleaved))
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, mandelbrot.Interleaved, r.Schedule)
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), WithParams(tinyParams()), WithRuns(0))
	assert.ErrorIs(t, err, ErrRuns)

	_, err = Run(context.Background(), WithParams(tinyParams()), WithMaxWorkers(64))
	assert.ErrorIs(t, err, mandelbrot.ErrTooManyWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, WithParams(tinyParams()), WithMaxWorkers(2), WithRuns(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMeasureDetectsWrongGold(t *testing.T) {
	p := tinyParams()
	gold := make([]int, p.Pixels())

	_, err := Measure(context.Background(), p, gold, time.Millisecond, 2, mandelbrot.Block, 1)
	var m *mandelbrot.Mismatch
	assert.True(t, errors.As(err, &m), "err = %v", err)
}

func TestMeasureReturnsThreadedImage(t *testing.T) {
	p := tinyParams()
	gold, serial, err := Serial(p, 1)
	require.NoError(t, err)

	for _, s := range mandelbrot.Schedules() {
		res, err := Measure(context.Background(), p, gold, serial, 3, s, 2)
		require.NoError(t, err)
		require.Len(t, res.Image, p.Pixels())
		assert.Equal(t, gold, res.Image, "schedule %v", s)
		assert.NotSame(t, &gold[0], &res.Image[0], "image must be the threaded buffer")
	}
}

func TestBestOf(t *testing.T) {
	calls := 0
	d, err := BestOf(3, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.GreaterOrEqual(t, d, time.Duration(0))

	boom := errors.New("boom")
	_, err = BestOf(2, func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestSpeedup(t *testing.T) {
	assert.InDelta(t, 2.5, Result{Serial: 5 * time.Millisecond, Threaded: 2 * time.Millisecond}.Speedup(), 1e-12)
	assert.Zero(t, Result{Serial: time.Millisecond}.Speedup())
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{Workers: 1, Serial: 10 * time.Millisecond, Threaded: 10 * time.Millisecond},
		{Workers: 2, Serial: 10 * time.Millisecond, Threaded: 4 * time.Millisecond},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))
	assert.Equal(t,
		"threads,speedup,serial_ms,thread_ms\n"+
			"1,1.00,10.000,10.000\n"+
			"2,2.50,10.000,4.000\n",
		buf.String())
}

func TestWriteTable(t *testing.T) {
	results := []Result{
		{Schedule: mandelbrot.Interleaved, Workers: 4, Serial: 8 * time.Millisecond, Threaded: 2 * time.Millisecond},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "interleaved")
	assert.Contains(t, lines[2], "4.00x")
}
