package mandelbrot

import (
	"errors"
	"fmt"
	"strings"
)

// Schedule selects how rows are assigned to workers.
type Schedule int

const (
	// Block assigns each worker one contiguous band of rows.
	Block Schedule = iota

	// Interleaved assigns row r to worker r % workers.
	Interleaved
)

// ErrUnknownSchedule is returned by ParseSchedule.
var ErrUnknownSchedule = errors.New("mandelbrot: unknown schedule")

// Schedules lists every schedule in declaration order.
func Schedules() []Schedule { return []Schedule{Block, Interleaved} }

func (s Schedule) String() string {
	switch s {
	case Block:
		return "block"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// ParseSchedule accepts "block", "interleaved", or their numeric forms
// "0" and "1".
func ParseSchedule(name string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "block", "0":
		return Block, nil
	case "interleaved", "1":
		return Interleaved, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
	}
}

// RowRange is a half-open band of rows [Start, Start+Count).
type RowRange struct {
	Start, Count int
}

// Rows returns the row ranges worker owns when height rows are split
// across workers workers. Ranges are ascending and never overlap those of
// another worker; together all workers cover [0, height) exactly once.
func Rows(s Schedule, worker, workers, height int) []RowRange {
	if workers <= 0 || worker < 0 || worker >= workers || height <= 0 {
		return nil
	}

	switch s {
	case Interleaved:
		ranges := make([]RowRange, 0, (height-worker+workers-1)/workers)
		for r := worker; r < height; r += workers {
			ranges = append(ranges, RowRange{Start: r, Count: 1})
		}
		return ranges
	default:
		perWorker := height / workers
		start := worker * perWorker
		if worker == workers-1 {
			perWorker = height - start
		}
		if perWorker == 0 {
			return nil
		}
		return []RowRange{{Start: start, Count: perWorker}}
	}
}
