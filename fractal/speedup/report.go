package speedup

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteCSV writes results as "threads,speedup,serial_ms,thread_ms" rows.
func WriteCSV(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintf(w, "threads,speedup,serial_ms,thread_ms\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%d,%.2f,%.3f,%.3f\n",
			r.Workers, r.Speedup(), millis(r.Serial), millis(r.Threaded)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes an aligned, human readable summary.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Schedule\tThreads\tSerial [ms]\tThreaded [ms]\tSpeedup\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t-------\t-----------\t-------------\t-------\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.2fx\n",
			r.Schedule, r.Workers, millis(r.Serial), millis(r.Threaded), r.Speedup()); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
