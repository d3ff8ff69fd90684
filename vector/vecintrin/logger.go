package vecintrin

import (
	"fmt"
	"io"
)

// Entry is one executed instruction.
type Entry struct {
	Name   string
	Mask   Mask
	Active int

	// Marker is set for AddUserLog entries.
	Marker bool
}

// Stats summarizes lane usage over a log.
type Stats struct {
	Width             int
	TotalInstructions int64
	UtilizedLanes     int64
	TotalLanes        int64
}

// Utilization returns utilized/total lanes as a percentage, or 0 for an
// empty log.
func (s Stats) Utilization() float64 {
	if s.TotalLanes == 0 {
		return 0
	}
	return float64(s.UtilizedLanes) / float64(s.TotalLanes) * 100
}

// Logger records the instructions a Unit executes.
type Logger struct {
	width   int
	entries []Entry
	stats   Stats
}

// NewLogger returns an empty log for a unit of the given width.
func NewLogger(width int) *Logger {
	return &Logger{width: width, stats: Stats{Width: width}}
}

func (l *Logger) add(name string, m Mask) {
	active := 0
	for _, b := range m {
		if b {
			active++
		}
	}
	l.entries = append(l.entries, Entry{
		Name:   name,
		Mask:   append(Mask(nil), m...),
		Active: active,
	})
	l.stats.TotalInstructions++
	l.stats.UtilizedLanes += int64(active)
	l.stats.TotalLanes += int64(l.width)
}

func (l *Logger) addMarker(name string) {
	l.entries = append(l.entries, Entry{Name: name, Marker: true})
}

// Entries returns a copy of the log.
func (l *Logger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Stats returns the lane statistics accumulated so far.
func (l *Logger) Stats() Stats { return l.stats }

// Reset clears entries and statistics.
func (l *Logger) Reset() {
	l.entries = nil
	l.stats = Stats{Width: l.width}
}

// PrintLog writes one row per instruction with '*' for active and '_' for
// inactive lanes.
func (l *Logger) PrintLog(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "***************** Printing Vector Unit Execution Log *****************\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, " Instruction | Vector Lane Occupancy ('*' for active, '_' for inactive)\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "------------- --------------------------------------------------------\n"); err != nil {
		return err
	}

	lanes := make([]byte, l.width)
	for _, e := range l.entries {
		if e.Marker {
			if _, err := fmt.Fprintf(w, "%12s |\n", e.Name); err != nil {
				return err
			}
			continue
		}
		for i := range lanes {
			lanes[i] = '_'
			if i < len(e.Mask) && e.Mask[i] {
				lanes[i] = '*'
			}
		}
		if _, err := fmt.Fprintf(w, "%12s | %s\n", e.Name, lanes); err != nil {
			return err
		}
	}
	return nil
}

// PrintStats writes the statistics block.
func (l *Logger) PrintStats(w io.Writer) error {
	s := l.stats
	_, err := fmt.Fprintf(w,
		"****************** Printing Vector Unit Statistics *******************\n"+
			"Vector Width:              %d\n"+
			"Total Vector Instructions: %d\n"+
			"Vector Utilization:        %f%%\n"+
			"Utilized Vector Lanes:     %d\n"+
			"Total Vector Lanes:        %d\n",
		s.Width, s.TotalInstructions, s.Utilization(), s.UtilizedLanes, s.TotalLanes)
	return err
}
