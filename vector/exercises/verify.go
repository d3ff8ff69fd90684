package exercises

import (
	"fmt"
	"io"
)

// Mismatch describes the first element where a vector result departs from
// the golden output.
type Mismatch struct {
	Index int

	// OutOfBounds is set when Index >= n, i.e. the kernel wrote past the
	// end of the workload.
	OutOfBounds bool

	Expected, Actual float32
}

func (m *Mismatch) Error() string {
	if m.OutOfBounds {
		return fmt.Sprintf("out of bound write at value[%d]: expected %f, got %f", m.Index, m.Expected, m.Actual)
	}
	return fmt.Sprintf("wrong calculation at value[%d]: expected %f, got %f", m.Index, m.Expected, m.Actual)
}

// Verify compares output against gold over all n+width entries and returns
// the first element differing by more than eps, or nil.
func Verify(output, gold []float32, n int, eps float32) *Mismatch {
	for i := range gold {
		if i >= len(output) {
			return &Mismatch{Index: i, OutOfBounds: i >= n, Expected: gold[i]}
		}
		d := output[i] - gold[i]
		if d < 0 {
			d = -d
		}
		if d > eps || d != d {
			return &Mismatch{
				Index:       i,
				OutOfBounds: i >= n,
				Expected:    gold[i],
				Actual:      output[i],
			}
		}
	}
	return nil
}

// Report writes the diagnostic block for a mismatch: the offending index
// followed by the first n values, exponents, outputs and golden outputs.
func (m *Mismatch) Report(w io.Writer, wl *Workload) error {
	if m.OutOfBounds {
		if _, err := fmt.Fprintf(w, "You have written to out of bound value!\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Wrong calculation at value[%d]!\n", m.Index); err != nil {
		return err
	}

	rows := []struct {
		label string
		cell  func(i int) string
	}{
		{"value  = ", func(i int) string { return fmt.Sprintf("% f ", wl.Values[i]) }},
		{"exp    = ", func(i int) string { return fmt.Sprintf("% 9d ", wl.Exponents[i]) }},
		{"output = ", func(i int) string { return fmt.Sprintf("% f ", wl.Output[i]) }},
		{"gold   = ", func(i int) string { return fmt.Sprintf("% f ", wl.Gold[i]) }},
	}
	for _, r := range rows {
		if _, err := io.WriteString(w, r.label); err != nil {
			return err
		}
		for i := 0; i < wl.N; i++ {
			if _, err := io.WriteString(w, r.cell(i)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// SumMatches reports whether a vector reduction is within SumEpsilon of
// the serial one.
func SumMatches(gold, got float32) bool {
	d := gold - got
	if d < 0 {
		d = -d
	}
	return d < SumEpsilon
}
