package mandelbrot

import "fmt"

// Mismatch is the first pixel where two images differ.
type Mismatch struct {
	Row, Col         int
	Expected, Actual int
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("Mismatch : [%d][%d], Expected : %d, Actual : %d", m.Row, m.Col, m.Expected, m.Actual)
}

// Verify compares got against want pixel by pixel. It returns nil when the
// images are identical, a *Mismatch for the first differing pixel, or
// ErrBufferSize when the lengths differ.
func Verify(want, got []int, width int) error {
	if len(want) != len(got) {
		return fmt.Errorf("%w: want %d pixels, got %d", ErrBufferSize, len(want), len(got))
	}
	if width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidParams, width)
	}
	for i := range want {
		if want[i] != got[i] {
			return &Mismatch{
				Row:      i / width,
				Col:      i % width,
				Expected: want[i],
				Actual:   got[i],
			}
		}
	}
	return nil
}
