package mandelbrot

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-par/internal/kernel/arch/generic"
	"github.com/cwbudde/algo-par/internal/kernel/registry"
)

// MaxWorkers is the largest worker count Threaded accepts.
const MaxWorkers = 32

var (
	ErrTooManyWorkers = fmt.Errorf("mandelbrot: max allowed workers is %d", MaxWorkers)
	ErrInvalidWorkers = errors.New("mandelbrot: worker count must be at least 1")
	ErrBufferSize     = errors.New("mandelbrot: output buffer smaller than width*height")
	ErrInvalidParams  = errors.New("mandelbrot: width, height and max iterations must be positive")
	ErrUnknownView    = errors.New("mandelbrot: unknown view index")
	ErrRowRange       = errors.New("mandelbrot: row range outside image")
)

// Params describes one image.
type Params struct {
	View

	Width, Height int
	MaxIterations int
}

// DefaultParams returns a 1600x1200 image of DefaultView at 256 iterations.
func DefaultParams() Params {
	return Params{
		View:          DefaultView(),
		Width:         1600,
		Height:        1200,
		MaxIterations: 256,
	}
}

// Pixels returns Width*Height.
func (p Params) Pixels() int { return p.Width * p.Height }

// Validate reports whether p describes a non-empty image.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.MaxIterations <= 0 {
		return fmt.Errorf("%w: %dx%d, %d iterations", ErrInvalidParams, p.Width, p.Height, p.MaxIterations)
	}
	return nil
}

func (p Params) region() registry.Region {
	return registry.Region{
		X0:            p.X0,
		Y0:            p.Y0,
		Dx:            (p.X1 - p.X0) / float32(p.Width),
		Dy:            (p.Y1 - p.Y0) / float32(p.Height),
		Width:         p.Width,
		MaxIterations: p.MaxIterations,
	}
}

// Mandel returns the escape iteration count of c = cRe + i*cIm, capped at
// count.
func Mandel(cRe, cIm float32, count int) int {
	return generic.Mandel(cRe, cIm, count)
}

// Serial computes rows [startRow, startRow+numRows) of p into out with the
// scalar kernel. out is indexed row-major: out[row*Width+col].
func Serial(p Params, startRow, numRows int, out []int) error {
	if err := checkBuffers(p, out); err != nil {
		return err
	}
	if startRow < 0 || numRows < 0 || startRow+numRows > p.Height {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrRowRange, startRow, startRow+numRows, p.Height)
	}

	r := p.region()
	for j := startRow; j < startRow+numRows; j++ {
		generic.Row(r, j, out[j*p.Width:(j+1)*p.Width])
	}
	return nil
}

// Render computes the whole image serially into a new buffer.
func Render(p Params) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]int, p.Pixels())
	if err := Serial(p, 0, p.Height, out); err != nil {
		return nil, err
	}
	return out, nil
}

func checkBuffers(p Params, out []int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(out) < p.Pixels() {
		return fmt.Errorf("%w: have %d, need %d", ErrBufferSize, len(out), p.Pixels())
	}
	return nil
}
