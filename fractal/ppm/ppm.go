// Package ppm writes escape-time iteration buffers as binary PPM (P6)
// images.
//
// Iteration counts map to grey levels as 255*sqrt(min(it, maxIter)/256),
// which brightens the slowly escaping boundary. Build with the fastmath tag
// to use an approximate square root.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrSize         = errors.New("ppm: buffer does not match width*height")
	ErrInvalidShape = errors.New("ppm: width and height must be positive")
)

// Grey returns the grey level of a pixel that took it iterations.
func Grey(it, maxIter int) uint8 {
	if it > maxIter {
		it = maxIter
	}
	if it <= 0 {
		return 0
	}
	v := 255 * mathSqrt(float64(it)/256)
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Encode writes iters as a width x height P6 image to w.
func Encode(w io.Writer, iters []int, width, height, maxIter int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, width, height)
	}
	if len(iters) != width*height {
		return fmt.Errorf("%w: have %d, want %d", ErrSize, len(iters), width*height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	px := make([]byte, 3)
	for _, it := range iters {
		g := Grey(it, maxIter)
		px[0], px[1], px[2] = g, g, g
		if _, err := bw.Write(px); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile encodes iters into the file at path, replacing it.
func WriteFile(path string, iters []int, width, height, maxIter int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("ppm: %w", cerr)
		}
	}()

	return Encode(f, iters, width, height, maxIter)
}
