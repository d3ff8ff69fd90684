package mandelbrot

import "fmt"

// View is a window onto the complex plane. X spans the real axis and Y the
// imaginary axis.
type View struct {
	X0, X1 float32
	Y0, Y1 float32
}

// DefaultView frames the whole set: [-2, 1] x [-1, 1].
func DefaultView() View {
	return View{X0: -2, X1: 1, Y0: -1, Y1: 1}
}

// ScaleAndShift scales the window about the origin and then translates it.
func (v View) ScaleAndShift(scale, shiftX, shiftY float32) View {
	return View{
		X0: v.X0*scale + shiftX,
		X1: v.X1*scale + shiftX,
		Y0: v.Y0*scale + shiftY,
		Y1: v.Y1*scale + shiftY,
	}
}

// LookupView returns a built-in view by index.
//
//   - 1: DefaultView
//   - 2: a 0.015 zoom on the seahorse valley near (-0.986, 0.30)
func LookupView(index int) (View, error) {
	switch index {
	case 1:
		return DefaultView(), nil
	case 2:
		return DefaultView().ScaleAndShift(0.015, -0.986, 0.30), nil
	default:
		return View{}, fmt.Errorf("%w: %d", ErrUnknownView, index)
	}
}
