package exercises

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-par/vector/vecintrin"
)

const (
	// ExpMax bounds the exponents produced by InitValues: 0 <= y < ExpMax.
	ExpMax = 10

	// ClampLimit is the ceiling of the clamped exponentiation.
	ClampLimit float32 = 9.999999

	// Epsilon is the tolerance Verify applies per element.
	Epsilon float32 = 0.00001

	// SumEpsilon is the tolerance for comparing reductions; summation order
	// differs between the serial and vector sums.
	SumEpsilon float32 = 0.1 * 2
)

// ErrSumShape is returned by ArraySumVector when n is not a multiple of the
// width or the width is not a power of two.
var ErrSumShape = errors.New("exercises: array sum needs a power-of-two width dividing n")

// Workload holds the buffers of one run. Each slice has n+width entries so
// that writes past n are detectable.
type Workload struct {
	N         int
	Values    []float32
	Exponents []int32
	Output    []float32
	Gold      []float32
}

// InitValues fills a workload of size n for a unit of the given width.
// Values are uniform in [-1, 3), exponents uniform in [0, ExpMax).
func InitValues(rng *rand.Rand, n, width int) *Workload {
	total := n + width
	w := &Workload{
		N:         n,
		Values:    make([]float32, total),
		Exponents: make([]int32, total),
		Output:    make([]float32, total),
		Gold:      make([]float32, total),
	}
	for i := 0; i < total; i++ {
		w.Values[i] = -1 + 4*rng.Float32()
		w.Exponents[i] = int32(rng.Intn(ExpMax))
	}
	return w
}

// ResetOutputs zeroes Output and Gold.
func (w *Workload) ResetOutputs() {
	clear(w.Output)
	clear(w.Gold)
}

// AbsSerial writes |values[i]| to output[i] for i < n.
func AbsSerial(values, output []float32, n int) {
	for i := 0; i < n; i++ {
		x := values[i]
		if x < 0 {
			output[i] = -x
		} else {
			output[i] = x
		}
	}
}

// AbsVector is AbsSerial on the vector unit.
func AbsVector(u *vecintrin.Unit, values, output []float32, n int) {
	width := u.Width()
	x := u.Float()
	result := u.Float()
	zero := u.BroadcastFloat(0)
	isNegative := u.Mask()

	for i := 0; i < n; i += width {
		active := u.InitOnes(n - i)

		u.LoadFloat(x, values[i:], active)                      // x = values[i]
		u.LtFloat(isNegative, x, zero, active)                  // if x < 0 {
		u.SubFloat(result, zero, x, isNegative)                 //   output[i] = -x
		notNegative := u.MaskAnd(u.MaskNot(isNegative), active) // } else {
		u.LoadFloat(result, values[i:], notNegative)            //   output[i] = x }
		u.StoreFloat(output[i:], result, active)
	}
}

// ClampedExpSerial writes min(values[i]^exponents[i], ClampLimit) to
// output[i], with x^0 = 1 regardless of x.
func ClampedExpSerial(values []float32, exponents []int32, output []float32, n int) {
	for i := 0; i < n; i++ {
		x := values[i]
		y := exponents[i]
		if y == 0 {
			output[i] = 1
			continue
		}
		result := x
		for count := y - 1; count > 0; count-- {
			result *= x
		}
		if result > ClampLimit {
			result = ClampLimit
		}
		output[i] = result
	}
}

// ClampedExpVector is ClampedExpSerial on the vector unit. The power loop
// runs ExpMax-1 masked multiply steps; a lane drops out of the mask once
// its remaining count reaches zero.
func ClampedExpVector(u *vecintrin.Unit, values []float32, exponents []int32, output []float32, n int) {
	width := u.Width()
	x := u.Float()
	y := u.Int()
	result := u.Float()
	count := u.Int()
	zeroInt := u.BroadcastInt(0)
	oneInt := u.BroadcastInt(1)
	clampVal := u.BroadcastFloat(ClampLimit)
	yIsZero := u.Mask()
	multiply := u.Mask()
	needsClamp := u.Mask()

	for i := 0; i < n; i += width {
		active := u.InitOnes(n - i)

		u.LoadFloat(x, values[i:], active)
		u.LoadInt(y, exponents[i:], active)

		u.EqInt(yIsZero, y, zeroInt, active)
		yNotZero := u.MaskAnd(u.MaskNot(yIsZero), active)

		u.MoveFloat(result, x, yNotZero)     // result = x
		u.SubInt(count, y, oneInt, yNotZero) // count = y - 1

		for step := 0; step < ExpMax-1; step++ {
			u.GtInt(multiply, count, zeroInt, yNotZero) // while count > 0
			u.MulFloat(result, result, x, multiply)
			u.SubInt(count, count, oneInt, multiply)
		}

		u.GtFloat(needsClamp, result, clampVal, yNotZero)
		u.SetFloat(result, ClampLimit, needsClamp)
		u.SetFloat(result, 1, yIsZero)

		u.StoreFloat(output[i:], result, active)
	}
}

// ArraySumSerial returns the sum of values[:n].
func ArraySumSerial(values []float32, n int) float32 {
	var sum float32
	for i := 0; i < n; i++ {
		sum += values[i]
	}
	return sum
}

// ArraySumVector returns the sum of values[:n] using width-wide partial
// sums followed by log2(width) HAdd/Interleave reduction steps.
func ArraySumVector(u *vecintrin.Unit, values []float32, n int) (float32, error) {
	width := u.Width()
	if width&(width-1) != 0 || n%width != 0 {
		return 0, fmt.Errorf("%w: n=%d width=%d", ErrSumShape, n, width)
	}

	all := u.InitOnes(width)
	acc := u.BroadcastFloat(0)
	x := u.Float()

	for i := 0; i < n; i += width {
		u.LoadFloat(x, values[i:], all)
		u.AddFloat(acc, acc, x, all)
	}

	for span := width; span > 1; span /= 2 {
		u.HAdd(acc, acc)
		u.Interleave(acc, acc)
	}

	lane0 := make([]float32, 1)
	u.StoreFloat(lane0, acc, u.InitOnes(1))
	return lane0[0], nil
}
