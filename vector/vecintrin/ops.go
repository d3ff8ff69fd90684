package vecintrin

import "fmt"

// SetFloat writes v into the active lanes of dst.
func (u *Unit) SetFloat(dst Float, v float32, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst))
	for i := range dst {
		if m[i] {
			dst[i] = v
		}
	}
	u.exec("vset", m)
}

// SetInt writes v into the active lanes of dst.
func (u *Unit) SetInt(dst Int, v int32, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst))
	for i := range dst {
		if m[i] {
			dst[i] = v
		}
	}
	u.exec("vset", m)
}

// BroadcastFloat returns a vector with every lane set to v.
func (u *Unit) BroadcastFloat(v float32) Float {
	out := u.Float()
	u.SetFloat(out, v, u.all)
	return out
}

// BroadcastInt returns a vector with every lane set to v.
func (u *Unit) BroadcastInt(v int32) Int {
	out := u.Int()
	u.SetInt(out, v, u.all)
	return out
}

// MoveFloat copies the active lanes of src into dst.
func (u *Unit) MoveFloat(dst, src Float, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst), len(src))
	for i := range dst {
		if m[i] {
			dst[i] = src[i]
		}
	}
	u.exec("vmove", m)
}

// MoveInt copies the active lanes of src into dst.
func (u *Unit) MoveInt(dst, src Int, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst), len(src))
	for i := range dst {
		if m[i] {
			dst[i] = src[i]
		}
	}
	u.exec("vmove", m)
}

// LoadFloat reads mem[i] into lane i of dst for every active lane.
// An active lane beyond len(mem) panics.
func (u *Unit) LoadFloat(dst Float, mem []float32, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst))
	for i := range dst {
		if m[i] {
			boundsCheck("load", i, len(mem))
			dst[i] = mem[i]
		}
	}
	u.exec("vload", m)
}

// LoadInt reads mem[i] into lane i of dst for every active lane.
func (u *Unit) LoadInt(dst Int, mem []int32, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst))
	for i := range dst {
		if m[i] {
			boundsCheck("load", i, len(mem))
			dst[i] = mem[i]
		}
	}
	u.exec("vload", m)
}

// StoreFloat writes lane i of v to mem[i] for every active lane.
// An active lane beyond len(mem) panics.
func (u *Unit) StoreFloat(mem []float32, v Float, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(v))
	for i := range v {
		if m[i] {
			boundsCheck("store", i, len(mem))
			mem[i] = v[i]
		}
	}
	u.exec("vstore", m)
}

// StoreInt writes lane i of v to mem[i] for every active lane.
func (u *Unit) StoreInt(mem []int32, v Int, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(v))
	for i := range v {
		if m[i] {
			boundsCheck("store", i, len(mem))
			mem[i] = v[i]
		}
	}
	u.exec("vstore", m)
}

func boundsCheck(op string, lane, n int) {
	if lane >= n {
		panic(fmt.Sprintf("vecintrin: %s past end of memory (lane %d, %d elements)", op, lane, n))
	}
}

// AddFloat computes dst = a + b on active lanes.
func (u *Unit) AddFloat(dst, a, b Float, m Mask) {
	u.binaryFloat("vadd", dst, a, b, m, func(x, y float32) float32 { return x + y })
}

// SubFloat computes dst = a - b on active lanes.
func (u *Unit) SubFloat(dst, a, b Float, m Mask) {
	u.binaryFloat("vsub", dst, a, b, m, func(x, y float32) float32 { return x - y })
}

// MulFloat computes dst = a * b on active lanes.
func (u *Unit) MulFloat(dst, a, b Float, m Mask) {
	u.binaryFloat("vmult", dst, a, b, m, func(x, y float32) float32 { return x * y })
}

// DivFloat computes dst = a / b on active lanes.
func (u *Unit) DivFloat(dst, a, b Float, m Mask) {
	u.binaryFloat("vdiv", dst, a, b, m, func(x, y float32) float32 { return x / y })
}

// AbsFloat computes dst = |a| on active lanes.
func (u *Unit) AbsFloat(dst, a Float, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst), len(a))
	for i := range dst {
		if m[i] {
			x := a[i]
			if x < 0 {
				x = -x
			}
			dst[i] = x
		}
	}
	u.exec("vabs", m)
}

// AddInt computes dst = a + b on active lanes.
func (u *Unit) AddInt(dst, a, b Int, m Mask) {
	u.binaryInt("vadd", dst, a, b, m, func(x, y int32) int32 { return x + y })
}

// SubInt computes dst = a - b on active lanes.
func (u *Unit) SubInt(dst, a, b Int, m Mask) {
	u.binaryInt("vsub", dst, a, b, m, func(x, y int32) int32 { return x - y })
}

// MulInt computes dst = a * b on active lanes.
func (u *Unit) MulInt(dst, a, b Int, m Mask) {
	u.binaryInt("vmult", dst, a, b, m, func(x, y int32) int32 { return x * y })
}

// DivInt computes dst = a / b on active lanes. A zero divisor in an active
// lane panics.
func (u *Unit) DivInt(dst, a, b Int, m Mask) {
	u.checkMask(m)
	for i := range b {
		if i < len(m) && m[i] && b[i] == 0 {
			panic(fmt.Sprintf("vecintrin: integer divide by zero in lane %d", i))
		}
	}
	u.binaryInt("vdiv", dst, a, b, m, func(x, y int32) int32 { return x / y })
}

// AbsInt computes dst = |a| on active lanes.
func (u *Unit) AbsInt(dst, a Int, m Mask) {
	u.checkMask(m)
	u.checkLanes(len(dst), len(a))
	for i := range dst {
		if m[i] {
			x := a[i]
			if x < 0 {
				x = -x
			}
			dst[i] = x
		}
	}
	u.exec("vabs", m)
}

// ShiftRightInt computes dst = a >> b (arithmetic) on active lanes.
// Negative shift counts shift by zero.
func (u *Unit) ShiftRightInt(dst, a, b Int, m Mask) {
	u.binaryInt("vshiftright", dst, a, b, m, func(x, y int32) int32 {
		if y < 0 {
			return x
		}
		return x >> uint32(y)
	})
}

// BitAndInt computes dst = a & b on active lanes.
func (u *Unit) BitAndInt(dst, a, b Int, m Mask) {
	u.binaryInt("vbitand", dst, a, b, m, func(x, y int32) int32 { return x & y })
}

func (u *Unit) binaryFloat(name string, dst, a, b Float, m Mask, op func(x, y float32) float32) {
	u.checkMask(m)
	u.checkLanes(len(dst), len(a), len(b))
	for i := range dst {
		if m[i] {
			dst[i] = op(a[i], b[i])
		}
	}
	u.exec(name, m)
}

func (u *Unit) binaryInt(name string, dst, a, b Int, m Mask, op func(x, y int32) int32) {
	u.checkMask(m)
	u.checkLanes(len(dst), len(a), len(b))
	for i := range dst {
		if m[i] {
			dst[i] = op(a[i], b[i])
		}
	}
	u.exec(name, m)
}
