package vecintrin

// Comparisons write the predicate into the active lanes of dst and clear
// its inactive lanes, so the result is always a subset of m.

// GtFloat sets dst = a > b.
func (u *Unit) GtFloat(dst Mask, a, b Float, m Mask) {
	u.compareFloat("vgt", dst, a, b, m, func(x, y float32) bool { return x > y })
}

// LtFloat sets dst = a < b.
func (u *Unit) LtFloat(dst Mask, a, b Float, m Mask) {
	u.compareFloat("vlt", dst, a, b, m, func(x, y float32) bool { return x < y })
}

// EqFloat sets dst = a == b.
func (u *Unit) EqFloat(dst Mask, a, b Float, m Mask) {
	u.compareFloat("veq", dst, a, b, m, func(x, y float32) bool { return x == y })
}

// GtInt sets dst = a > b.
func (u *Unit) GtInt(dst Mask, a, b Int, m Mask) {
	u.compareInt("vgt", dst, a, b, m, func(x, y int32) bool { return x > y })
}

// LtInt sets dst = a < b.
func (u *Unit) LtInt(dst Mask, a, b Int, m Mask) {
	u.compareInt("vlt", dst, a, b, m, func(x, y int32) bool { return x < y })
}

// EqInt sets dst = a == b.
func (u *Unit) EqInt(dst Mask, a, b Int, m Mask) {
	u.compareInt("veq", dst, a, b, m, func(x, y int32) bool { return x == y })
}

func (u *Unit) compareFloat(name string, dst Mask, a, b Float, m Mask, pred func(x, y float32) bool) {
	u.checkMask(m)
	u.checkMask(dst)
	u.checkLanes(len(a), len(b))
	for i := range dst {
		dst[i] = m[i] && pred(a[i], b[i])
	}
	u.exec(name, m)
}

func (u *Unit) compareInt(name string, dst Mask, a, b Int, m Mask, pred func(x, y int32) bool) {
	u.checkMask(m)
	u.checkMask(dst)
	u.checkLanes(len(a), len(b))
	for i := range dst {
		dst[i] = m[i] && pred(a[i], b[i])
	}
	u.exec(name, m)
}
