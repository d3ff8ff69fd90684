package vecintrin

// InitOnes returns a mask whose first n lanes are active. n is clamped to
// [0, Width()].
func (u *Unit) InitOnes(n int) Mask {
	m := u.Mask()
	n = max(0, min(n, u.width))
	for i := 0; i < n; i++ {
		m[i] = true
	}
	u.exec("initones", u.all)
	return m
}

// MaskNot returns the complement of m.
func (u *Unit) MaskNot(m Mask) Mask {
	u.checkMask(m)
	out := u.Mask()
	for i, b := range m {
		out[i] = !b
	}
	u.exec("masknot", u.all)
	return out
}

// MaskOr returns a | b.
func (u *Unit) MaskOr(a, b Mask) Mask {
	u.checkMask(a)
	u.checkMask(b)
	out := u.Mask()
	for i := range out {
		out[i] = a[i] || b[i]
	}
	u.exec("maskor", u.all)
	return out
}

// MaskAnd returns a & b.
func (u *Unit) MaskAnd(a, b Mask) Mask {
	u.checkMask(a)
	u.checkMask(b)
	out := u.Mask()
	for i := range out {
		out[i] = a[i] && b[i]
	}
	u.exec("maskand", u.all)
	return out
}

// CountBits returns the number of active lanes in m.
func (u *Unit) CountBits(m Mask) int {
	u.checkMask(m)
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	u.exec("cntbits", u.all)
	return n
}
