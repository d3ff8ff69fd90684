package vecintrin

// HAdd adds adjacent lane pairs; both lanes of a pair receive the sum:
// [0 1 2 3] -> [0+1 0+1 2+3 2+3]. The width must be even.
func (u *Unit) HAdd(dst, v Float) {
	u.checkPairs("hadd")
	u.checkLanes(len(dst), len(v))
	for i := 0; i < u.width; i += 2 {
		s := v[i] + v[i+1]
		dst[i] = s
		dst[i+1] = s
	}
	u.exec("hadd", u.all)
}

// Interleave moves even lanes to the lower half and odd lanes to the upper
// half: [0 1 2 3 4 5 6 7] -> [0 2 4 6 1 3 5 7]. The width must be even.
// dst and v may alias.
func (u *Unit) Interleave(dst, v Float) {
	u.checkPairs("interleave")
	u.checkLanes(len(dst), len(v))
	src := append(Float(nil), v...)
	half := u.width / 2
	for i := 0; i < half; i++ {
		dst[i] = src[2*i]
		dst[i+half] = src[2*i+1]
	}
	u.exec("interleave", u.all)
}
