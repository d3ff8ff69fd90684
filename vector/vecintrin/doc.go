// Package vecintrin simulates a small vector instruction set with explicit
// per-lane masks.
//
// A Unit has a fixed lane width. Vectors (Float, Int) and masks (Mask) are
// allocated by the unit and always hold exactly Width() lanes. Every
// operation takes a mask: lanes whose mask bit is clear are neither read
// nor written, which is how branchy scalar code is expressed:
//
//	x := u.Float()
//	neg := u.Mask()
//	all := u.InitOnes(u.Width())
//	u.LoadFloat(x, values[i:], all)         // x = values[i]
//	u.LtFloat(neg, x, zero, all)            // if x < 0 {
//	u.SubFloat(result, zero, x, neg)        //   result = -x
//	u.LoadFloat(result, values[i:], u.MaskNot(neg)) // } else { result = x }
//
// Each executed instruction is appended to the unit's Logger together with
// the mask it ran under, so the lane utilization of a kernel can be
// inspected afterwards with Logger.Stats, Logger.PrintLog and
// Logger.PrintStats.
//
// A Unit is not safe for concurrent use.
package vecintrin
