// Package exercises contains branchy scalar kernels and their lane-masked
// counterparts written against the simulated vector unit in vecintrin.
//
// Each kernel comes as a pair: a Serial version that produces the golden
// output and a Vector version whose result must match it. The vector
// versions handle any n, including n that is not a multiple of the unit
// width, by masking off the tail lanes of the last iteration.
package exercises
