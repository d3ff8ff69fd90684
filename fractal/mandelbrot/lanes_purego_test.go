//go:build purego

package mandelbrot

const lanesBuilt = false
