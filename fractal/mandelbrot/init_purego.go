//go:build purego

package mandelbrot

import (
	_ "github.com/cwbudde/algo-par/internal/kernel/arch/generic"
)
