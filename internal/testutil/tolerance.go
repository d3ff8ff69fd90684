package testutil

import (
	"fmt"
	"testing"
)

// RequireFloat32NearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireFloat32NearlyEqual(t *testing.T, got, want []float32, eps float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := abs32(got[i] - want[i])
		if diff > eps || diff != diff {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireImagesEqual fails t at the first pixel where two row-major
// iteration buffers of the given width differ.
func RequireImagesEqual(t *testing.T, got, want []int, width int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("pixel [%d][%d]: got %d, want %d", i/width, i%width, got[i], want[i])
		}
	}
}

// MaxAbsDiff32 returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff32(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff float32
	for i := range a {
		if d := abs32(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
