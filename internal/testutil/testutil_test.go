package testutil

import "testing"

func TestDeterministicFloat32(t *testing.T) {
	a := DeterministicFloat32(42, -1, 3, 64)
	b := DeterministicFloat32(42, -1, 3, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 3 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(4)
	for i, v := range r {
		if v != float32(i) {
			t.Fatalf("r[%d] = %v", i, v)
		}
	}
}

func TestMaxAbsDiff32(t *testing.T) {
	d, err := MaxAbsDiff32([]float32{1, 2, 3}, []float32{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff32 error: %v", err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff32 = %v, want 1", d)
	}

	if _, err := MaxAbsDiff32([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireFloat32NearlyEqual(t, []float32{1, 2}, []float32{1.00001, 2}, 1e-4)
	RequireImagesEqual(t, []int{1, 2, 3, 4}, []int{1, 2, 3, 4}, 2)
}
