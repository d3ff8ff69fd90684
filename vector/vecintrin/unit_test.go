package vecintrin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-par/internal/testutil"
)

func TestInitOnes(t *testing.T) {
	u := NewUnit(WithWidth(4))
	tests := []struct {
		n    int
		want Mask
	}{
		{-2, Mask{false, false, false, false}},
		{0, Mask{false, false, false, false}},
		{2, Mask{true, true, false, false}},
		{4, Mask{true, true, true, true}},
		{9, Mask{true, true, true, true}},
	}
	for _, tt := range tests {
		got := u.InitOnes(tt.n)
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("InitOnes(%d) = %v, want %v", tt.n, got, tt.want)
			}
		}
	}
}

func TestMaskOps(t *testing.T) {
	u := NewUnit(WithWidth(4))
	a := Mask{true, true, false, false}
	b := Mask{true, false, true, false}

	if got := u.MaskAnd(a, b); !equalMask(got, Mask{true, false, false, false}) {
		t.Fatalf("MaskAnd = %v", got)
	}
	if got := u.MaskOr(a, b); !equalMask(got, Mask{true, true, true, false}) {
		t.Fatalf("MaskOr = %v", got)
	}
	if got := u.MaskNot(a); !equalMask(got, Mask{false, false, true, true}) {
		t.Fatalf("MaskNot = %v", got)
	}
	if got := u.CountBits(b); got != 2 {
		t.Fatalf("CountBits = %d, want 2", got)
	}
}

func TestMaskedArithmeticLeavesInactiveLanes(t *testing.T) {
	u := NewUnit(WithWidth(4))
	a := Float{1, 2, 3, 4}
	b := Float{10, 20, 30, 40}
	dst := Float{-1, -1, -1, -1}
	m := Mask{true, false, true, false}

	u.AddFloat(dst, a, b, m)
	if want := (Float{11, -1, 33, -1}); !equalFloat(dst, want) {
		t.Fatalf("AddFloat = %v, want %v", dst, want)
	}

	u.MulFloat(dst, a, b, u.InitOnes(4))
	if want := (Float{10, 40, 90, 160}); !equalFloat(dst, want) {
		t.Fatalf("MulFloat = %v, want %v", dst, want)
	}

	u.SubFloat(dst, a, b, Mask{false, false, false, true})
	if want := (Float{10, 40, 90, -36}); !equalFloat(dst, want) {
		t.Fatalf("SubFloat = %v, want %v", dst, want)
	}

	u.DivFloat(dst, b, a, u.InitOnes(1))
	testutil.RequireFloat32NearlyEqual(t, dst, []float32{10, 40, 90, -36}, 0)
}

func TestIntOps(t *testing.T) {
	u := NewUnit(WithWidth(4))
	all := u.InitOnes(4)
	a := Int{-8, 7, 12, -1}
	b := Int{2, 1, 3, 2}
	dst := u.Int()

	u.AddInt(dst, a, b, all)
	if want := (Int{-6, 8, 15, 1}); !equalInt(dst, want) {
		t.Fatalf("AddInt = %v", dst)
	}
	u.SubInt(dst, a, b, all)
	if want := (Int{-10, 6, 9, -3}); !equalInt(dst, want) {
		t.Fatalf("SubInt = %v", dst)
	}
	u.MulInt(dst, a, b, all)
	if want := (Int{-16, 7, 36, -2}); !equalInt(dst, want) {
		t.Fatalf("MulInt = %v", dst)
	}
	u.DivInt(dst, a, b, all)
	if want := (Int{-4, 7, 4, 0}); !equalInt(dst, want) {
		t.Fatalf("DivInt = %v", dst)
	}
	u.AbsInt(dst, a, all)
	if want := (Int{8, 7, 12, 1}); !equalInt(dst, want) {
		t.Fatalf("AbsInt = %v", dst)
	}
	u.ShiftRightInt(dst, a, b, all)
	if want := (Int{-2, 3, 1, -1}); !equalInt(dst, want) {
		t.Fatalf("ShiftRightInt = %v", dst)
	}
	u.BitAndInt(dst, a, b, all)
	if want := (Int{0, 1, 0, 2}); !equalInt(dst, want) {
		t.Fatalf("BitAndInt = %v", dst)
	}
}

func TestDivIntByZeroOnlyPanicsWhenActive(t *testing.T) {
	u := NewUnit(WithWidth(2))
	dst := u.Int()

	u.DivInt(dst, Int{4, 4}, Int{2, 0}, Mask{true, false})
	if dst[0] != 2 {
		t.Fatalf("lane 0 = %d, want 2", dst[0])
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for active zero divisor")
		}
	}()
	u.DivInt(dst, Int{4, 4}, Int{2, 0}, Mask{true, true})
}

func TestCompareClearsInactiveLanes(t *testing.T) {
	u := NewUnit(WithWidth(4))
	dst := Mask{true, true, true, true}
	a := Float{-1, 2, -3, 4}
	zero := u.BroadcastFloat(0)

	u.LtFloat(dst, a, zero, Mask{true, true, false, false})
	if want := (Mask{true, false, false, false}); !equalMask(dst, want) {
		t.Fatalf("LtFloat = %v, want %v", dst, want)
	}

	u.GtFloat(dst, a, zero, u.InitOnes(4))
	if want := (Mask{false, true, false, true}); !equalMask(dst, want) {
		t.Fatalf("GtFloat = %v, want %v", dst, want)
	}

	ai := Int{0, 1, 0, 2}
	u.EqInt(dst, ai, u.BroadcastInt(0), u.InitOnes(3))
	if want := (Mask{true, false, true, false}); !equalMask(dst, want) {
		t.Fatalf("EqInt = %v, want %v", dst, want)
	}
}

func TestLoadStoreMasked(t *testing.T) {
	u := NewUnit(WithWidth(4))
	mem := []float32{1, 2, 3}
	v := u.Float()

	// Only three elements remain; the fourth lane must stay untouched.
	u.LoadFloat(v, mem, u.InitOnes(3))
	if want := (Float{1, 2, 3, 0}); !equalFloat(v, want) {
		t.Fatalf("LoadFloat = %v", v)
	}

	out := make([]float32, 3)
	u.StoreFloat(out, v, u.InitOnes(3))
	if out[2] != 3 {
		t.Fatalf("StoreFloat wrote %v", out)
	}
}

func TestLoadPastEndPanics(t *testing.T) {
	u := NewUnit(WithWidth(4))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "load past end") {
			t.Fatalf("unexpected panic %v", r)
		}
	}()
	u.LoadFloat(u.Float(), []float32{1, 2, 3}, u.InitOnes(4))
}

func TestWidthMismatchPanics(t *testing.T) {
	u := NewUnit(WithWidth(4))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched vector")
		}
	}()
	u.AddFloat(u.Float(), make(Float, 8), u.Float(), u.InitOnes(4))
}

func TestHAddInterleave(t *testing.T) {
	u := NewUnit(WithWidth(8))
	v := Float{0, 1, 2, 3, 4, 5, 6, 7}
	dst := u.Float()

	u.HAdd(dst, v)
	if want := (Float{1, 1, 5, 5, 9, 9, 13, 13}); !equalFloat(dst, want) {
		t.Fatalf("HAdd = %v, want %v", dst, want)
	}

	u.Interleave(v, v)
	if want := (Float{0, 2, 4, 6, 1, 3, 5, 7}); !equalFloat(v, want) {
		t.Fatalf("Interleave = %v, want %v", v, want)
	}
}

func TestHAddOddWidthPanics(t *testing.T) {
	u := NewUnit(WithWidth(3))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for odd width")
		}
	}()
	u.HAdd(u.Float(), u.Float())
}

func TestLoggerStats(t *testing.T) {
	u := NewUnit(WithWidth(4))
	v := u.Float()
	u.SetFloat(v, 1, Mask{true, true, false, false})
	u.SetFloat(v, 1, Mask{true, true, true, true})
	u.AddUserLog("marker")

	s := u.Logger().Stats()
	if s.TotalInstructions != 2 || s.UtilizedLanes != 6 || s.TotalLanes != 8 {
		t.Fatalf("stats = %+v", s)
	}
	if got := s.Utilization(); got != 75 {
		t.Fatalf("Utilization = %v, want 75", got)
	}
	if n := len(u.Logger().Entries()); n != 3 {
		t.Fatalf("entries = %d, want 3", n)
	}

	u.Logger().Reset()
	if s := u.Logger().Stats(); s.TotalInstructions != 0 || s.Utilization() != 0 || s.Width != 4 {
		t.Fatalf("after Reset stats = %+v", s)
	}
}

func TestPrintLog(t *testing.T) {
	u := NewUnit(WithWidth(4))
	v := u.Float()
	u.SetFloat(v, 1, Mask{true, false, true, false})
	u.AddUserLog("step")

	var buf bytes.Buffer
	if err := u.Logger().PrintLog(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "        vset | *_*_\n") {
		t.Fatalf("missing vset row in:\n%s", out)
	}
	if !strings.Contains(out, "        step |\n") {
		t.Fatalf("missing marker row in:\n%s", out)
	}
}

func TestPrintStats(t *testing.T) {
	u := NewUnit()
	u.SetFloat(u.Float(), 0, u.InitOnes(2))

	var buf bytes.Buffer
	if err := u.Logger().PrintStats(&buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Vector Width:              4\n",
		"Total Vector Instructions: 2\n",
		"Vector Utilization:        75.000000%\n",
		"Utilized Vector Lanes:     6\n",
		"Total Vector Lanes:        8\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, buf.String())
		}
	}
}

func TestOptions(t *testing.T) {
	if got := NewUnit().Width(); got != DefaultWidth {
		t.Fatalf("default width = %d", got)
	}
	if got := NewUnit(WithWidth(-3)).Width(); got != DefaultWidth {
		t.Fatalf("negative width accepted: %d", got)
	}
	if got := NewUnit(WithWidth(16)).Width(); got != 16 {
		t.Fatalf("WithWidth(16) = %d", got)
	}
	if got := NewUnit(WithNativeWidth()).Width(); got < 1 {
		t.Fatalf("WithNativeWidth = %d", got)
	}
}

func equalMask(a, b Mask) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloat(a, b Float) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInt(a, b Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
