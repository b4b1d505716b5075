package cplx

import (
	"fmt"
	"math"
	"testing"
)

func TestString(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		z    Complex
		want string
	}{
		{New(0, 0), "0"},
		{New(0, 1), "i"},
		{New(0, -1), "-i"},
		{New(0, 2.5), "2.5i"},
		{New(0, -3), "-3i"},
		{New(2, 0), "2+0i"},
		{New(2, 1), "2+i"},
		{New(2, -1), "2-i"},
		{New(2, 3), "2+3i"},
		{New(2, -3), "2-3i"},
		{New(-1.5, 0.25), "-1.5+0.25i"},
		{New(0.1, 0.2), "0.1+0.2i"},
		{New(1e20, 0), "100000000000000000000+0i"},
		{New(float32(math.Copysign(0, -1)), 1), "i"},
		{New(1, float32(math.Copysign(0, -1))), "1+-0i"},
		{New(nan, 1), "NaN+i"},
		{New(1, nan), "1+NaNi"},
		{New(inf, -inf), "inf-infi"},
		{I, "i"},
	}
	for _, tc := range tests {
		if got := tc.z.String(); got != tc.want {
			t.Errorf("String(%v, %v)=%q, want %q", tc.z.Real(), tc.z.Imag(), got, tc.want)
		}
	}
}

func TestStringer(t *testing.T) {
	if got := fmt.Sprintf("%v", New(3, -4)); got != "3-4i" {
		t.Fatalf("Sprintf=%q", got)
	}
	if got := fmt.Sprint([]Complex{I, 2}); got != "[i 2+0i]" {
		t.Fatalf("Sprint=%q", got)
	}
}
