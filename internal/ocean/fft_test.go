package ocean

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func TestFFTRoundTripScalesByLength(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, n := range []int{2, 8, 64, 256} {
		original := make([]complex128, n)
		data := make([]complex128, n)
		for i := range data {
			v := complex(rng.NormFloat64(), rng.NormFloat64())
			original[i] = v
			data[i] = v
		}

		fft(data, false)
		fft(data, true)

		// Unnormalized transforms: forward then inverse multiplies by n.
		scale := float64(n)
		for i := range data {
			if cmplx.Abs(data[i]-original[i]*complex(scale, 0)) > 1e-9*scale {
				t.Fatalf("n=%d index %d: round trip gave %v, want %v", n, i, data[i], original[i]*complex(scale, 0))
			}
		}
	}
}

func TestFFTDeltaGivesFlatSpectrum(t *testing.T) {
	n := 16
	data := make([]complex128, n)
	data[0] = 1

	fft(data, false)

	for i, v := range data {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("Bin %d of a delta transform is %v, want 1", i, v)
		}
	}
}

func TestFFTSingleToneLandsInOneBin(t *testing.T) {
	n := 32
	bin := 5
	data := make([]complex128, n)
	for i := range data {
		angle := 2 * math.Pi * float64(bin) * float64(i) / float64(n)
		data[i] = cmplx.Exp(complex(0, angle))
	}

	fft(data, false)

	for i, v := range data {
		want := complex(0, 0)
		if i == bin {
			want = complex(float64(n), 0)
		}
		if cmplx.Abs(v-want) > 1e-9 {
			t.Fatalf("Bin %d = %v, want %v", i, v, want)
		}
	}
}

func TestInverseFFT2DOfDelta(t *testing.T) {
	n := 8
	field := make([]complex128, n*n)
	field[0] = 1

	inverseFFT2D(field, n)

	for i, v := range field {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("Cell %d of a delta inverse transform is %v, want 1", i, v)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 512, 1024} {
		if !isPowerOfTwo(n) {
			t.Errorf("isPowerOfTwo(%d) = false", n)
		}
	}
	for _, n := range []int{0, -2, 3, 100, 300, 513} {
		if isPowerOfTwo(n) {
			t.Errorf("isPowerOfTwo(%d) = true", n)
		}
	}
}

func TestReverseBits(t *testing.T) {
	cases := []struct {
		value, bits, want uint
	}{
		{0, 3, 0},
		{1, 3, 4},
		{3, 3, 6},
		{5, 4, 10},
		{1, 10, 512},
	}
	for _, c := range cases {
		if got := reverseBits(c.value, c.bits); got != c.want {
			t.Errorf("reverseBits(%d, %d) = %d, want %d", c.value, c.bits, got, c.want)
		}
	}
}
