package ocean

import "math"

// Radix-2 Cooley-Tukey FFT used to synthesize the spatial ocean fields from
// the frequency-domain spectrum. The transforms are unnormalized: the
// inverse is the plain synthesis sum over wavevectors, which is the
// convention the spectrum amplitudes are tuned for. Lengths must be powers
// of two; SpectralOcean validates that before any spectrum exists.

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// reverseBits reverses the lowest numBits bits of value.
func reverseBits(value, numBits uint) uint {
	result := uint(0)
	for i := uint(0); i < numBits; i++ {
		result = result<<1 | value&1
		value >>= 1
	}
	return result
}

func log2(n int) uint {
	bits := uint(0)
	for v := n; v > 1; v >>= 1 {
		bits++
	}
	return bits
}

// fft transforms data in place. inverse selects the e^{+i...} kernel.
func fft(data []complex128, inverse bool) {
	n := len(data)
	if n < 2 {
		return
	}
	bits := log2(n)

	for i := 0; i < n; i++ {
		j := int(reverseBits(uint(i), bits))
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		angle := 2 * math.Pi / float64(size)
		if !inverse {
			angle = -angle
		}
		wn := complex(math.Cos(angle), math.Sin(angle))
		half := size / 2
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := data[start+k]
				v := data[start+k+half] * w
				data[start+k] = u + v
				data[start+k+half] = u - v
				w *= wn
			}
		}
	}
}

// inverseFFT2D applies the unnormalized inverse transform to an n x n
// row-major field, rows first then columns.
func inverseFFT2D(field []complex128, n int) {
	for row := 0; row < n; row++ {
		fft(field[row*n:(row+1)*n], true)
	}

	column := make([]complex128, n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			column[row] = field[row*n+col]
		}
		fft(column, true)
		for row := 0; row < n; row++ {
			field[row*n+col] = column[row]
		}
	}
}
