package qrcode

import "testing"

func TestGFRoundTrip(t *testing.T) {
	for ai := 1; ai < 256; ai++ {
		a := gf256(ai)
		for bi := 1; bi < 256; bi++ {
			b := gf256(bi)
			if got, want := a.mul(gf256(1).div(b)), a.div(b); got != want {
				t.Fatalf("mul(%d, div(1,%d)) = %d, want div(%d,%d) = %d", a, b, got, a, b, want)
			}
			if a.mul(b) != b.mul(a) {
				t.Fatalf("mul(%d,%d) != mul(%d,%d)", a, b, b, a)
			}
		}
		if a.mul(0) != 0 {
			t.Fatalf("mul(%d, 0) != 0", a)
		}
		if a.mul(a.inv()) != 1 {
			t.Fatalf("mul(%d, inv(%d)) != 1", a, a)
		}
	}
}

func TestRSRecoverability(t *testing.T) {
	ecCounts := []int{7, 10, 13, 17, 20, 24, 28, 30}
	data := []byte("Hello World")

	for _, nEC := range ecCounts {
		ec := rsEncode(data, nEC)
		if len(ec) != nEC {
			t.Fatalf("rsEncode returned %d codewords, want %d", len(ec), nEC)
		}
		full := append(append([]byte(nil), data...), ec...)
		for i := 0; i < nEC; i++ {
			if syndrome(full, i) != 0 {
				t.Fatalf("nEC=%d: syndrome at alpha^%d is nonzero", nEC, i)
			}
		}
	}
}

// syndrome evaluates the codeword stream, read high-order-coefficient
// first, as a polynomial at alpha^i over GF(256) via Horner's method.
func syndrome(codewords []byte, i int) gf256 {
	point := gfExp[i%255]
	var result gf256
	for _, b := range codewords {
		result = result.mul(point).add(gf256(b))
	}
	return result
}
