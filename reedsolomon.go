package qrcode

// gf256 is one element of GF(2^8) under the QR Code primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D, 285). Reed-Solomon error-correction
// codewords are produced entirely by arithmetic in this field.
type gf256 byte

// gfExp is doubled to 510 entries so mul/div can add two 0..254 log values
// without ever reducing mod 255 themselves.
var (
	gfExp [510]gf256
	gfLog [256]int
)

func init() {
	v := gf256(1)
	for i := 0; i < 255; i++ {
		gfExp[i] = v
		gfLog[v] = i
		v = gfTimesAlpha(v)
	}
	for i := 255; i < 510; i++ {
		gfExp[i] = gfExp[i-255]
	}
}

// gfTimesAlpha multiplies v by the field generator (alpha = 2), reducing by
// the primitive polynomial whenever the shift overflows a byte.
func gfTimesAlpha(v gf256) gf256 {
	doubled := int(v) << 1
	if doubled >= 0x100 {
		doubled ^= 0x11D
	}
	return gf256(doubled)
}

func (a gf256) add(b gf256) gf256 { return a ^ b }

func (a gf256) mul(b gf256) gf256 {
	if a == 0 || b == 0 {
		return 0
	}
	return gfExp[gfLog[a]+gfLog[b]]
}

func (a gf256) inv() gf256 {
	if a == 0 {
		panic("qrcode: gf inverse of zero")
	}
	return gfExp[255-gfLog[a]]
}

func (a gf256) div(b gf256) gf256 {
	if b == 0 {
		panic("qrcode: gf division by zero")
	}
	if a == 0 {
		return 0
	}
	return a.mul(b.inv())
}

// gfPoly holds polynomial coefficients over gf256 in ascending power order:
// gfPoly{c0, c1, c2} means c0 + c1*x + c2*x^2.
type gfPoly []gf256

// mul returns the full convolution product p*q.
func (p gfPoly) mul(q gfPoly) gfPoly {
	res := make(gfPoly, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			res[i+j] = res[i+j].add(pc.mul(qc))
		}
	}
	return res
}

// rsGenerator builds the degree-nEC Reed-Solomon generator polynomial,
// the product over i=0..nEC-1 of (1 + alpha^i * x).
func rsGenerator(nEC int) gfPoly {
	gen := gfPoly{1}
	for i := 0; i < nEC; i++ {
		gen = gen.mul(gfPoly{1, gfExp[i]})
	}
	return gen
}

// rsEncode returns exactly nEC error-correction codewords for data: the
// remainder of data (treated as a polynomial, high-degree term first in
// array order but evaluated via the register below) times x^nEC, divided by
// the degree-nEC generator. Implemented as in-place synthetic division over
// a remainder buffer rather than building the full quotient.
func rsEncode(data []byte, nEC int) []byte {
	generator := rsGenerator(nEC)

	remainder := make(gfPoly, len(data)+nEC)
	for i, b := range data {
		remainder[i] = gf256(b)
	}

	for i := 0; i < len(data); i++ {
		lead := remainder[i]
		if lead == 0 {
			continue
		}
		for j, g := range generator {
			remainder[i+j] = remainder[i+j].add(g.mul(lead))
		}
	}

	out := make([]byte, nEC)
	for i, c := range remainder[len(data):] {
		out[i] = byte(c)
	}
	return out
}
