package qrcode

import (
	"bytes"
	"testing"
)

// renderRGBA rasterizes a symbol into an RGBA8 buffer the way a display
// surface would, with a quiet zone of margin modules and scale pixels per
// module, so Decode can be exercised without going through PNG encoding.
func renderRGBA(q *QRCode, scale, margin int) (pixels []byte, width, height int) {
	dim := (q.Size + 2*margin) * scale
	pixels = make([]byte, dim*dim*4)
	for i := 0; i < dim*dim; i++ {
		pixels[i*4+0] = 255
		pixels[i*4+1] = 255
		pixels[i*4+2] = 255
		pixels[i*4+3] = 255
	}
	for r := 0; r < q.Size; r++ {
		for c := 0; c < q.Size; c++ {
			if !q.Modules[r][c] {
				continue
			}
			x0 := (c + margin) * scale
			y0 := (r + margin) * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					idx := ((y0+dy)*dim + (x0 + dx)) * 4
					pixels[idx+0] = 0
					pixels[idx+1] = 0
					pixels[idx+2] = 0
					pixels[idx+3] = 255
				}
			}
		}
	}
	return pixels, dim, dim
}

func TestEncodeHelloWorldScenario(t *testing.T) {
	q, err := Encode([]byte("HELLO WORLD"), LevelM)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if q.Version != 1 {
		t.Fatalf("version = %d, want 1", q.Version)
	}
	if q.Size != 21 {
		t.Fatalf("size = %d, want 21", q.Size)
	}
	if !q.Modules[q.Size-8][8] {
		t.Fatalf("dark module not set at (%d,8)", q.Size-8)
	}
	// the three finder patterns occupy rows/cols 0-6 at the canonical corners
	for _, corner := range [][2]int{{0, 0}, {0, q.Size - 7}, {q.Size - 7, 0}} {
		if !q.Modules[corner[0]][corner[1]] {
			t.Fatalf("finder corner (%d,%d) not dark", corner[0], corner[1])
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("a"),
		[]byte("HELLO WORLD"),
		bytes.Repeat([]byte{0xFF}, 100),
		bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 10),
	}
	levels := []int{LevelL, LevelM, LevelQ, LevelH}

	for _, level := range levels {
		for _, payload := range payloads {
			q, err := Encode(payload, level)
			if err != nil {
				t.Fatalf("Encode(len=%d, level=%d): %v", len(payload), level, err)
			}
			pixels, w, h := renderRGBA(q, 4, 4)
			got, err := Decode(pixels, w, h)
			if err != nil {
				t.Fatalf("Decode(len=%d, level=%d): %v", len(payload), level, err)
			}
			if !bytes.Equal(got, payload) {
				t.Fatalf("round trip mismatch at level=%d len=%d: got %q, want %q", level, len(payload), got, payload)
			}
		}
	}
}

func TestEncodeAllFFBytesScenario(t *testing.T) {
	payload := bytes.Repeat([]byte{0xFF}, 100)
	q, err := Encode(payload, LevelL)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if q.Version != 5 {
		t.Fatalf("version = %d, want 5", q.Version)
	}
	pixels, w, h := renderRGBA(q, 4, 4)
	got, err := Decode(pixels, w, h)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("decoded payload mismatch")
	}
}

// renderRGBAShifted is renderRGBA with the symbol's top-left corner nudged
// by (offX, offY) device pixels within a canvas padded large enough to
// absorb the shift, simulating a capture that isn't pixel-aligned to the
// module grid.
func renderRGBAShifted(q *QRCode, scale, margin, offX, offY int) (pixels []byte, width, height int) {
	dim := (q.Size+2*margin)*scale + 2*scale
	pixels = make([]byte, dim*dim*4)
	for i := 0; i < dim*dim; i++ {
		pixels[i*4+0] = 255
		pixels[i*4+1] = 255
		pixels[i*4+2] = 255
		pixels[i*4+3] = 255
	}
	base := margin*scale + scale
	for r := 0; r < q.Size; r++ {
		for c := 0; c < q.Size; c++ {
			if !q.Modules[r][c] {
				continue
			}
			x0 := base + c*scale + offX
			y0 := base + r*scale + offY
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					idx := ((y0+dy)*dim + (x0 + dx)) * 4
					pixels[idx+0] = 0
					pixels[idx+1] = 0
					pixels[idx+2] = 0
					pixels[idx+3] = 255
				}
			}
		}
	}
	return pixels, dim, dim
}

func TestEncodeVersion7RoundTripWithPixelShiftTolerance(t *testing.T) {
	payload := bytes.Repeat([]byte("version seven payload "), 6)
	q, err := Encode(payload, LevelM)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if q.Version < 7 {
		t.Fatalf("version = %d, want >= 7 for this payload length", q.Version)
	}

	for _, shift := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {-1, 1}} {
		pixels, w, h := renderRGBAShifted(q, 4, 4, shift[0], shift[1])
		got, err := Decode(pixels, w, h)
		if err != nil {
			t.Fatalf("Decode at shift %v: %v", shift, err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("decoded payload mismatch at shift %v", shift)
		}
	}
}

func TestPayloadTooLargeError(t *testing.T) {
	huge := bytes.Repeat([]byte{0x41}, 4000)
	_, err := Encode(huge, LevelH)
	if err != ErrPayloadTooLarge {
		t.Fatalf("Encode(huge, LevelH) error = %v, want ErrPayloadTooLarge", err)
	}
}

func TestDecodeMalformedFrameOnBlankImage(t *testing.T) {
	pixels := make([]byte, 100*100*4)
	for i := 0; i < len(pixels); i++ {
		pixels[i] = 255
	}
	_, err := Decode(pixels, 100, 100)
	if err != ErrMalformedFrame {
		t.Fatalf("Decode(blank image) error = %v, want ErrMalformedFrame", err)
	}
}
