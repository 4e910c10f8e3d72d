package qrcode

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// WriteOptions controls how a QRCode rasterizes to PNG. QuietZone is in
// modules, not pixels; DebugFunctionPatterns renders finder/timing/
// alignment/format/version modules in a third palette entry so the function
// pattern layout can be inspected visually instead of just trusting the
// bitstream.
type WriteOptions struct {
	Scale                 int
	QuietZone             int
	DebugFunctionPatterns bool
}

// palette indices.
const (
	pixelLight = 0
	pixelDark  = 1
	pixelFunc  = 2
)

// WritePNG writes the QR code to w as a PNG with a 4-module quiet zone and
// one pixel per module times scale.
func (qr *QRCode) WritePNG(w io.Writer, scale int) error {
	return qr.WritePNGWithOptions(w, WriteOptions{Scale: scale, QuietZone: 4})
}

// WritePNGWithOptions is WritePNG with full control over quiet zone width
// and whether function patterns render in a distinct color.
func (qr *QRCode) WritePNGWithOptions(w io.Writer, opts WriteOptions) error {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	border := opts.QuietZone
	if border < 0 {
		border = 4
	}

	dim := (qr.Size + 2*border) * scale
	pal := color.Palette{color.White, color.Black, color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}}
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), pal)

	for i := range img.Pix {
		img.Pix[i] = pixelLight
	}

	fill := func(startX, startY, size int, idx byte) {
		for y := 0; y < size; y++ {
			rowStart := (startY+y)*img.Stride + startX
			row := img.Pix[rowStart : rowStart+size]
			for x := range row {
				row[x] = idx
			}
		}
	}

	for r := 0; r < qr.Size; r++ {
		for c := 0; c < qr.Size; c++ {
			idx := byte(pixelLight)
			switch {
			case qr.Modules[r][c] && opts.DebugFunctionPatterns && qr.Reserved(r, c):
				idx = pixelFunc
			case qr.Modules[r][c]:
				idx = pixelDark
			default:
				continue
			}
			startX := (c + border) * scale
			startY := (r + border) * scale
			fill(startX, startY, scale, idx)
		}
	}

	return png.Encode(w, img)
}
