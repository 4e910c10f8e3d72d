package qrcode

// toGray converts an 8-bit RGBA pixel buffer to single-channel luma using
// the standard Rec. 601 weights.
func toGray(pixels []byte, width, height int) []byte {
	gray := make([]byte, width*height)
	for i := 0; i < width*height; i++ {
		r := float64(pixels[i*4+0])
		g := float64(pixels[i*4+1])
		b := float64(pixels[i*4+2])
		gray[i] = byte(0.299*r + 0.587*g + 0.114*b)
	}
	return gray
}

// binarize produces a dark/light bitmap from grayscale pixels using
// local-mean adaptive thresholding: each pixel is compared against the
// average of a block around it, biased down by a constant offset so flat
// bright regions don't get misclassified as half-dark. Falls back to a
// flat 128 threshold when the image is too small to block-average
// meaningfully.
func binarize(gray []byte, width, height int) []bool {
	out := make([]bool, width*height)

	blockSize := minInt(width, height) / 8
	if blockSize < 3 {
		for i := range gray {
			out[i] = gray[i] < 128
		}
		return out
	}
	if blockSize%2 == 0 {
		blockSize++
	}
	half := blockSize / 2
	const offsetC = 7

	ii := newIntegralImage(gray, width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x0, y0, x1, y1 := x-half, y-half, x+half+1, y+half+1
			area := int64(clampInt(x1, 0, width)-clampInt(x0, 0, width)) *
				int64(clampInt(y1, 0, height)-clampInt(y0, 0, height))
			if area == 0 {
				area = 1
			}
			mean := ii.rectSum(x0, y0, x1, y1) / area
			out[y*width+x] = int64(gray[y*width+x]) < mean-offsetC
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
