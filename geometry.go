package qrcode

import "math"

// point is a location in image pixel space (sub-pixel precision).
type point struct {
	X, Y float64
}

func dist(a, b point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// crossSign returns the sign of the z-component of (b-o) x (c-o): positive
// when o->b->c turns counterclockwise in a Y-up frame, which in image
// coordinates (Y grows downward) is a clockwise turn on screen.
func crossSign(o, b, c point) float64 {
	return (b.X-o.X)*(c.Y-o.Y) - (b.Y-o.Y)*(c.X-o.X)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// integralImage computes a summed-area table over gray (row-major, w*h
// bytes) so that any rectangle's sum can be read in O(1); used for adaptive
// thresholding. The table has (w+1)*(h+1) entries.
type integralImage struct {
	w, h int
	sum  []int64
}

func newIntegralImage(gray []byte, w, h int) *integralImage {
	sum := make([]int64, (w+1)*(h+1))
	stride := w + 1
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(gray[y*w+x])
			sum[(y+1)*stride+(x+1)] = sum[y*stride+(x+1)] + rowSum
		}
	}
	return &integralImage{w: w, h: h, sum: sum}
}

// rectSum returns the sum of gray values over [x0,x1) x [y0,y1), clamped to
// the image bounds.
func (ii *integralImage) rectSum(x0, y0, x1, y1 int) int64 {
	x0 = clampInt(x0, 0, ii.w)
	x1 = clampInt(x1, 0, ii.w)
	y0 = clampInt(y0, 0, ii.h)
	y1 = clampInt(y1, 0, ii.h)
	stride := ii.w + 1
	return ii.sum[y1*stride+x1] - ii.sum[y0*stride+x1] - ii.sum[y1*stride+x0] + ii.sum[y0*stride+x0]
}
