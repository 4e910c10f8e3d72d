package qrcode

import "sort"

// finderCandidate is a cluster of scanline hits that plausibly centers a
// finder pattern, along with the estimated module size at that location.
type finderCandidate struct {
	center     point
	moduleSize float64
	votes      int
}

const finderRatioTolerance = 0.5

// findFinderPatterns scans every row, then every column, of bits (row-major
// width*height booleans, true = dark) for runs matching the finder
// pattern's 1:1:3:1:1 dark/light ratio, clusters nearby hits, and confirms
// each cluster with a perpendicular scan before returning it.
func findFinderPatterns(bits []bool, width, height int) []finderCandidate {
	var hits []finderCandidate
	for y := 0; y < height; y++ {
		hits = append(hits, scanLine(bits, width, height, y, true)...)
	}
	for x := 0; x < width; x++ {
		hits = append(hits, scanLine(bits, width, height, x, false)...)
	}

	clusters := clusterHits(hits)

	var confirmed []finderCandidate
	for _, c := range clusters {
		if verifyVertical(bits, width, height, c) {
			confirmed = append(confirmed, c)
		}
	}
	return confirmed
}

// scanLine walks one row (horizontal=true, index=row) or column
// (horizontal=false, index=col), looking for 5 consecutive runs in the
// ratio 1:1:3:1:1 starting dark, and returns a candidate centered on the
// middle (widest) run for each match.
func scanLine(bits []bool, width, height, index int, horizontal bool) []finderCandidate {
	length := width
	at := func(i int) bool { return bits[index*width+i] }
	if !horizontal {
		length = height
		at = func(i int) bool { return bits[i*width+index] }
	}

	var runs []int
	runStart := 0
	cur := at(0)
	for i := 1; i <= length; i++ {
		v := i < length && at(i)
		if i == length || v != cur {
			runs = append(runs, i-runStart)
			runStart = i
			cur = v
		}
	}

	var out []finderCandidate
	// Runs alternate light/dark starting with at(0)'s color; the pattern is
	// dark-light-dark-dark-dark-light-dark so align to a dark run.
	startParity := 0
	if !at(0) {
		startParity = 1
	}
	for i := startParity; i+5 <= len(runs); i += 2 {
		r := runs[i : i+5]
		if matchesFinderRatio(r) {
			unit := float64(r[0]+r[1]+r[2]+r[3]+r[4]) / 7.0
			centerOffset := 0
			for _, v := range r[:2] {
				centerOffset += v
			}
			centerOffset += r[2] / 2
			pos := float64(runStartOf(runs, i)) + float64(centerOffset)
			var p point
			if horizontal {
				p = point{X: pos, Y: float64(index) + 0.5}
			} else {
				p = point{X: float64(index) + 0.5, Y: pos}
			}
			out = append(out, finderCandidate{center: p, moduleSize: unit, votes: 1})
		}
	}
	return out
}

func runStartOf(runs []int, idx int) int {
	total := 0
	for i := 0; i < idx; i++ {
		total += runs[i]
	}
	return total
}

func matchesFinderRatio(r []int) bool {
	total := 0
	for _, v := range r {
		total += v
	}
	if total < 7 {
		return false
	}
	unit := float64(total) / 7.0
	want := [5]float64{1, 1, 3, 1, 1}
	for i, w := range want {
		if !withinRatio(float64(r[i]), w*unit) {
			return false
		}
	}
	return true
}

func withinRatio(got, want float64) bool {
	if want == 0 {
		return false
	}
	lo := want * (1 - finderRatioTolerance)
	hi := want * (1 + finderRatioTolerance)
	return got >= lo && got <= hi
}

// clusterHits merges scanline hits within 3 module-widths of each other
// into a single weighted-average candidate.
func clusterHits(hits []finderCandidate) []finderCandidate {
	used := make([]bool, len(hits))
	var clusters []finderCandidate
	for i := range hits {
		if used[i] {
			continue
		}
		sumX, sumY, sumSize := 0.0, 0.0, 0.0
		n := 0
		for j := i; j < len(hits); j++ {
			if used[j] {
				continue
			}
			threshold := 3 * hits[i].moduleSize
			if dist(hits[i].center, hits[j].center) <= threshold {
				used[j] = true
				sumX += hits[j].center.X
				sumY += hits[j].center.Y
				sumSize += hits[j].moduleSize
				n++
			}
		}
		if n < 2 {
			continue // a single scanline hit is too weak to trust
		}
		clusters = append(clusters, finderCandidate{
			center:     point{X: sumX / float64(n), Y: sumY / float64(n)},
			moduleSize: sumSize / float64(n),
			votes:      n,
		})
	}
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].votes > clusters[j].votes })
	return clusters
}

// verifyVertical confirms a horizontal-scan hit by checking the same ratio
// holds in the perpendicular direction through the candidate's center.
func verifyVertical(bits []bool, width, height int, c finderCandidate) bool {
	cx, cy := int(c.center.X), int(c.center.Y)
	if cx < 0 || cx >= width || cy < 0 || cy >= height {
		return false
	}
	unit := c.moduleSize
	if unit <= 0 {
		return false
	}
	span := int(unit*7) + 2
	y0 := clampInt(cy-span, 0, height-1)
	y1 := clampInt(cy+span, 0, height-1)

	var runs []int
	cur := bits[y0*width+cx]
	runLen := 0
	for y := y0; y <= y1; y++ {
		v := bits[y*width+cx]
		if v == cur {
			runLen++
			continue
		}
		runs = append(runs, runLen)
		cur = v
		runLen = 1
	}
	runs = append(runs, runLen)
	if len(runs) < 5 {
		return false
	}
	// scan for any 5 consecutive runs matching the ratio
	for i := 0; i+5 <= len(runs); i++ {
		if matchesFinderRatio(runs[i : i+5]) {
			return true
		}
	}
	return false
}

// orderFinders sorts three confirmed finder centers into (topLeft,
// topRight, bottomLeft), using the fact that the topLeft-to-topRight and
// topLeft-to-bottomLeft vectors are perpendicular and the triple turns
// consistently around topLeft.
func orderFinders(a, b, c finderCandidate) (tl, tr, bl finderCandidate, ok bool) {
	pts := [3]finderCandidate{a, b, c}

	// The top-left corner is the vertex with the largest angle (closest to
	// 90 degrees) between its two edges, which is the vertex opposite the
	// longest of the three edges (the hypotenuse).
	d := [3]float64{
		dist(pts[1].center, pts[2].center), // opposite pts[0]
		dist(pts[0].center, pts[2].center), // opposite pts[1]
		dist(pts[0].center, pts[1].center), // opposite pts[2]
	}
	longest := 0
	for i := 1; i < 3; i++ {
		if d[i] > d[longest] {
			longest = i
		}
	}
	topLeftIdx := longest
	other1 := (longest + 1) % 3
	other2 := (longest + 2) % 3

	o := pts[topLeftIdx].center
	p1 := pts[other1].center
	p2 := pts[other2].center

	// o->topRight->bottomLeft turns clockwise on screen (image Y grows
	// downward), which gives a positive crossSign; swap if it is negative.
	if crossSign(o, p1, p2) < 0 {
		p1, p2 = p2, p1
	}

	tl = pts[topLeftIdx]
	tr = finderCandidate{center: p1, moduleSize: pts[topLeftIdx].moduleSize}
	bl = finderCandidate{center: p2, moduleSize: pts[topLeftIdx].moduleSize}
	return tl, tr, bl, true
}
