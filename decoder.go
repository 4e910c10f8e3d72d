package qrcode

// Decode locates and reads a single QR symbol in an RGBA pixel buffer
// (width*height*4 bytes, row-major). It never panics: any geometry or
// format failure comes back as ErrMalformedFrame, and a segment mode this
// decoder doesn't implement comes back as ErrUnsupportedMode. Decoding does
// not attempt Reed-Solomon error correction; it trusts the modules it reads
// and only discards the EC codewords.
func Decode(pixels []byte, width, height int) ([]byte, error) {
	gray := toGray(pixels, width, height)
	bits := binarize(gray, width, height)

	candidates := findFinderPatterns(bits, width, height)
	if len(candidates) < 3 {
		return nil, ErrMalformedFrame
	}
	tl, tr, bl, ok := orderFinders(candidates[0], candidates[1], candidates[2])
	if !ok {
		return nil, ErrMalformedFrame
	}

	version := estimateVersion(tl, tr)

	var modules [][]bool
	var size int
	for attempt := 0; attempt < 2; attempt++ {
		size = version*4 + 17
		exact := float64(size - 7)
		if exact <= 0 {
			return nil, ErrMalformedFrame
		}
		dR := point{X: (tr.center.X - tl.center.X) / exact, Y: (tr.center.Y - tl.center.Y) / exact}
		dD := point{X: (bl.center.X - tl.center.X) / exact, Y: (bl.center.Y - tl.center.Y) / exact}

		var sampled bool
		modules, sampled = sampleGrid(bits, width, height, size, tl.center, dR, dD)
		if !sampled {
			return nil, ErrMalformedFrame
		}

		if version < 7 || attempt == 1 {
			break
		}
		embedded := decodeVersion(readVersionBits(modules, size))
		if embedded < 1 || embedded > 40 || embedded == version {
			break
		}
		version = embedded
	}

	formatRaw := readFormatBits(modules, size)
	level, mask, ok := decodeFormat(formatRaw)
	if !ok {
		return nil, ErrMalformedFrame
	}

	q := newBlankSymbol(version)
	q.Level = level
	q.drawFunctionPatterns()
	q.Modules = modules
	q.MaskIndex = mask
	q.applyMask(mask)

	totalBits := totalCodewords(version) * 8
	raw := q.extractCodewords(totalBits)
	plan := newBlockPlan(version, level)
	dataCodewords := deinterleave(raw, plan)

	return decodeSegments(dataCodewords, version)
}
