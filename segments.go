package qrcode

import "fmt"

// decodeSegments walks a concatenated-codeword bit stream and decodes each
// mode segment in turn until it hits the terminator or runs out of bits,
// per ISO/IEC 18004 7.4.
func decodeSegments(data []byte, version int) ([]byte, error) {
	r := newBitReader(data)
	var out []byte

	for r.Remaining() >= 4 {
		mode, ok := r.Read(4)
		if !ok || mode == ModeTerminator {
			break
		}

		countBits := charCountBits(mode, version)
		count, ok := r.Read(countBits)
		if !ok {
			return nil, ErrMalformedFrame
		}

		var decoded []byte
		var err error
		switch mode {
		case ModeNumeric:
			decoded, err = decodeNumeric(r, count)
		case ModeAlphanumeric:
			decoded, err = decodeAlphanumeric(r, count)
		case ModeByte:
			decoded, err = decodeByte(r, count)
		default:
			return nil, ErrUnsupportedMode
		}
		if err != nil {
			return nil, err
		}
		out = append(out, decoded...)
	}
	return out, nil
}

// decodeNumeric unpacks count digits from groups of 3 digits per 10 bits,
// with a 2-digit/7-bit or 1-digit/4-bit remainder group, per Table 2.
func decodeNumeric(r *bitReader, count int) ([]byte, error) {
	var out []byte
	remaining := count
	for remaining >= 3 {
		v, ok := r.Read(10)
		if !ok {
			return nil, ErrMalformedFrame
		}
		out = append(out, []byte(fmt.Sprintf("%03d", v))...)
		remaining -= 3
	}
	switch remaining {
	case 2:
		v, ok := r.Read(7)
		if !ok {
			return nil, ErrMalformedFrame
		}
		out = append(out, []byte(fmt.Sprintf("%02d", v))...)
	case 1:
		v, ok := r.Read(4)
		if !ok {
			return nil, ErrMalformedFrame
		}
		out = append(out, []byte(fmt.Sprintf("%01d", v))...)
	}
	return out, nil
}

// decodeAlphanumeric unpacks count characters from pairs encoded as
// c1*45+c2 in 11 bits, with a single trailing character in 6 bits.
func decodeAlphanumeric(r *bitReader, count int) ([]byte, error) {
	var out []byte
	remaining := count
	for remaining >= 2 {
		v, ok := r.Read(11)
		if !ok {
			return nil, ErrMalformedFrame
		}
		c1, c2 := v/45, v%45
		if c1 >= len(alphanumericAlphabet) || c2 >= len(alphanumericAlphabet) {
			return nil, ErrMalformedFrame
		}
		out = append(out, alphanumericAlphabet[c1], alphanumericAlphabet[c2])
		remaining -= 2
	}
	if remaining == 1 {
		v, ok := r.Read(6)
		if !ok || v >= len(alphanumericAlphabet) {
			return nil, ErrMalformedFrame
		}
		out = append(out, alphanumericAlphabet[v])
	}
	return out, nil
}

// decodeByte reads count raw bytes, 8 bits apiece.
func decodeByte(r *bitReader, count int) ([]byte, error) {
	if r.Remaining() < count*8 {
		return nil, ErrMalformedFrame
	}
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		v, _ := r.Read(8)
		out[i] = byte(v)
	}
	return out, nil
}
