package rapidb64

// decodeGeneric is the portable Base64 decoder. dst must hold the exact
// decoded length of src. It returns the number of bytes written; on error the
// contents of dst are unspecified.
//
// Invalid input is found per quartet: the four pre-shifted lookups are OR'ed
// and compared once against badChar, and only a failing quartet is scanned
// again to name the offending byte.
func decodeGeneric(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	if err := checkDecodeLen(len(src)); err != nil {
		return 0, err
	}

	// At most two pad characters, and only at the very end. A '=' anywhere
	// else is looked up like any other byte and rejected.
	body := src
	if body[len(body)-1] == padChar {
		body = body[:len(body)-1]
		if body[len(body)-1] == padChar {
			body = body[:len(body)-1]
		}
	}

	d0, d1, d2, d3 := &decodeShift[0], &decodeShift[1], &decodeShift[2], &decodeShift[3]

	full := len(body) / 4 * 4
	di := 0
	for si := 0; si < full; si += 4 {
		q := body[si : si+4 : si+4]
		v := d0[q[0]] | d1[q[1]] | d2[q[2]] | d3[q[3]]
		if v >= badChar {
			return di, invalidIn(src, si, 4)
		}
		_ = dst[di+2]
		dst[di] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		dst[di+2] = byte(v)
		di += 3
	}

	switch len(body) - full {
	case 2:
		v := d0[body[full]] | d1[body[full+1]]
		if v >= badChar {
			return di, invalidIn(src, full, 2)
		}
		dst[di] = byte(v >> 16)
		di++
	case 3:
		v := d0[body[full]] | d1[body[full+1]] | d2[body[full+2]]
		if v >= badChar {
			return di, invalidIn(src, full, 3)
		}
		_ = dst[di+1]
		dst[di] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		di += 2
	}

	return di, nil
}
