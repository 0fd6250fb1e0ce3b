package utf8

// CodepointLen returns the number of bytes AppendCodepoint writes for cp.
func CodepointLen(cp rune) int {
	switch {
	case cp < 0:
		return 3
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	case cp <= MaxCodepoint:
		return 4
	default:
		return 3
	}
}

// AppendCodepoint appends the UTF-8 encoding of cp to dst and returns the
// extended buffer. Surrogates are encoded like any other three-byte value so
// that everything ValidReason accepts round-trips; values outside
// 0..MaxCodepoint encode RuneError.
func AppendCodepoint(dst []byte, cp rune) []byte {
	if cp < 0 || cp > MaxCodepoint {
		cp = RuneError
	}
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp&0x3F))
	case cp < 0x10000:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte((cp>>6)&0x3F),
			0x80|byte(cp&0x3F))
	default:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte((cp>>12)&0x3F),
			0x80|byte((cp>>6)&0x3F),
			0x80|byte(cp&0x3F))
	}
}
