package utf8

// Text is any read-only byte sequence a validator or cursor can walk.
type Text interface {
	~string | ~[]byte
}

const (
	// MaxCodepoint is the largest Unicode scalar value.
	MaxCodepoint = '\U0010FFFF'
	// RuneError is produced by a Cursor for bytes that do not decode.
	RuneError = '\uFFFD'
	// EndOfText is returned by Cursor.Value once the cursor is exhausted.
	EndOfText rune = -1
	// UTFMax is the maximum number of bytes of a UTF-8 sequence.
	UTFMax = 4
)

// minCodepoint is indexed by sequence length.
var minCodepoint = [UTFMax + 1]rune{0, 0, 0x80, 0x800, 0x10000}

// payloadMask keeps the value bits of a leading byte, indexed by sequence length.
var payloadMask = [UTFMax + 1]byte{0, 0x7F, 0x1F, 0x0F, 0x07}

// sequenceLen classifies a leading byte. Zero means b cannot start a sequence.
func sequenceLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	default:
		return 0
	}
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// decode reads the sequence starting at s[i], never looking at or past end.
//
// n is the number of bytes consumed. On failure n is the count of bytes that
// were accepted before the violation, never less than 1, so callers that skip
// n bytes always make progress. The overlong and range checks only run when
// strict is set.
func decode[T Text](s T, i, end int, strict bool) (cp rune, n int, r Reason, ok bool) {
	b := s[i]
	size := sequenceLen(b)
	if size == 0 {
		return RuneError, 1, Reason{Position: i, Explanation: ExplanationInvalidInitialByte}, false
	}

	cp = rune(b & payloadMask[size])
	for n = 1; n < size; n++ {
		if i+n >= end {
			return RuneError, n, Reason{Position: i + n, Explanation: ExplanationTruncated}, false
		}
		c := s[i+n]
		if !isContinuation(c) {
			return RuneError, n, Reason{Position: i + n, Explanation: ExplanationNotContinuation}, false
		}
		cp = cp<<6 | rune(c&0x3F)
	}

	if strict {
		last := i + size - 1
		if cp < minCodepoint[size] {
			return RuneError, size, Reason{Position: last, Explanation: ExplanationOverlong}, false
		}
		if cp > MaxCodepoint {
			return RuneError, size, Reason{Position: last, Explanation: ExplanationBeyondUnicode}, false
		}
	}

	return cp, size, Reason{}, true
}
