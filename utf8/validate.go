package utf8

import (
	"github.com/wippyai/utf8scan/errors"
)

// previewRadius is the number of bytes kept on each side of a failure by Check.
const previewRadius = 8

// Valid reports whether s is entirely well-formed UTF-8.
func Valid[T Text](s T) bool {
	return ValidReason(s, nil)
}

// ValidReason reports whether s is entirely well-formed UTF-8. When it is not
// and reason is non-nil, the first violation is stored in *reason; *reason is
// left untouched on success.
func ValidReason[T Text](s T, reason *Reason) bool {
	end := len(s)
	for i := 0; i < end; {
		if s[i] < 0x80 {
			i++
			continue
		}
		_, n, r, ok := decode(s, i, end, true)
		if !ok {
			if reason != nil {
				*reason = r
			}
			return false
		}
		i += n
	}
	return true
}

// Check validates s and describes the first violation as an *errors.Error of
// kind KindInvalidUTF8. It returns nil for valid input.
func Check[T Text](s T) error {
	var r Reason
	if ValidReason(s, &r) {
		return nil
	}
	return errors.InvalidUTF8(errors.PhaseValidate, nil, r.Position, string(r.Explanation), Excerpt(s, r.Position))
}

// Excerpt returns a copy of the bytes around pos, at most 8 on each side,
// for use in diagnostics.
func Excerpt[T Text](s T, pos int) []byte {
	lo := max(pos-previewRadius, 0)
	hi := min(pos+previewRadius+1, len(s))
	out := make([]byte, 0, max(hi-lo, 0))
	for i := lo; i < hi; i++ {
		out = append(out, s[i])
	}
	return out
}
