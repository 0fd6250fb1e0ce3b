package utf8

import "strconv"

// Explanation names the grammar rule a byte sequence broke.
type Explanation string

const (
	ExplanationInvalidInitialByte Explanation = "Invalid initial byte seen"
	ExplanationTruncated          Explanation = "Expected continuation byte, saw end of string"
	ExplanationNotContinuation    Explanation = "Expected continuation byte, saw something else"
	ExplanationOverlong           Explanation = "Overlong encoding seen"
	ExplanationBeyondUnicode      Explanation = "Non-Unicode character encoded (beyond U+10FFFF)"
)

// Reason describes the first violation found by ValidReason.
type Reason struct {
	Explanation Explanation
	Position    int // byte offset from the start of the input
}

// String implements fmt.Stringer.
func (r Reason) String() string {
	if r.Explanation == "" {
		return "valid"
	}
	return string(r.Explanation) + " at byte " + strconv.Itoa(r.Position)
}
