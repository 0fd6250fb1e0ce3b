// Package utf8 validates UTF-8 byte sequences and decodes them one codepoint
// at a time.
//
// The package has two entry points sharing a single decoding grammar:
//
//	Valid / ValidReason / Check   - strict validation with failure diagnostics
//	Cursor                        - lazy codepoint decoding over a byte range
//
// # Grammar
//
//	Leading byte    Length   Minimum value
//	──────────────────────────────────────
//	0x00-0x7F       1        0x000000
//	0xC0-0xDF       2        0x000080
//	0xE0-0xEF       3        0x000800
//	0xF0-0xF7       4        0x010000
//	0x80-0xBF       -        (continuation byte, invalid as leading byte)
//	0xF8-0xFF       -        (invalid)
//
// Each continuation byte is in 0x80-0xBF and contributes its low 6 bits.
// A decoded value below the minimum for its length is an overlong encoding;
// a value above U+10FFFF is not Unicode. Surrogate code points
// (U+D800-U+DFFF) are not rejected.
//
// # Failure Offsets
//
// Structural failures report the offending byte itself:
//
//	"\xff"          Invalid initial byte seen                        at 0
//	"\xc2"          Expected continuation byte, saw end of string    at 1
//	"\xe0\xc2\xa2"  Expected continuation byte, saw something else   at 1
//
// Semantic failures report the last byte of the decoded sequence:
//
//	"\xc0\xa2foo"        Overlong encoding seen                            at 1
//	"\xf5\xa2\xa2\xa2"   Non-Unicode character encoded (beyond U+10FFFF)   at 3
//
// # Inputs
//
// Every function is generic over Text, so strings and byte slices (and any
// named type built on them) are accepted without copying. NUL bytes are
// ordinary data.
//
// # Cursors
//
// A Cursor only produces meaningful codepoints for input that passed
// validation. On malformed input it yields RuneError and keeps moving
// forward, so a walk always terminates and never reads outside its range.
//
//	c := utf8.NewCursor(s)
//	for !c.Done() {
//	    fmt.Printf("%U\n", c.Value())
//	    c.Next()
//	}
//
// # Thread Safety
//
// All functions are pure. A Cursor must not be shared between goroutines,
// but any number of cursors may walk the same input concurrently as long as
// the input is not mutated.
package utf8
