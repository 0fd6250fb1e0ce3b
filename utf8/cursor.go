package utf8

import "iter"

// Cursor decodes a byte range one codepoint at a time.
//
// A Cursor borrows its input: the bytes must not change while it is in use.
// Copying a Cursor copies its position, so a copy can be used to look ahead
// or to restart from a saved point. The zero value is exhausted.
type Cursor[T Text] struct {
	src   T
	pos   int
	end   int
	value rune
	width int
}

// NewCursor returns a cursor over all of s.
func NewCursor[T Text](s T) Cursor[T] {
	return NewCursorRange(s, 0, len(s))
}

// NewCursorRange returns a cursor over s[begin:end]. Offsets reported by the
// cursor stay relative to the start of s. It panics if the range is not
// 0 <= begin <= end <= len(s), matching Go slice expressions.
func NewCursorRange[T Text](s T, begin, end int) Cursor[T] {
	if begin < 0 || begin > end || end > len(s) {
		panic("utf8: cursor range out of bounds")
	}
	c := Cursor[T]{src: s, pos: begin, end: end}
	c.load()
	return c
}

// Done reports whether the cursor has consumed its whole range.
func (c *Cursor[T]) Done() bool {
	return c.pos >= c.end
}

// Value returns the codepoint starting at the current offset, or EndOfText
// when the cursor is exhausted.
func (c *Cursor[T]) Value() rune {
	if c.Done() {
		return EndOfText
	}
	return c.value
}

// Offset returns the byte offset of the current codepoint.
func (c *Cursor[T]) Offset() int {
	return c.pos
}

// Width returns the number of bytes of the current codepoint, 0 when exhausted.
func (c *Cursor[T]) Width() int {
	return c.width
}

// Next moves past the current codepoint. It does nothing once exhausted.
func (c *Cursor[T]) Next() {
	if c.Done() {
		return
	}
	c.pos += c.width
	c.load()
}

// Advance calls Next n times, stopping early when the cursor is exhausted.
func (c *Cursor[T]) Advance(n int) {
	for ; n > 0 && !c.Done(); n-- {
		c.Next()
	}
}

// All returns the remaining (offset, codepoint) pairs. Ranging over it does
// not move c, so it can be ranged over more than once.
func (c *Cursor[T]) All() iter.Seq2[int, rune] {
	start := *c
	return func(yield func(int, rune) bool) {
		for it := start; !it.Done(); it.Next() {
			if !yield(it.pos, it.value) {
				return
			}
		}
	}
}

func (c *Cursor[T]) load() {
	if c.pos >= c.end {
		c.value, c.width = EndOfText, 0
		return
	}
	if b := c.src[c.pos]; b < 0x80 {
		c.value, c.width = rune(b), 1
		return
	}
	cp, n, _, _ := decode(c.src, c.pos, c.end, false)
	c.value, c.width = cp, n
}

// Codepoints returns the codepoints of s in order.
func Codepoints[T Text](s T) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := NewCursor(s); !c.Done(); c.Next() {
			if !yield(c.value) {
				return
			}
		}
	}
}

// Count returns the number of codepoints a Cursor over s yields. For valid
// input this is the number of UTF-8 sequences in s.
func Count[T Text](s T) int {
	n := 0
	for c := NewCursor(s); !c.Done(); c.Next() {
		n++
	}
	return n
}
