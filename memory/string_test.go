package memory

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/utf8scan/errors"
	"github.com/wippyai/utf8scan/utf8"
)

func TestLiftString(t *testing.T) {
	text := "\x41\xe2\x89\xa2\xce\x91\x2e"
	mod := openData(t, 16, []byte(text))

	got, err := LiftString(mod.Memory, 16, uint32(len(text)))
	require.NoError(t, err)
	assert.Equal(t, text, got)

	got, err = LiftString(mod.Memory, 16, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLiftString_CopiesOutOfMemory(t *testing.T) {
	mem := sliceMemory("hello")
	got, err := LiftString(mem, 0, 5)
	require.NoError(t, err)

	mem[0] = 'j'
	assert.Equal(t, "hello", got)
}

func TestLiftString_InvalidUTF8(t *testing.T) {
	mod := openData(t, 100, []byte("ab\xf0\x90A\x80"))

	_, err := LiftString(mod.Memory, 100, 6, "args", "name")
	require.Error(t, err)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindInvalidUTF8, e.Kind)
	assert.Equal(t, errors.PhaseDecode, e.Phase)
	assert.Equal(t, []string{"args", "name"}, e.Path)
	// offsets are relative to the string, not to memory
	assert.Equal(t, 4, e.Offset)
	assert.Equal(t, string(utf8.ExplanationNotContinuation), e.Explanation)
	assert.Equal(t, "near 6162f0904180", e.Detail)
}

func TestLiftString_Errors(t *testing.T) {
	mem := sliceMemory("abc")

	t.Run("out of bounds", func(t *testing.T) {
		_, err := LiftString(mem, 2, 4)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})
	})

	t.Run("too large", func(t *testing.T) {
		_, err := LiftString(mem, 0, MaxStringSize+1)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOverflow})
	})

	t.Run("nil memory", func(t *testing.T) {
		_, err := LiftString(nil, 0, 1)
		assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindNilPointer})
	})
}

func TestLiftStringAt(t *testing.T) {
	text := "\xe6\x97\xa5\xe6\x9c\xac\xe8\xaa\x9e"
	data := make([]byte, 8, 8+len(text))
	binary.LittleEndian.PutUint32(data[0:], 40)
	binary.LittleEndian.PutUint32(data[4:], uint32(len(text)))
	data = append(data, text...)

	mod := openData(t, 32, data)

	got, err := LiftStringAt(mod.Memory, 32)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestLiftStringAt_Bounds(t *testing.T) {
	mem := sliceMemory(make([]byte, 16))

	_, err := LiftStringAt(mem, math.MaxUint32-3)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})

	_, err = LiftStringAt(mem, 12)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})

	// pair at 0 points at (0, 0)
	got, err := LiftStringAt(mem, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadPair(t *testing.T) {
	mem := sliceMemory(make([]byte, 16))
	binary.LittleEndian.PutUint32(mem[4:], 12)
	binary.LittleEndian.PutUint32(mem[8:], 3)

	ptr, length, err := ReadPair(mem, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), ptr)
	assert.Equal(t, uint32(3), length)

	// addr+4 would wrap to the start of memory
	_, _, err = ReadPair(mem, math.MaxUint32-3)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})

	_, _, err = ReadPair(nil, 0)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindNilPointer})
}

func TestReadRegion(t *testing.T) {
	mem := sliceMemory("ab\xff")

	// no validation happens here
	got, err := ReadRegion(mem, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("b\xff"), got)

	got, err = ReadRegion(mem, 100, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ReadRegion(mem, 0, MaxStringSize+1)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOverflow})

	_, err = ReadRegion(mem, 2, 2)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})
}

func TestValidate(t *testing.T) {
	mem := sliceMemory("foo\xc0\xa4bar")

	r, ok, err := Validate(mem, 0, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, utf8.Reason{}, r)

	r, ok, err = Validate(mem, 0, uint32(len(mem)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 4, r.Position)
	assert.Equal(t, utf8.ExplanationOverlong, r.Explanation)

	_, _, err = Validate(mem, 5, 10)
	assert.Error(t, err)

	_, ok, err = Validate(mem, 100, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCodepoints(t *testing.T) {
	mod := openData(t, 0, []byte("x\xce\x91y"))

	it, err := Codepoints(mod.Memory, 0, 4)
	require.NoError(t, err)

	var got []rune
	var offsets []int
	for off, cp := range it.All() {
		offsets = append(offsets, off)
		got = append(got, cp)
	}
	assert.Equal(t, []rune{'x', 0x0391, 'y'}, got)
	assert.Equal(t, []int{0, 1, 3}, offsets)

	empty, err := Codepoints(mod.Memory, 0, 0)
	require.NoError(t, err)
	assert.True(t, empty.Done())

	_, err = Codepoints(mod.Memory, 1, 1)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidUTF8})
}

func BenchmarkLiftString_Small(b *testing.B) {
	mem := make(sliceMemory, 4096)
	s := "hello \xce\x91"
	copy(mem[1024:], s)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = LiftString(mem, 1024, uint32(len(s)))
	}
}

func BenchmarkValidate_Large(b *testing.B) {
	mem := make(sliceMemory, 65536)
	for i := range mem {
		mem[i] = 'a' + byte(i%26)
	}

	b.SetBytes(int64(len(mem)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Validate(mem, 0, uint32(len(mem)))
	}
}
