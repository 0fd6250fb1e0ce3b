package memory

import (
	"math"

	"go.uber.org/zap"

	utf8scan "github.com/wippyai/utf8scan"
	"github.com/wippyai/utf8scan/errors"
	"github.com/wippyai/utf8scan/utf8"
)

// MaxStringSize is the largest guest string LiftString accepts (1 GB).
const MaxStringSize = 1 << 30

// Validate checks length bytes at ptr in place. The error is only set when
// the region cannot be read; a malformed string is reported through the
// returned reason and ok == false.
func Validate(mem utf8scan.Memory, ptr, length uint32) (utf8.Reason, bool, error) {
	if mem == nil {
		return utf8.Reason{}, false, errors.NilPointer(errors.PhaseDecode, nil, "memory")
	}
	if length == 0 {
		return utf8.Reason{}, true, nil
	}
	data, err := mem.Read(ptr, length)
	if err != nil {
		return utf8.Reason{}, false, err
	}
	var r utf8.Reason
	ok := utf8.ValidReason(data, &r)
	return r, ok, nil
}

// LiftString copies a validated guest string out of memory.
func LiftString(mem utf8scan.Memory, ptr, length uint32, path ...string) (string, error) {
	data, err := readString(mem, ptr, length, path)
	if err != nil || data == nil {
		return "", err
	}
	return string(data), nil
}

// LiftStringAt reads a (ptr, len) pair stored at addr and lifts the string it
// points to.
func LiftStringAt(mem utf8scan.Memory, addr uint32, path ...string) (string, error) {
	dataAddr, dataLen, err := ReadPair(mem, addr, path...)
	if err != nil {
		return "", err
	}
	return LiftString(mem, dataAddr, dataLen, path...)
}

// ReadPair reads the little-endian (ptr, len) pair stored at addr. The pair
// must fit below the 4 GiB address limit.
func ReadPair(mem utf8scan.Memory, addr uint32, path ...string) (ptr, length uint32, err error) {
	if mem == nil {
		return 0, 0, errors.NilPointer(errors.PhaseDecode, path, "memory")
	}
	if addr > math.MaxUint32-7 {
		return 0, 0, errors.OutOfBounds(errors.PhaseDecode, path, addr, 8, sizeOf(mem))
	}
	if ptr, err = mem.ReadU32(addr); err != nil {
		return 0, 0, err
	}
	if length, err = mem.ReadU32(addr + 4); err != nil {
		return 0, 0, err
	}
	return ptr, length, nil
}

// ReadRegion returns a view of length bytes at ptr without validating them.
// Lengths above MaxStringSize are rejected.
func ReadRegion(mem utf8scan.Memory, ptr, length uint32, path ...string) ([]byte, error) {
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseDecode, path, "memory")
	}
	if length > MaxStringSize {
		return nil, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Path(path...).
			Value(length).
			Detail("string size %d exceeds maximum %d", length, MaxStringSize).
			Build()
	}
	if length == 0 {
		return []byte{}, nil
	}
	return mem.Read(ptr, length)
}

// Codepoints validates a guest string and returns a cursor over it. The
// cursor reads guest memory directly and is only valid until the guest runs
// again.
func Codepoints(mem utf8scan.Memory, ptr, length uint32, path ...string) (utf8.Cursor[[]byte], error) {
	data, err := readString(mem, ptr, length, path)
	if err != nil {
		return utf8.Cursor[[]byte]{}, err
	}
	return utf8.NewCursor(data), nil
}

// readString returns a validated view of the string, nil for an empty one.
func readString(mem utf8scan.Memory, ptr, length uint32, path []string) ([]byte, error) {
	data, err := ReadRegion(mem, ptr, length, path...)
	if err != nil || len(data) == 0 {
		return nil, err
	}

	var r utf8.Reason
	if !utf8.ValidReason(data, &r) {
		Logger().Debug("rejected guest string",
			zap.Uint32("ptr", ptr),
			zap.Uint32("len", length),
			zap.Int("offset", r.Position),
			zap.String("reason", string(r.Explanation)))
		return nil, errors.InvalidUTF8(errors.PhaseDecode, path, r.Position, string(r.Explanation), utf8.Excerpt(data, r.Position))
	}
	return data, nil
}

func sizeOf(mem utf8scan.Memory) uint32 {
	if s, ok := mem.(utf8scan.MemorySizer); ok {
		return s.Size()
	}
	return 0
}
