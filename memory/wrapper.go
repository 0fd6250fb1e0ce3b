package memory

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/utf8scan/errors"
)

// WrapMemory wraps a wazero api.Memory. It returns nil for a nil memory.
func WrapMemory(mem api.Memory) *Wrapper {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

// Wrapper adapts wazero api.Memory to the utf8scan.Memory and
// utf8scan.MemorySizer interfaces.
type Wrapper struct {
	Mem api.Memory
}

// Size returns the current size of memory in bytes.
func (m *Wrapper) Size() uint32 {
	if m == nil || m.Mem == nil {
		return 0
	}
	return m.Mem.Size()
}

// Read returns a view of length bytes at offset. The view aliases guest
// memory and must not be retained across guest calls.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	if m == nil || m.Mem == nil {
		return nil, errors.NilPointer(errors.PhaseDecode, nil, "memory")
	}
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, offset, length, m.Mem.Size())
	}
	return data, nil
}

// ReadU8 reads an unsigned 8-bit value.
func (m *Wrapper) ReadU8(offset uint32) (uint8, error) {
	if m == nil || m.Mem == nil {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, "memory")
	}
	v, ok := m.Mem.ReadByte(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseDecode, nil, offset, 1, m.Mem.Size())
	}
	return v, nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Wrapper) ReadU32(offset uint32) (uint32, error) {
	if m == nil || m.Mem == nil {
		return 0, errors.NilPointer(errors.PhaseDecode, nil, "memory")
	}
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseDecode, nil, offset, 4, m.Mem.Size())
	}
	return v, nil
}
