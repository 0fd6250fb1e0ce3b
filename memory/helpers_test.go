package memory

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/wippyai/utf8scan/errors"
)

// memoryWASM is a minimal WASM module with 1 page of memory exported as "memory"
var memoryWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

// dataWASM returns memoryWASM with an active data segment placing data at offset.
func dataWASM(offset uint32, data []byte) []byte {
	var seg []byte
	seg = append(seg, 0x01)       // one segment
	seg = append(seg, 0x00, 0x41) // active, memory 0, i32.const
	seg = appendSLEB(seg, int64(offset))
	seg = append(seg, 0x0b) // end
	seg = appendULEB(seg, uint64(len(data)))
	seg = append(seg, data...)

	out := append([]byte{}, memoryWASM...)
	out = append(out, 0x0b) // data section
	out = appendULEB(out, uint64(len(seg)))
	return append(out, seg...)
}

func appendULEB(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

func appendSLEB(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// openData instantiates a module holding data at offset.
func openData(t *testing.T, offset uint32, data []byte) *Module {
	t.Helper()
	ctx := context.Background()
	mod, err := Open(ctx, dataWASM(offset, data), "memory")
	if err != nil {
		t.Fatalf("failed to open module: %v", err)
	}
	t.Cleanup(func() { mod.Close(ctx) })
	return mod
}

// sliceMemory is an in-process Memory backed by a byte slice.
type sliceMemory []byte

func (m sliceMemory) Size() uint32 { return uint32(len(m)) }

func (m sliceMemory) Read(offset, length uint32) ([]byte, error) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(m)) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, offset, length, m.Size())
	}
	return m[offset:end], nil
}

func (m sliceMemory) ReadU8(offset uint32) (uint8, error) {
	b, err := m.Read(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m sliceMemory) ReadU32(offset uint32) (uint32, error) {
	b, err := m.Read(offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
