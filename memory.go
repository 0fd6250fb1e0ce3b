package utf8scan

// Memory is read access to a WASM linear memory
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	ReadU8(offset uint32) (uint8, error)
	ReadU32(offset uint32) (uint32, error)
}

// MemorySizer provides the current size of WASM linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}
