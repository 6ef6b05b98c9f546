package forth

import (
	"encoding/binary"
	"math"
)

// Addr is a non-negative byte offset into the DataSpace. The value 0 is
// reserved: an instruction pointer of 0 means "inner interpreter idle"
// (spec.md §3).
type Addr uint32

// Reserved low offsets, laid out at VM construction before any user code is
// compiled (spec.md §3 "a system-variables region exists at a fixed low
// offset").
const (
	// haltCellOffset holds the word id of the halt primitive, so that a
	// stray fetch at address 0 (which the inner loop's 0<ip guard should
	// always prevent) decodes to something harmless rather than garbage.
	haltCellOffset Addr = 0
	// baseOffset holds the current numeric base (2..36, default 10), stored
	// as a 32-bit cell, the same width every compiled, non-float cell uses
	// (spec.md §3/§4.2).
	baseOffset Addr = 4
	// sysVarsEnd is where user/primitive data-space content begins.
	sysVarsEnd Addr = 8
)

// DataSpace is the contiguous byte arena used both as compiled threaded
// code and as variable storage (spec.md §3/§4.2). It is grounded on
// gothird's memCore/internal/mem.Ints accessor naming (here/allot/compile_*
// /put_*/get_*/truncate) but implemented as a single flat, monotonically
// growing byte slice rather than gothird's paged []int model: this core
// never needs sparse allocation, since the only shrink path is an explicit
// truncate back to an earlier snapshot.
type DataSpace struct {
	bytes []byte
	limit uint32 // 0 = unlimited
}

// NewDataSpace creates an empty DataSpace, optionally capped at limit bytes
// (0 means unlimited). Allot and the Put* methods enforce the cap; the
// Compile* appenders do not check it.
func NewDataSpace(limit uint32) *DataSpace {
	return &DataSpace{limit: limit}
}

// Here returns the current end-of-data-space address; the next compile_*
// call will land here.
func (ds *DataSpace) Here() Addr { return Addr(len(ds.bytes)) }

// Base returns the current numeric base from the system-variables block.
func (ds *DataSpace) Base() int32 { return ds.GetI32(baseOffset) }

// SetBase stores the numeric base; callers are responsible for keeping it
// within [2, 36].
func (ds *DataSpace) SetBase(base int32) { _ = ds.PutI32(baseOffset, base) }

func (ds *DataSpace) grow(end uint32) error {
	if ds.limit != 0 && end > ds.limit {
		return errf(ErrInvalidMemoryAddress, "data space limit %v exceeded (need %v)", ds.limit, end)
	}
	if need := int(end) - len(ds.bytes); need > 0 {
		ds.bytes = append(ds.bytes, make([]byte, need)...)
	}
	return nil
}

// Allot grows (n > 0) or shrinks (n < 0) Here by n bytes. Shrinking cannot
// go below 0.
func (ds *DataSpace) Allot(n int) error {
	if n == 0 {
		return nil
	}
	if n > 0 {
		return ds.grow(uint32(len(ds.bytes)) + uint32(n))
	}
	newLen := len(ds.bytes) + n
	if newLen < 0 {
		newLen = 0
	}
	ds.bytes = ds.bytes[:newLen]
	return nil
}

// Truncate shrinks Here back to offset, discarding everything compiled
// after it. It is the mechanism MARKER uses to unwind the data space.
func (ds *DataSpace) Truncate(offset Addr) {
	if int(offset) < len(ds.bytes) {
		ds.bytes = ds.bytes[:offset]
	}
}

func (ds *DataSpace) checkRange(offset Addr, size int) error {
	if int(offset)+size > len(ds.bytes) {
		return errf(ErrInvalidMemoryAddress, "@%v+%v exceeds here=%v", offset, size, len(ds.bytes))
	}
	return nil
}

// GetU8 reads a single byte at offset; out-of-range reads return 0, per
// spec.md §4.2 ("out-of-range addresses raise InvalidMemoryAddress at the
// inner-loop check, not per access").
func (ds *DataSpace) GetU8(offset Addr) uint8 {
	if err := ds.checkRange(offset, 1); err != nil {
		return 0
	}
	return ds.bytes[offset]
}

// PutU8 stores a single byte at offset, growing the arena if necessary.
func (ds *DataSpace) PutU8(offset Addr, v uint8) error {
	if err := ds.grow(uint32(offset) + 1); err != nil {
		return err
	}
	ds.bytes[offset] = v
	return nil
}

// CompileU8 appends a byte at Here and advances Here by 1.
func (ds *DataSpace) CompileU8(v uint8) Addr {
	at := ds.Here()
	ds.bytes = append(ds.bytes, v)
	return at
}

// GetI32 reads a native-endian 32-bit signed integer at offset.
func (ds *DataSpace) GetI32(offset Addr) int32 {
	return int32(ds.GetU32(offset))
}

// GetU32 reads a native-endian 32-bit unsigned integer at offset.
func (ds *DataSpace) GetU32(offset Addr) uint32 {
	if err := ds.checkRange(offset, 4); err != nil {
		return 0
	}
	return binary.NativeEndian.Uint32(ds.bytes[offset : offset+4])
}

// PutI32 stores a native-endian 32-bit signed integer at offset.
func (ds *DataSpace) PutI32(offset Addr, v int32) error { return ds.PutU32(offset, uint32(v)) }

// PutU32 stores a native-endian 32-bit unsigned integer at offset.
func (ds *DataSpace) PutU32(offset Addr, v uint32) error {
	if err := ds.grow(uint32(offset) + 4); err != nil {
		return err
	}
	binary.NativeEndian.PutUint32(ds.bytes[offset:offset+4], v)
	return nil
}

// CompileI32 appends a 32-bit signed integer at Here and advances Here by
// 4, returning the address it was written at.
func (ds *DataSpace) CompileI32(v int32) Addr { return ds.CompileU32(uint32(v)) }

// CompileU32 appends a 32-bit unsigned integer at Here and advances Here by
// 4, returning the address it was written at.
func (ds *DataSpace) CompileU32(v uint32) Addr {
	at := ds.Here()
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], v)
	ds.bytes = append(ds.bytes, buf[:]...)
	return at
}

// GetF64 reads a native-endian IEEE-754 double at offset.
func (ds *DataSpace) GetF64(offset Addr) float64 {
	if err := ds.checkRange(offset, 8); err != nil {
		return 0
	}
	bits := binary.NativeEndian.Uint64(ds.bytes[offset : offset+8])
	return math.Float64frombits(bits)
}

// PutF64 stores a native-endian IEEE-754 double at offset.
func (ds *DataSpace) PutF64(offset Addr, v float64) error {
	if err := ds.grow(uint32(offset) + 8); err != nil {
		return err
	}
	binary.NativeEndian.PutUint64(ds.bytes[offset:offset+8], math.Float64bits(v))
	return nil
}

// CompileF64 appends an IEEE-754 double at Here and advances Here by 8.
func (ds *DataSpace) CompileF64(v float64) Addr {
	at := ds.Here()
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], math.Float64bits(v))
	ds.bytes = append(ds.bytes, buf[:]...)
	return at
}

// PutBytes copies p into the data space starting at offset, growing the
// arena if necessary.
func (ds *DataSpace) PutBytes(offset Addr, p []byte) error {
	if err := ds.grow(uint32(offset) + uint32(len(p))); err != nil {
		return err
	}
	copy(ds.bytes[offset:], p)
	return nil
}

// GetBytes returns a copy of n bytes starting at offset; bytes past Here
// read as 0, matching GetU8/GetI32's out-of-range convention.
func (ds *DataSpace) GetBytes(offset Addr, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = ds.GetU8(offset + Addr(i))
	}
	return out
}

// CompileBytes appends p verbatim at Here.
func (ds *DataSpace) CompileBytes(p []byte) Addr {
	at := ds.Here()
	ds.bytes = append(ds.bytes, p...)
	return at
}
