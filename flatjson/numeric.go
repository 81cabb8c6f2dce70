package flatjson

import (
	"encoding/binary"
	"math"
)

// Number is the set of wire scalar types spec.md §4.5 enumerates (excluding
// bool, which gets its own non-generic primitives since its rendering and
// default comparison differ). One generic function instantiated per member
// of this constraint replaces the C source's macro-stamped N x M primitive
// matrix (spec.md §9 "Design Notes").
type Number interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// sizeOfNumber returns the wire width in bytes of T, used to compute vector
// element strides.
func sizeOfNumber[T Number]() int {
	var z T
	switch any(z).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32, float32:
		return 4
	case uint64, int64, float64:
		return 8
	}
	panic("flatjson: unsupported scalar type")
}

func isFloat[T Number]() (bits int, ok bool) {
	var z T
	switch any(z).(type) {
	case float32:
		return 32, true
	case float64:
		return 64, true
	}
	return 0, false
}

func isSigned[T Number]() bool {
	var z T
	switch any(z).(type) {
	case int8, int16, int32, int64:
		return true
	}
	return false
}

// decodeAt reads a little-endian T at buf[pos:]. The wire format is defined
// to be little-endian (spec.md §3); the big-endian-host byteswap helper
// spec.md §1 lists as an external collaborator would live here, behind this
// one function, on a build that needed it.
func decodeAt[T Number](buf []byte, pos uint32) T {
	var z T
	switch any(z).(type) {
	case uint8:
		return any(buf[pos]).(T)
	case int8:
		return any(int8(buf[pos])).(T)
	case uint16:
		return any(binary.LittleEndian.Uint16(buf[pos:])).(T)
	case int16:
		return any(int16(binary.LittleEndian.Uint16(buf[pos:]))).(T)
	case uint32:
		return any(binary.LittleEndian.Uint32(buf[pos:])).(T)
	case int32:
		return any(int32(binary.LittleEndian.Uint32(buf[pos:]))).(T)
	case uint64:
		return any(binary.LittleEndian.Uint64(buf[pos:])).(T)
	case int64:
		return any(int64(binary.LittleEndian.Uint64(buf[pos:]))).(T)
	case float32:
		return any(math.Float32frombits(binary.LittleEndian.Uint32(buf[pos:]))).(T)
	case float64:
		return any(math.Float64frombits(binary.LittleEndian.Uint64(buf[pos:]))).(T)
	}
	panic("flatjson: unsupported scalar type")
}

// numberBits widens any Number to a uint64 bit pattern (ints sign-extended
// via the int64 path, floats via their IEEE-754 bits), used both for
// rendering and for comparing against a schema default.
func numberBits[T Number](v T) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x)
	case int8:
		return uint64(int64(x))
	case uint16:
		return uint64(x)
	case int16:
		return uint64(int64(x))
	case uint32:
		return uint64(x)
	case int32:
		return uint64(int64(x))
	case uint64:
		return x
	case int64:
		return uint64(x)
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	}
	panic("flatjson: unsupported scalar type")
}

// appendNumber formats v the way the teacher's ion/reader.go scratch
// helpers format ion scalars: strconv.AppendInt/AppendUint for integers,
// strconv.AppendFloat for floats (with the HexFloat option swapping to the
// 'x' verb).
func appendNumber[T Number](dst []byte, v T, hex bool) []byte {
	if bits, ok := isFloat[T](); ok {
		var f float64
		switch x := any(v).(type) {
		case float32:
			f = float64(x)
		case float64:
			f = x
		}
		return appendFloat(dst, f, bits, hex)
	}
	u := numberBits(v)
	return appendInteger(dst, u, isSigned[T]())
}

// writeNumber formats v into the Context's scratch array (avoiding an
// allocation per scalar field, the same concern that motivates the
// teacher's ion/reader.go scratch type) and writes it out.
func writeNumber[T Number](c *Context, v T) {
	c.writeBounded(appendNumber(c.scratch[:0], v, c.opts.HexFloat))
}
