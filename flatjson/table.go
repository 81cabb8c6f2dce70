package flatjson

import "encoding/binary"

// UOffset is a FlatBuffers-style unsigned relative offset: added to the
// position it was read from to locate the object it points at.
type UOffset = uint32

// Table addresses a FlatBuffers table inside a shared, read-only wire
// buffer. Pos is the absolute byte position of the table's vtable-offset
// field (the first 4 bytes of the table). Table never mutates Buf.
type Table struct {
	Buf []byte
	Pos uint32
}

// readUOffset implements spec.md's read_uoffset: p + *(uint32 LE @ p).
func readUOffset(buf []byte, pos uint32) uint32 {
	return pos + binary.LittleEndian.Uint32(buf[pos:])
}

// readVOffset implements spec.md's read_voffset: *(uint16 LE @ (p+base)).
func readVOffset(buf []byte, base, rel uint32) uint16 {
	return binary.LittleEndian.Uint16(buf[base+rel:])
}

// vtablePos resolves a table's vtable position from the signed offset
// stored in the table's first 4 bytes (spec.md §3: "subtract from the
// table's own address").
func (t Table) vtablePos() uint32 {
	soffset := int32(binary.LittleEndian.Uint32(t.Buf[t.Pos:]))
	return uint32(int32(t.Pos) - soffset)
}

// vtableSize returns the vtable's own declared byte size (index 0 of the
// vtable, per spec.md §3).
func (t Table) vtableSize() uint16 {
	return binary.LittleEndian.Uint16(t.Buf[t.vtablePos():])
}

// FieldPos resolves field id's absolute byte position within the table, or
// (0, false) if the field is absent from the vtable (offset 0 or the vtable
// is too short to mention this id). This is the sole gateway through which
// every field primitive reaches wire bytes (spec.md §4.2, §9 "Vtable
// access").
func (t Table) FieldPos(id int) (uint32, bool) {
	vt := t.vtablePos()
	vsize := binary.LittleEndian.Uint16(t.Buf[vt:])
	vo := uint32(id+2) * 2
	if vo >= uint32(vsize) {
		return 0, false
	}
	fo := readVOffset(t.Buf, vt, vo)
	if fo == 0 {
		return 0, false
	}
	return t.Pos + uint32(fo), true
}

// Indirect follows one level of relative-offset indirection: the value
// stored at pos is itself a uoffset relative to pos, used for strings,
// tables, vectors and union variants (never for inline structs or
// table-resident scalars).
func (t Table) Indirect(pos uint32) uint32 {
	return readUOffset(t.Buf, pos)
}

// stringAt reads the UTF-8 payload of a FlatBuffers string object located at
// an already-dereferenced position (a 4-byte length prefix followed by that
// many bytes; the wire format also writes an unread zero terminator).
func stringAt(buf []byte, pos uint32) []byte {
	n := binary.LittleEndian.Uint32(buf[pos:])
	start := pos + 4
	return buf[start : start+n]
}

// vectorHeader returns the element count and the byte position of the first
// element of a vector object located at an already-dereferenced position.
func vectorHeader(buf []byte, pos uint32) (count uint32, elems uint32) {
	return binary.LittleEndian.Uint32(buf[pos:]), pos + 4
}

// TableDescriptor is the "table descriptor passed by reference" of spec.md
// §4.4: schema-generated code receives one of these plus the Context and
// must touch Count only by letting field primitives increment it.
type TableDescriptor struct {
	Type  int32 // union discriminator tag for the table this descriptor describes, 0 if not a union variant
	Count int   // fields already emitted; primitives consult this to decide whether to emit a leading comma
	TTL   int   // remaining allowed recursion depth, decremented once per nested table
	Table Table
}
