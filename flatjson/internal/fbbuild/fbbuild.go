// Package fbbuild is a minimal, test-only FlatBuffers-wire-compatible
// buffer builder. It exists so flatjson's tests can construct exact-layout
// input buffers without depending on a full schema compiler or the
// upstream flatbuffers Go runtime.
//
// Offsets are computed with plain uint32 wraparound arithmetic, which is
// exactly how the wire format's UOffsets behave (spec.md §3): a field's
// stored value plus its own position always yields the target position mod
// 2^32, regardless of whether the target was appended before or after the
// field that references it. That lets this builder lay objects out in
// whatever order is convenient (always children-before-parent here) rather
// than reproducing the real builder's back-to-front bump allocation.
package fbbuild

import "encoding/binary"

// Builder accumulates a single forward-growing byte buffer.
type Builder struct {
	buf []byte
}

func New() *Builder { return &Builder{} }

func (b *Builder) Bytes() []byte { return b.buf }
func (b *Builder) Pos() uint32   { return uint32(len(b.buf)) }

func (b *Builder) putU8(v uint8)   { b.buf = append(b.buf, v) }
func (b *Builder) putU16(v uint16) { var t [2]byte; binary.LittleEndian.PutUint16(t[:], v); b.buf = append(b.buf, t[:]...) }
func (b *Builder) putU32(v uint32) { var t [4]byte; binary.LittleEndian.PutUint32(t[:], v); b.buf = append(b.buf, t[:]...) }

// String appends a FlatBuffers string object (length-prefixed UTF-8, plus
// the conventional unread NUL terminator) and returns its position.
func (b *Builder) String(s string) uint32 {
	pos := b.Pos()
	b.putU32(uint32(len(s)))
	b.buf = append(b.buf, s...)
	b.putU8(0)
	return pos
}

// ByteVector appends a ubyte vector object and returns its position.
func (b *Builder) ByteVector(data []byte) uint32 {
	pos := b.Pos()
	b.putU32(uint32(len(data)))
	b.buf = append(b.buf, data...)
	return pos
}

// U16Vector appends a vector of uint16 elements and returns its position.
func (b *Builder) U16Vector(vals []uint16) uint32 {
	pos := b.Pos()
	b.putU32(uint32(len(vals)))
	for _, v := range vals {
		b.putU16(v)
	}
	return pos
}

// U8Vector appends a vector of uint8 elements (distinct from ByteVector
// only in intent: this models e.g. a [ubyte] field that is NOT rendered as
// base64) and returns its position.
func (b *Builder) U8Vector(vals []uint8) uint32 {
	return b.ByteVector(vals)
}

// OffsetVectorStart reserves a vector header for count offset-typed
// elements (strings, tables, unions) and returns the position of the count
// field; callers must immediately follow with exactly count calls to
// PutOffsetElement.
func (b *Builder) OffsetVectorStart(count int) uint32 {
	pos := b.Pos()
	b.putU32(uint32(count))
	return pos
}

// PutOffsetElement appends one forward-pointing uoffset element, computed
// relative to the position this element itself occupies.
func (b *Builder) PutOffsetElement(targetPos uint32) {
	elemPos := b.Pos()
	b.putU32(targetPos - elemPos)
}

// Struct appends raw struct bytes verbatim (structs have no vtable and no
// indirection; fill must already be laid out at the struct's fixed byte
// offsets) and returns its position.
func (b *Builder) Struct(raw []byte) uint32 {
	pos := b.Pos()
	b.buf = append(b.buf, raw...)
	return pos
}

// Table writes a vtable followed by a table object. fieldOffsets[i] is the
// byte offset of vtable id i from the table's own position (0 meaning
// absent), matching spec.md's FieldPos formula exactly. size is the total
// table object size in bytes, including the leading 4-byte vtable-offset
// header. fill receives the table's position (known before any table bytes
// are written, so it may be used to compute relative offsets for
// string/table/vector/struct fields) and the raw table byte slice to
// populate from index 4 onward.
func (b *Builder) Table(size int, fieldOffsets []uint16, fill func(tablePos uint32, table []byte)) uint32 {
	vtPos := b.Pos()
	vsize := uint16(4 + 2*len(fieldOffsets))
	b.putU16(vsize)
	b.putU16(uint16(size))
	for _, fo := range fieldOffsets {
		b.putU16(fo)
	}

	tablePos := b.Pos()
	table := make([]byte, size)
	soffset := int32(int64(tablePos) - int64(vtPos))
	binary.LittleEndian.PutUint32(table[0:4], uint32(soffset))
	if fill != nil {
		fill(tablePos, table)
	}
	b.buf = append(b.buf, table...)
	return tablePos
}

// Root appends the 4-byte root uoffset pointing at rootPos (spec.md §4.6)
// at the very start of a fresh buffer and returns the assembled root
// buffer. It must be called last, against a Builder whose buf so far holds
// only the objects the root (transitively) references.
func (b *Builder) Root(rootPos uint32) []byte {
	// Prepending these 4 bytes shifts every existing absolute position in
	// b.buf by +4; that's harmless for the offsets already baked into
	// b.buf (they're all relative, so a uniform shift cancels out), but
	// this header's own target must be adjusted to the shifted position.
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], rootPos+4)
	return append(hdr[:], b.buf...)
}

// PutOffsetAt writes a relative-offset field into a table byte slice at
// local offset fieldOff, given the table's own absolute position.
func PutOffsetAt(table []byte, tablePos uint32, fieldOff uint16, targetPos uint32) {
	fieldPos := tablePos + uint32(fieldOff)
	binary.LittleEndian.PutUint32(table[fieldOff:], targetPos-fieldPos)
}

func PutU8At(table []byte, fieldOff uint16, v uint8)   { table[fieldOff] = v }
func PutU16At(table []byte, fieldOff uint16, v uint16) { binary.LittleEndian.PutUint16(table[fieldOff:], v) }
func PutU32At(table []byte, fieldOff uint16, v uint32) { binary.LittleEndian.PutUint32(table[fieldOff:], v) }
func PutI16At(table []byte, fieldOff uint16, v int16)  { PutU16At(table, fieldOff, uint16(v)) }
func PutBoolAt(table []byte, fieldOff uint16, v bool) {
	if v {
		table[fieldOff] = 1
	} else {
		table[fieldOff] = 0
	}
}
