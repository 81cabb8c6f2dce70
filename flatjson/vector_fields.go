package flatjson

import "encoding/base64"

// openVector emits the leading comma/name/colon/'[' shared by every vector
// primitive and returns the element count and the position of the first
// element, or ok=false if the field is absent (in which case nothing is
// emitted and the caller must not call closeVector).
func openVector(ctx *Context, td *TableDescriptor, id int, name string) (count, elems uint32, ok bool) {
	if ctx.stopped {
		return 0, 0, false
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return 0, 0, false
	}
	vecPos := td.Table.Indirect(pos)
	count, elems = vectorHeader(td.Table.Buf, vecPos)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	ctx.writeByte('[')
	ctx.level++
	return count, elems, true
}

func closeVector(ctx *Context, td *TableDescriptor, count uint32) {
	ctx.level--
	if count > 0 {
		ctx.writeIndent()
	}
	ctx.writeByte(']')
	td.Count++
}

func elementSep(ctx *Context, i uint32) {
	if i > 0 {
		ctx.writeByte(',')
	}
	ctx.writeIndent()
}

// ScalarVectorField emits a vector of scalar T.
func ScalarVectorField[T Number](ctx *Context, td *TableDescriptor, id int, name string) {
	count, elems, ok := openVector(ctx, td, id, name)
	if !ok {
		return
	}
	stride := uint32(sizeOfNumber[T]())
	buf := td.Table.Buf
	for i := uint32(0); i < count; i++ {
		elementSep(ctx, i)
		writeNumber(ctx, decodeAt[T](buf, elems+i*stride))
	}
	closeVector(ctx, td, count)
}

// EnumVectorField emits a vector of enum-typed scalars, delegating each
// element's rendering to sym unless Options.NoEnum falls through to the
// scalar rendering (spec.md §4.5).
func EnumVectorField[T Number](ctx *Context, td *TableDescriptor, id int, name string, sym SymbolPrinter) {
	count, elems, ok := openVector(ctx, td, id, name)
	if !ok {
		return
	}
	stride := uint32(sizeOfNumber[T]())
	buf := td.Table.Buf
	for i := uint32(0); i < count; i++ {
		elementSep(ctx, i)
		v := decodeAt[T](buf, elems+i*stride)
		if !ctx.opts.NoEnum && sym != nil {
			sym.Print(ctx, numberBits(v))
		} else {
			writeNumber(ctx, v)
		}
	}
	closeVector(ctx, td, count)
}

// StringVectorField emits a vector of strings. Each element is itself an
// offset, relative to its own position, to the string object (the same
// indirection a plain string field goes through).
func StringVectorField(ctx *Context, td *TableDescriptor, id int, name string) {
	count, elems, ok := openVector(ctx, td, id, name)
	if !ok {
		return
	}
	buf := td.Table.Buf
	for i := uint32(0); i < count; i++ {
		elementSep(ctx, i)
		elemPos := elems + i*4
		strPos := readUOffset(buf, elemPos)
		ctx.writeEscapedString(stringAt(buf, strPos))
	}
	closeVector(ctx, td, count)
}

// TableVectorField emits a vector of tables, each indirected the same way
// string-vector elements are.
func TableVectorField(ctx *Context, td *TableDescriptor, id int, name string, pf TablePrinter) error {
	count, elems, ok := openVector(ctx, td, id, name)
	if !ok {
		return nil
	}
	buf := td.Table.Buf
	var firstErr error
	for i := uint32(0); i < count; i++ {
		elementSep(ctx, i)
		elemPos := elems + i*4
		tablePos := readUOffset(buf, elemPos)
		if err := PrintTableObject(ctx, buf, tablePos, td.TTL, 0, pf); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	closeVector(ctx, td, count)
	return firstErr
}

// StructVectorField emits a vector of inline structs, packed strideBytes
// apart with no per-element indirection.
func StructVectorField(ctx *Context, td *TableDescriptor, id int, name string, strideBytes int, sp StructPrinter) error {
	count, elems, ok := openVector(ctx, td, id, name)
	if !ok {
		return nil
	}
	buf := td.Table.Buf
	var firstErr error
	for i := uint32(0); i < count; i++ {
		elementSep(ctx, i)
		elemPos := elems + i*uint32(strideBytes)
		if err := PrintStructObject(ctx, buf, elemPos, sp); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	closeVector(ctx, td, count)
	return firstErr
}

// base64Chunk is the number of raw input bytes encoded per iteration: a
// multiple of 3 so every iteration but the last produces a clean multiple
// of 4 output bytes with no padding, per spec.md §4.5.
const base64Chunk = 45

// writeBase64 streams body through enc in base64Chunk-sized input groups,
// so arbitrarily large byte vectors never need more than one small scratch
// buffer, matching the chunked-encoding requirement of spec.md §4.5.
func (c *Context) writeBase64(body []byte, enc *base64.Encoding) {
	var out [64]byte
	for len(body) >= base64Chunk {
		enc.Encode(out[:], body[:base64Chunk])
		c.writeBounded(out[:enc.EncodedLen(base64Chunk)])
		body = body[base64Chunk:]
	}
	if len(body) > 0 {
		n := enc.EncodedLen(len(body))
		enc.Encode(out[:n], body)
		c.writeBounded(out[:n])
	}
}

// ByteVectorBase64Field emits a u8 vector field as a base64-encoded quoted
// string, standard or URL-safe per urlSafe.
func ByteVectorBase64Field(ctx *Context, td *TableDescriptor, id int, name string, urlSafe bool) {
	if ctx.stopped {
		return
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return
	}
	vecPos := td.Table.Indirect(pos)
	count, elems := vectorHeader(td.Table.Buf, vecPos)
	body := td.Table.Buf[elems : elems+count]

	enc := base64.StdEncoding
	if urlSafe {
		enc = base64.URLEncoding
	}
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	ctx.writeByte('"')
	ctx.writeBase64(body, enc)
	ctx.writeByte('"')
	td.Count++
}
