package flatjson

// header is the minimum byte length of a root buffer: the 4-byte uoffset to
// the root table/struct.
const header = 4

// checkIdentifier compares buf[4:8] against identifier when identifier is
// non-empty, per spec.md §4.6 "file identifier" validation.
func checkIdentifier(buf []byte, identifier string) bool {
	if identifier == "" {
		return true
	}
	if len(identifier) != 4 || len(buf) < 8 {
		return false
	}
	return string(buf[4:8]) == identifier
}

// TableAsRoot validates buf as a root buffer (spec.md §4.6), prints the root
// table as a complete JSON document terminated by a trailing newline, and
// flushes. It returns the total number of bytes emitted, or -1 on error (the
// root-driver error-handling convention of spec.md §7).
func TableAsRoot(ctx *Context, buf []byte, identifier string, pf TablePrinter) (int, error) {
	if len(buf) < header || !checkIdentifier(buf, identifier) {
		ctx.setErr(ErrBadInput)
		return -1, ErrBadInput
	}
	rootPos := readUOffset(buf, 0)
	err := PrintTableObject(ctx, buf, rootPos, ctx.opts.maxLevels(), 0, pf)
	ctx.writeByte('\n')
	if ferr := ctx.flushFinal(); err == nil {
		err = ferr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return -1, err
	}
	return int(ctx.Len()), nil
}

// StructAsRoot is TableAsRoot's struct-rooted sibling: a root buffer whose
// first uoffset points directly at an inline struct rather than a table.
func StructAsRoot(ctx *Context, buf []byte, identifier string, sp StructPrinter) (int, error) {
	if len(buf) < header || !checkIdentifier(buf, identifier) {
		ctx.setErr(ErrBadInput)
		return -1, ErrBadInput
	}
	base := readUOffset(buf, 0)
	err := PrintStructObject(ctx, buf, base, sp)
	ctx.writeByte('\n')
	if ferr := ctx.flushFinal(); err == nil {
		err = ferr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return -1, err
	}
	return int(ctx.Len()), nil
}

// TableAsNestedRoot emits a nested FlatBuffers root carried inside a ubyte
// vector field as a regular JSON object under name (spec.md §4.5 "Nested
// roots"): the field's bytes are validated as an independent root buffer
// (header length, optional file identifier) and its root table is printed
// in place of an ordinary TableField value, sharing this Context's current
// object/flush state rather than starting a second document. It returns nil
// without emitting anything if the field is absent from the vtable.
func TableAsNestedRoot(ctx *Context, td *TableDescriptor, id int, name string, identifier string, pf TablePrinter) error {
	if ctx.stopped {
		return ctx.err
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return nil
	}
	vecPos := td.Table.Indirect(pos)
	count, elems := vectorHeader(td.Table.Buf, vecPos)
	nested := td.Table.Buf[elems : elems+count]
	if len(nested) < header || !checkIdentifier(nested, identifier) {
		ctx.setErr(ErrBadInput)
		return ErrBadInput
	}
	rootPos := readUOffset(nested, 0)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	err := PrintTableObject(ctx, nested, rootPos, td.TTL, 0, pf)
	td.Count++
	return err
}

// StructAsNestedRoot is TableAsNestedRoot's struct-rooted sibling.
func StructAsNestedRoot(ctx *Context, td *TableDescriptor, id int, name string, identifier string, sp StructPrinter) error {
	if ctx.stopped {
		return ctx.err
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return nil
	}
	vecPos := td.Table.Indirect(pos)
	count, elems := vectorHeader(td.Table.Buf, vecPos)
	nested := td.Table.Buf[elems : elems+count]
	if len(nested) < header || !checkIdentifier(nested, identifier) {
		ctx.setErr(ErrBadInput)
		return ErrBadInput
	}
	base := readUOffset(nested, 0)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	err := PrintStructObject(ctx, nested, base, sp)
	td.Count++
	return err
}
