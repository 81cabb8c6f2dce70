package flatjson

// ScalarField emits a numeric field. If the field is absent from the
// vtable it is omitted unless Options.ForceDefault is set (in which case
// def is emitted in its place); if present and equal to def it is omitted
// when Options.SkipDefault is set. This is the generic stand-in for
// spec.md §4.5's per-(type) "scalar field" primitive family.
func ScalarField[T Number](ctx *Context, td *TableDescriptor, id int, name string, def T) {
	if ctx.stopped {
		return
	}
	pos, present := td.Table.FieldPos(id)
	var v T
	if !present {
		if !ctx.opts.ForceDefault {
			return
		}
		v = def
	} else {
		v = decodeAt[T](td.Table.Buf, pos)
		if ctx.opts.SkipDefault && numberBits(v) == numberBits(def) {
			return
		}
	}
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	writeNumber(ctx, v)
	td.Count++
}

// BoolField is ScalarField's non-generic bool sibling: bools render as
// true/false literals rather than numeric text and compare by direct
// equality rather than bit pattern.
func BoolField(ctx *Context, td *TableDescriptor, id int, name string, def bool) {
	if ctx.stopped {
		return
	}
	pos, present := td.Table.FieldPos(id)
	var v bool
	if !present {
		if !ctx.opts.ForceDefault {
			return
		}
		v = def
	} else {
		v = td.Table.Buf[pos] != 0
		if ctx.opts.SkipDefault && v == def {
			return
		}
	}
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	ctx.writeBool(v)
	td.Count++
}

// EnumField is ScalarField with value rendering delegated to sym unless
// Options.NoEnum requests raw numbers instead. sym may be nil, which acts
// like NoEnum for this one field.
func EnumField[T Number](ctx *Context, td *TableDescriptor, id int, name string, def T, sym SymbolPrinter) {
	if ctx.stopped {
		return
	}
	pos, present := td.Table.FieldPos(id)
	var v T
	if !present {
		if !ctx.opts.ForceDefault {
			return
		}
		v = def
	} else {
		v = decodeAt[T](td.Table.Buf, pos)
		if ctx.opts.SkipDefault && numberBits(v) == numberBits(def) {
			return
		}
	}
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	if !ctx.opts.NoEnum && sym != nil {
		sym.Print(ctx, numberBits(v))
	} else {
		writeNumber(ctx, v)
	}
	td.Count++
}

// StringField emits a string field, or nothing if the field is absent.
func StringField(ctx *Context, td *TableDescriptor, id int, name string) {
	if ctx.stopped {
		return
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return
	}
	strPos := td.Table.Indirect(pos)
	body := stringAt(td.Table.Buf, strPos)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	ctx.writeEscapedString(body)
	td.Count++
}

// StructField emits an inline struct field (no offset indirection: struct
// fields live directly inside the table at their vtable-resolved
// position).
func StructField(ctx *Context, td *TableDescriptor, id int, name string, sp StructPrinter) error {
	if ctx.stopped {
		return ctx.err
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return nil
	}
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	err := PrintStructObject(ctx, td.Table.Buf, pos, sp)
	td.Count++
	return err
}

// TableField recurses into a nested table field, carrying the parent's
// remaining recursion budget.
func TableField(ctx *Context, td *TableDescriptor, id int, name string, pf TablePrinter) error {
	if ctx.stopped {
		return ctx.err
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return nil
	}
	tablePos := td.Table.Indirect(pos)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	err := PrintTableObject(ctx, td.Table.Buf, tablePos, td.TTL, 0, pf)
	td.Count++
	return err
}

// --- struct-field family (spec.md §4.5 "Struct-field family") ---
//
// Structs have no vtable: every field lives at a compile-time-known byte
// offset from the struct's base position. A StructPrinter receives only
// (buf, base) and must interleave its own leading comma from an index it
// tracks itself, which is exactly what these *StructField primitives do
// given that index.

func ScalarStructField[T Number](ctx *Context, index int, buf []byte, base, offset uint32, name string) {
	ctx.beginField(index)
	ctx.writeSymbol(name)
	ctx.writeColon()
	writeNumber(ctx, decodeAt[T](buf, base+offset))
}

func BoolStructField(ctx *Context, index int, buf []byte, base, offset uint32, name string) {
	ctx.beginField(index)
	ctx.writeSymbol(name)
	ctx.writeColon()
	ctx.writeBool(buf[base+offset] != 0)
}

func EnumStructField[T Number](ctx *Context, index int, buf []byte, base, offset uint32, name string, sym SymbolPrinter) {
	ctx.beginField(index)
	ctx.writeSymbol(name)
	ctx.writeColon()
	v := decodeAt[T](buf, base+offset)
	if !ctx.opts.NoEnum && sym != nil {
		sym.Print(ctx, numberBits(v))
	} else {
		writeNumber(ctx, v)
	}
}

func StructStructField(ctx *Context, index int, buf []byte, base, offset uint32, name string, sp StructPrinter) error {
	ctx.beginField(index)
	ctx.writeSymbol(name)
	ctx.writeColon()
	return PrintStructObject(ctx, buf, base+offset, sp)
}
