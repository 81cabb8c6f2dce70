package flatjson

// TablePrinter is the "table-printer capability passed by reference" of
// spec.md §9: schema-generated code implements EmitFields by issuing field
// primitives, in declaration order, against the TableDescriptor it is
// handed.
type TablePrinter interface {
	EmitFields(ctx *Context, td *TableDescriptor) error
}

// TablePrinterFunc adapts a plain function to TablePrinter, mirroring the
// http.HandlerFunc idiom.
type TablePrinterFunc func(ctx *Context, td *TableDescriptor) error

func (f TablePrinterFunc) EmitFields(ctx *Context, td *TableDescriptor) error {
	return f(ctx, td)
}

// StructPrinter is the struct analogue of TablePrinter: structs have no
// vtable, so the printer receives only the struct's base position and must
// issue *StructField calls using compile-time-known byte offsets.
type StructPrinter interface {
	EmitFields(ctx *Context, buf []byte, base uint32) error
}

type StructPrinterFunc func(ctx *Context, buf []byte, base uint32) error

func (f StructPrinterFunc) EmitFields(ctx *Context, buf []byte, base uint32) error {
	return f(ctx, buf, base)
}

// SymbolPrinter renders an enum value as its schema symbol(s). For ordinary
// enums it emits a single symbol; for flag enums it emits a
// whitespace-separated, quoted sequence (spec.md §4.5 "Flag-enum
// delimiting").
type SymbolPrinter interface {
	Print(ctx *Context, value uint64)
}

type SymbolPrinterFunc func(ctx *Context, value uint64)

func (f SymbolPrinterFunc) Print(ctx *Context, value uint64) { f(ctx, value) }

// PrintTableObject is the table traversal engine of spec.md §4.4: resolve
// the vtable, emit '{', hand a TableDescriptor to pf in declaration order,
// emit '}'. ttl is the remaining recursion budget; it is decremented before
// use and, on reaching zero, aborts with ErrDeepRecursion without emitting
// anything for this table.
func PrintTableObject(ctx *Context, buf []byte, pos uint32, ttl int, discriminator int32, pf TablePrinter) error {
	ttl--
	if ttl <= 0 {
		ctx.setErr(ErrDeepRecursion)
		return ErrDeepRecursion
	}
	ctx.writeByte('{')
	ctx.level++
	td := &TableDescriptor{
		Type:  discriminator,
		TTL:   ttl,
		Table: Table{Buf: buf, Pos: pos},
	}
	err := pf.EmitFields(ctx, td)
	ctx.level--
	if td.Count > 0 {
		ctx.writeIndent()
	}
	ctx.writeByte('}')
	return err
}

// PrintStructObject emits a struct as a JSON object. Structs have no
// vtable; sp issues *StructField calls against fixed byte offsets from
// base.
func PrintStructObject(ctx *Context, buf []byte, base uint32, sp StructPrinter) error {
	ctx.writeByte('{')
	ctx.level++
	err := sp.EmitFields(ctx, buf, base)
	ctx.level--
	ctx.writeIndent()
	ctx.writeByte('}')
	return err
}
