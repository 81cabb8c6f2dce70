package flatjson

// UnionPrinter resolves a union discriminator to the TablePrinter
// responsible for that variant. Returning nil for an unrecognized
// discriminator causes the union value to be omitted while the "_type"
// field is still emitted (spec.md §4.5 "union field").
type UnionPrinter interface {
	VariantPrinter(disc uint8) TablePrinter
}

type UnionPrinterFunc func(disc uint8) TablePrinter

func (f UnionPrinterFunc) VariantPrinter(disc uint8) TablePrinter { return f(disc) }

// appendTypeSuffix appends "_type" to name into dst, which must have
// capacity for len(name)+5; UnionField and UnionVectorField use the
// Context's bounded nameScratch array so this never allocates.
func appendTypeSuffix(dst []byte, name string) []byte {
	dst = append(dst, name...)
	dst = append(dst, "_type"...)
	return dst
}

func (c *Context) writeRawSymbolName(name []byte) {
	if c.opts.Unquote {
		c.writeUnbounded(name)
		return
	}
	c.writeEscapedString(name)
}

// UnionField emits the discriminator field at vtable id-1 as "<name>_type"
// (always), then, if the discriminator is nonzero, a comma followed by
// "<name>": <recursively printed variant table> (spec.md §4.5, §8 property
// 6). namelen is implicitly len(name); names longer than NameLenMax set
// ErrBadInput since "<name>_type" must fit the Context's bounded scratch
// buffer.
func UnionField(ctx *Context, td *TableDescriptor, id int, name string, sym SymbolPrinter, up UnionPrinter) error {
	if ctx.stopped {
		return ctx.err
	}
	if len(name) > NameLenMax {
		ctx.setErr(ErrBadInput)
		return ErrBadInput
	}
	var disc uint8
	if typePos, present := td.Table.FieldPos(id - 1); present {
		disc = td.Table.Buf[typePos]
	}

	typeName := appendTypeSuffix(ctx.nameScratch[:0], name)
	ctx.beginField(td.Count)
	ctx.writeRawSymbolName(typeName)
	ctx.writeColon()
	if !ctx.opts.NoEnum && sym != nil {
		sym.Print(ctx, uint64(disc))
	} else {
		writeNumber(ctx, disc)
	}
	td.Count++

	if disc == 0 {
		return nil
	}
	pos, present := td.Table.FieldPos(id)
	if !present {
		return nil
	}
	pf := up.VariantPrinter(disc)
	if pf == nil {
		return nil
	}
	tablePos := td.Table.Indirect(pos)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	err := PrintTableObject(ctx, td.Table.Buf, tablePos, td.TTL, int32(disc), pf)
	td.Count++
	return err
}

// UnionVectorField emits a vector of unions: first "<name>_type" as a
// vector of discriminators, then "<name>" as a vector of variant objects,
// with null at every position whose discriminator is zero (spec.md §4.5
// "Vector-of-strings, vector-of-tables, vector-of-unions").
func UnionVectorField(ctx *Context, td *TableDescriptor, id int, name string, sym SymbolPrinter, up UnionPrinter) error {
	if ctx.stopped {
		return ctx.err
	}
	if len(name) > NameLenMax {
		ctx.setErr(ErrBadInput)
		return ErrBadInput
	}
	buf := td.Table.Buf
	typePos, typePresent := td.Table.FieldPos(id - 1)
	valPos, valPresent := td.Table.FieldPos(id)
	if !typePresent && !valPresent {
		return nil
	}

	var discs []byte
	if typePresent {
		tVec := td.Table.Indirect(typePos)
		n, elemsPos := vectorHeader(buf, tVec)
		discs = buf[elemsPos : elemsPos+n]
	}

	typeName := appendTypeSuffix(ctx.nameScratch[:0], name)
	ctx.beginField(td.Count)
	ctx.writeRawSymbolName(typeName)
	ctx.writeColon()
	ctx.writeByte('[')
	ctx.level++
	for i, d := range discs {
		elementSep(ctx, uint32(i))
		if !ctx.opts.NoEnum && sym != nil {
			sym.Print(ctx, uint64(d))
		} else {
			writeNumber(ctx, d)
		}
	}
	ctx.level--
	if len(discs) > 0 {
		ctx.writeIndent()
	}
	ctx.writeByte(']')
	td.Count++

	if !valPresent {
		return nil
	}
	valVec := td.Table.Indirect(valPos)
	count, elems := vectorHeader(buf, valVec)
	ctx.beginField(td.Count)
	ctx.writeSymbol(name)
	ctx.writeColon()
	ctx.writeByte('[')
	ctx.level++
	var firstErr error
	for i := uint32(0); i < count; i++ {
		elementSep(ctx, i)
		var d uint8
		if i < uint32(len(discs)) {
			d = discs[i]
		}
		pf := func() TablePrinter {
			if d == 0 || up == nil {
				return nil
			}
			return up.VariantPrinter(d)
		}()
		if pf == nil {
			ctx.writeNull()
			continue
		}
		elemPos := elems + i*4
		tablePos := readUOffset(buf, elemPos)
		if err := PrintTableObject(ctx, buf, tablePos, td.TTL, int32(d), pf); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	ctx.level--
	if count > 0 {
		ctx.writeIndent()
	}
	ctx.writeByte(']')
	td.Count++
	return firstErr
}
