package flatjson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/borissey/flatcc/flatjson"
	"github.com/borissey/flatcc/flatjson/internal/fbbuild"
)

// Property 6 (zero-discriminator branch): when the discriminator is
// absent/zero, only "<name>_type" is emitted and the value is omitted
// entirely (not even as null, outside a vector).
func TestUnionZeroDiscriminator(t *testing.T) {
	b := fbbuild.New()
	tablePos := b.Table(8, []uint16{4, 0}, func(_ uint32, table []byte) {
		fbbuild.PutU8At(table, 4, 0)
	})
	wire := b.Root(tablePos)

	sym := flatjson.SymbolPrinterFunc(func(ctx *flatjson.Context, v uint64) {
		ctx.EmitSymbol("NONE")
	})
	up := flatjson.UnionPrinterFunc(func(disc uint8) flatjson.TablePrinter { return nil })

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		return flatjson.UnionField(ctx, td, 1, "u", sym, up)
	})

	var out bytes.Buffer
	ctx := flatjson.NewStreamContext(&out, flatjson.Options{Indent: 2})
	if _, err := flatjson.TableAsRoot(ctx, wire, "", pf); err != nil {
		t.Fatalf("TableAsRoot: %v", err)
	}
	got := out.String()
	want := "{\n  \"u_type\": \"NONE\"\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if strings.Contains(got, `"u"`) {
		t.Fatalf("value field must be omitted when discriminator is zero: %q", got)
	}
}

// Property 6 (vector branch): a union vector emits null at positions whose
// discriminator is zero.
func TestUnionVectorNullAtZero(t *testing.T) {
	b := fbbuild.New()
	variant := b.Table(8, []uint16{4}, func(_ uint32, table []byte) {
		fbbuild.PutU32At(table, 4, uint32(int32(9)))
	})
	typeVec := b.U8Vector([]uint8{0, 2})
	valVecStart := b.OffsetVectorStart(2)
	b.PutOffsetElement(0) // element 0: discriminator is 0, offset unused
	b.PutOffsetElement(variant)

	tablePos := b.Table(12, []uint16{4, 8}, func(tablePos uint32, table []byte) {
		fbbuild.PutOffsetAt(table, tablePos, 4, typeVec)
		fbbuild.PutOffsetAt(table, tablePos, 8, valVecStart)
	})
	wire := b.Root(tablePos)

	variantPrinter := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		flatjson.ScalarField[int32](ctx, td, 0, "n", 0)
		return nil
	})
	sym := flatjson.SymbolPrinterFunc(func(ctx *flatjson.Context, v uint64) {
		if v == 2 {
			ctx.EmitSymbol("B")
			return
		}
		ctx.EmitSymbol("NONE")
	})
	up := flatjson.UnionPrinterFunc(func(disc uint8) flatjson.TablePrinter {
		if disc == 2 {
			return variantPrinter
		}
		return nil
	})

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		return flatjson.UnionVectorField(ctx, td, 1, "u", sym, up)
	})

	var out bytes.Buffer
	ctx := flatjson.NewStreamContext(&out, flatjson.Options{Indent: 2})
	if _, err := flatjson.TableAsRoot(ctx, wire, "", pf); err != nil {
		t.Fatalf("TableAsRoot: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "null") {
		t.Fatalf("expected a null element for the zero discriminator: %q", got)
	}
	if !strings.Contains(got, `"n": 9`) {
		t.Fatalf("expected variant B's n=9 to be printed: %q", got)
	}
}
