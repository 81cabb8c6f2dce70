package flatjson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/borissey/flatcc/flatjson"
	"github.com/borissey/flatcc/flatjson/internal/fbbuild"
)

func mustDump(t *testing.T, buf []byte, pf flatjson.TablePrinter, opts flatjson.Options) string {
	t.Helper()
	var out bytes.Buffer
	ctx := flatjson.NewStreamContext(&out, opts)
	if _, err := flatjson.TableAsRoot(ctx, buf, "", pf); err != nil {
		t.Fatalf("TableAsRoot: %v", err)
	}
	return out.String()
}

var indented = flatjson.Options{Indent: 2, SkipDefault: true}

// S1 — empty table.
func TestScenarioEmptyTable(t *testing.T) {
	b := fbbuild.New()
	tablePos := b.Table(4, nil, nil)
	buf := b.Root(tablePos)

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error { return nil })
	got := mustDump(t, buf, pf, indented)
	if got != "{}\n" {
		t.Fatalf("got %q, want %q", got, "{}\n")
	}
}

// S2 — single int32 field id=0 = 42, named "x".
func TestScenarioScalarField(t *testing.T) {
	b := fbbuild.New()
	tablePos := b.Table(8, []uint16{4}, func(_ uint32, table []byte) {
		fbbuild.PutU32At(table, 4, uint32(int32(42)))
	})
	buf := b.Root(tablePos)

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		flatjson.ScalarField[int32](ctx, td, 0, "x", 0)
		return nil
	})
	got := mustDump(t, buf, pf, indented)
	want := "{\n  \"x\": 42\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// S3 — string field = "hi\nthere".
func TestScenarioStringField(t *testing.T) {
	b := fbbuild.New()
	strPos := b.String("hi\nthere")
	tablePos := b.Table(8, []uint16{4}, func(tablePos uint32, table []byte) {
		fbbuild.PutOffsetAt(table, tablePos, 4, strPos)
	})
	buf := b.Root(tablePos)

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		flatjson.StringField(ctx, td, 0, "s")
		return nil
	})
	got := mustDump(t, buf, pf, indented)
	if !strings.Contains(got, `"s": "hi\nthere"`) {
		t.Fatalf("got %q, missing escaped string literal", got)
	}
}

// S4 — vector of three uint16 = [1,2,3], named "v".
func TestScenarioScalarVector(t *testing.T) {
	b := fbbuild.New()
	vecPos := b.U16Vector([]uint16{1, 2, 3})
	tablePos := b.Table(8, []uint16{4}, func(tablePos uint32, table []byte) {
		fbbuild.PutOffsetAt(table, tablePos, 4, vecPos)
	})
	buf := b.Root(tablePos)

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		flatjson.ScalarVectorField[uint16](ctx, td, 0, "v")
		return nil
	})
	got := mustDump(t, buf, pf, indented)
	want := "{\n  \"v\": [\n    1,\n    2,\n    3\n  ]\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// S5 — union with discriminator=2 selecting variant B (table with field n=7).
func TestScenarioUnion(t *testing.T) {
	b := fbbuild.New()
	variantPos := b.Table(8, []uint16{4}, func(_ uint32, table []byte) {
		fbbuild.PutU32At(table, 4, uint32(int32(7)))
	})
	tablePos := b.Table(9, []uint16{4, 5}, func(tablePos uint32, table []byte) {
		fbbuild.PutU8At(table, 4, 2)
		fbbuild.PutOffsetAt(table, tablePos, 5, variantPos)
	})
	buf := b.Root(tablePos)

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
		return flatjson.UnionField(ctx, td, 1, "u", sym, up)
	})
	got := mustDump(t, buf, pf, indented)
	want := "{\n  \"u_type\": \"B\",\n  \"u\": {\n    \"n\": 7\n  }\n}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// S6 — byte vector [0xDE,0xAD,0xBE,0xEF] base64 standard padded.
func TestScenarioBase64(t *testing.T) {
	b := fbbuild.New()
	vecPos := b.ByteVector([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	tablePos := b.Table(8, []uint16{4}, func(tablePos uint32, table []byte) {
		fbbuild.PutOffsetAt(table, tablePos, 4, vecPos)
	})
	buf := b.Root(tablePos)

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		flatjson.ByteVectorBase64Field(ctx, td, 0, "data", false)
		return nil
	})
	got := mustDump(t, buf, pf, indented)
	if !strings.Contains(got, `"data": "3q2+7w=="`) {
		t.Fatalf("got %q, missing expected base64 literal", got)
	}
}
