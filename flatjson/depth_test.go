package flatjson_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/borissey/flatcc/flatjson"
	"github.com/borissey/flatcc/flatjson/internal/fbbuild"
)

// buildNestedChain returns a root buffer of depth tables, each (save the
// innermost, which is empty) holding a single table field named "child"
// pointing at the next one in.
func buildNestedChain(depth int) []byte {
	b := fbbuild.New()
	child := b.Table(4, nil, nil)
	for i := 1; i < depth; i++ {
		prev := child
		child = b.Table(8, []uint16{4}, func(tablePos uint32, table []byte) {
			fbbuild.PutOffsetAt(table, tablePos, 4, prev)
		})
	}
	return b.Root(child)
}

// Property 3: depth bound. Nesting beyond MaxLevels must fail with
// ErrDeepRecursion rather than overflow the Go call stack.
func TestDepthBoundExceeded(t *testing.T) {
	var pf flatjson.TablePrinter
	pf = flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		return flatjson.TableField(ctx, td, 0, "child", pf)
	})

	wire := buildNestedChain(flatjson.MaxLevels + 5)
	var out bytes.Buffer
	ctx := flatjson.NewStreamContext(&out, flatjson.Options{})
	n, err := flatjson.TableAsRoot(ctx, wire, "", pf)
	if n != -1 {
		t.Fatalf("n = %d, want -1", n)
	}
	if !errors.Is(err, flatjson.ErrDeepRecursion) {
		t.Fatalf("err = %v, want ErrDeepRecursion", err)
	}
}

// A chain within the default bound must succeed.
func TestDepthBoundWithinLimit(t *testing.T) {
	var pf flatjson.TablePrinter
	pf = flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		return flatjson.TableField(ctx, td, 0, "child", pf)
	})

	wire := buildNestedChain(10)
	var out bytes.Buffer
	ctx := flatjson.NewStreamContext(&out, flatjson.Options{})
	if _, err := flatjson.TableAsRoot(ctx, wire, "", pf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
