package flatjson_test

import (
	"errors"
	"testing"

	"github.com/borissey/flatcc/flatjson"
	"github.com/borissey/flatcc/flatjson/internal/fbbuild"
)

// Property 1: buffer safety. A fixed-size sink smaller than RESERVE must
// report overflow rather than corrupt memory or silently truncate.
func TestFixedBufferOverflow(t *testing.T) {
	b := fbbuild.New()
	tablePos := b.Table(4, nil, nil)
	wire := b.Root(tablePos)

	out := make([]byte, 4)
	ctx := flatjson.NewFixedContext(out, flatjson.Options{Indent: 2})
	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error { return nil })

	n, err := flatjson.TableAsRoot(ctx, wire, "", pf)
	if n != -1 {
		t.Fatalf("n = %d, want -1", n)
	}
	if !errors.Is(err, flatjson.ErrOverflow) {
		t.Fatalf("err = %v, want ErrOverflow", err)
	}
}

// A fixed buffer with ample room must succeed and report the exact length.
func TestFixedBufferSuccess(t *testing.T) {
	b := fbbuild.New()
	tablePos := b.Table(4, nil, nil)
	wire := b.Root(tablePos)

	out := make([]byte, 0, 4096)
	ctx := flatjson.NewFixedContext(out, flatjson.Options{})
	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error { return nil })

	n, err := flatjson.TableAsRoot(ctx, wire, "", pf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("{}\n") {
		t.Fatalf("n = %d, want %d", n, len("{}\n"))
	}
}
