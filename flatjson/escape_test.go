package flatjson_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/borissey/flatcc/flatjson"
	"github.com/borissey/flatcc/flatjson/internal/fbbuild"
)

// Property 5: escape correctness. Every string in the safe printable range
// plus the named control characters must round-trip byte-for-byte through
// a standard JSON parser.
func TestEscapeRoundTrip(t *testing.T) {
	var payload []byte
	for b := 0x20; b <= 0x7E; b++ {
		payload = append(payload, byte(b))
	}
	payload = append(payload, '\t', '\n', '\r', '\f', '\b', '"', '\\')

	b := fbbuild.New()
	strPos := b.String(string(payload))
	tablePos := b.Table(8, []uint16{4}, func(tablePos uint32, table []byte) {
		fbbuild.PutOffsetAt(table, tablePos, 4, strPos)
	})
	wire := b.Root(tablePos)

	pf := flatjson.TablePrinterFunc(func(ctx *flatjson.Context, td *flatjson.TableDescriptor) error {
		flatjson.StringField(ctx, td, 0, "s")
		return nil
	})

	var out bytes.Buffer
	ctx := flatjson.NewStreamContext(&out, flatjson.Options{})
	if _, err := flatjson.TableAsRoot(ctx, wire, "", pf); err != nil {
		t.Fatalf("TableAsRoot: %v", err)
	}

	var v struct {
		S string `json:"s"`
	}
	if err := json.Unmarshal(out.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if v.S != string(payload) {
		t.Fatalf("round-trip mismatch:\n got %q\nwant %q", v.S, string(payload))
	}
}
