package flatjson_test

import (
	"testing"

	"github.com/borissey/flatcc/flatjson"
)

func dumpFlags(t *testing.T, opts flatjson.Options, multiple bool, symbols ...string) string {
	t.Helper()
	ctx := flatjson.NewGrowableContext(64, opts)
	ctx.BeginEnumFlags(multiple)
	for i, s := range symbols {
		ctx.EnumFlag(i, s)
	}
	ctx.EndEnumFlags(multiple)
	out, _, err := ctx.FinalizeDynamicBuffer()
	if err != nil {
		t.Fatalf("FinalizeDynamicBuffer: %v", err)
	}
	return string(out)
}

// Quoted output (the default) always wraps the flag run in quotes,
// regardless of how many flags are set.
func TestEnumFlagsQuotedByDefault(t *testing.T) {
	if got := dumpFlags(t, flatjson.Options{}, false, "A"); got != "\"A\"\n" {
		t.Fatalf("got %q, want %q", got, "\"A\"\n")
	}
	if got := dumpFlags(t, flatjson.Options{}, true, "A", "B"); got != "\"A B\"\n" {
		t.Fatalf("got %q, want %q", got, "\"A B\"\n")
	}
}

// Unquote without AlwaysQuoteFlags leaves even a multi-flag run bare.
func TestEnumFlagsUnquoted(t *testing.T) {
	opts := flatjson.Options{Unquote: true}
	if got := dumpFlags(t, opts, false, "A"); got != "A\n" {
		t.Fatalf("got %q, want %q", got, "A\n")
	}
	if got := dumpFlags(t, opts, true, "A", "B"); got != "A B\n" {
		t.Fatalf("got %q, want %q", got, "A B\n")
	}
}

// AlwaysQuoteFlags re-quotes a multi-flag run under Unquote, but leaves a
// single-flag run bare (spec.md open question (c)).
func TestEnumFlagsAlwaysQuoteFlags(t *testing.T) {
	opts := flatjson.Options{Unquote: true, AlwaysQuoteFlags: true}
	if got := dumpFlags(t, opts, false, "A"); got != "A\n" {
		t.Fatalf("single flag: got %q, want %q", got, "A\n")
	}
	if got := dumpFlags(t, opts, true, "A", "B"); got != "\"A B\"\n" {
		t.Fatalf("multiple flags: got %q, want %q", got, "\"A B\"\n")
	}
}
