package flatjson

import (
	"strconv"
	"unicode/utf8"
)

// safeSet holds true for every ASCII byte that can appear inside a JSON
// string without further escaping: everything except the control
// characters (0-31), '"' and '\\'. Grounded verbatim on the teacher's
// ion/reader_escape.go safeSet table.
var safeSet = [utf8.RuneSelf]bool{}

func init() {
	for b := 0x20; b < utf8.RuneSelf; b++ {
		safeSet[b] = true
	}
	safeSet['"'] = false
	safeSet['\\'] = false
}

const hexDigits = "0123456789abcdef"

// writeEscapedString emits body as a quoted, escaped JSON string. Invalid
// UTF-8 is passed through unescaped by design (spec.md open question (b)):
// this emitter does not validate encoding, matching the teacher's own
// reader_escape.go, which only escapes bytes it specifically recognizes as
// unsafe ASCII and otherwise copies runs verbatim.
func (c *Context) writeEscapedString(body []byte) {
	c.writeByte('"')
	start := 0
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b >= utf8.RuneSelf || safeSet[b] {
			continue
		}
		if start < i {
			c.writeUnbounded(body[start:i])
		}
		c.writeByte('\\')
		switch b {
		case '\\', '"':
			c.writeByte(b)
		case '\n':
			c.writeByte('n')
		case '\r':
			c.writeByte('r')
		case '\t':
			c.writeByte('t')
		case '\f':
			c.writeByte('f')
		case '\b':
			c.writeByte('b')
		default:
			c.writeBounded([]byte{'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf]})
		}
		start = i + 1
	}
	if start < len(body) {
		c.writeUnbounded(body[start:])
	}
	c.writeByte('"')
}

// writeSymbol emits a field name or enum label: quoted unless
// Options.Unquote is set, in which case it is written bare. Symbols never
// need escaping in practice (schema identifiers are restricted character
// sets) but the same escaping path is reused for correctness on arbitrary
// input.
func (c *Context) writeSymbol(name string) {
	if c.opts.Unquote {
		c.writeUnbounded([]byte(name))
		return
	}
	c.writeEscapedString([]byte(name))
}

// EmitSymbol is writeSymbol exported for SymbolPrinter implementations
// defined outside this package: an enum's Print method renders its symbol
// text through the same quoting/escaping path a field name would use.
func (c *Context) EmitSymbol(name string) { c.writeSymbol(name) }

// writeIndent emits a newline plus level*Options.Indent spaces when
// indentation is enabled, or nothing (beyond the implicit flush checkpoint)
// when Options.Indent is zero, per spec.md §4.3.
func (c *Context) writeIndent() {
	if c.opts.Indent <= 0 {
		c.maybeFlush()
		return
	}
	c.writeByte('\n')
	n := c.level * c.opts.Indent
	for n > 0 {
		chunk := n
		if chunk > 64 {
			chunk = 64
		}
		c.writeUnbounded(spaces[:chunk])
		n -= chunk
	}
}

var spaces = [64]byte{
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ',
}

// beginField emits the leading comma (iff count>0, the decoupling
// mechanism of spec.md §4.4) and the field's indentation run. Callers call
// beginField only once they have already decided to emit the field (after
// any default skipping), and increment count themselves afterwards.
func (c *Context) beginField(count int) {
	if count > 0 {
		c.writeByte(',')
	}
	c.writeIndent()
}

// writeColon emits ':' and, when indentation is active, one trailing space.
func (c *Context) writeColon() {
	c.writeByte(':')
	if c.opts.Indent > 0 {
		c.writeByte(' ')
	}
}

func (c *Context) writeNull() { c.writeBounded([]byte("null")) }

func (c *Context) writeBool(b bool) {
	if b {
		c.writeBounded([]byte("true"))
	} else {
		c.writeBounded([]byte("false"))
	}
}

// appendInteger formats a signed or unsigned integer the way
// ion/reader.go's scratch.int/uint helpers do (strconv.Append*, base 10).
func appendInteger(dst []byte, u uint64, signed bool) []byte {
	if signed {
		return strconv.AppendInt(dst, int64(u), 10)
	}
	return strconv.AppendUint(dst, u, 10)
}

// appendFloat formats a float the way ion/reader.go's scratch.f32/f64
// helpers do, with the HexFloat option switched to Go's 'x' verb for the
// hexadecimal-float rendering named in spec.md §6.
func appendFloat(dst []byte, f float64, bits int, hex bool) []byte {
	verb := byte('g')
	if hex {
		verb = 'x'
	}
	return strconv.AppendFloat(dst, f, verb, -1, bits)
}
