package flatjson

// BeginEnumFlags and EndEnumFlags bracket a flag-enum's rendering with a
// quote (spec.md §4.5 "Flag-enum delimiting", delimit_enum_flags(multiple)).
// Generated SymbolPrinter implementations for flag enums call these once per
// Print, with EnumFlag in between for each set bit; multiple reports whether
// more than one flag is set in this value.
//
// Quoting rules: a value is always quoted unless Options.Unquote is set, in
// which case it renders as a bare, space-separated identifier run — except
// that Options.AlwaysQuoteFlags forces quoting back on whenever multiple
// flags are present (space-separated bare identifiers are not valid as a
// single unquoted scalar; see spec.md open question (c)).
func (c *Context) BeginEnumFlags(multiple bool) {
	if c.quoteFlags(multiple) {
		c.writeByte('"')
	}
}

func (c *Context) EndEnumFlags(multiple bool) {
	if c.quoteFlags(multiple) {
		c.writeByte('"')
	}
}

func (c *Context) quoteFlags(multiple bool) bool {
	if !c.opts.Unquote {
		return true
	}
	return multiple && c.opts.AlwaysQuoteFlags
}

// EnumFlag emits one flag symbol, space-separated from any flag already
// emitted for the same value (count is the number of flags emitted so far
// for this value, starting at 0).
func (c *Context) EnumFlag(count int, symbol string) {
	if count > 0 {
		c.writeByte(' ')
	}
	c.writeUnbounded([]byte(symbol))
}
