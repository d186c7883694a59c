package sqldialect

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EscapeString doubles every literal quote character in value. Dialects
// with backslash escaping override via EscapeStringFunc.
func (d *Dialect) EscapeString(value string) string {
	if d.EscapeStringFunc != nil {
		return d.EscapeStringFunc(value)
	}
	return strings.ReplaceAll(value, "'", "''")
}

// UnescapeString reverses EscapeString. Empty input yields empty output.
func (d *Dialect) UnescapeString(value string) string {
	if d.UnescapeStringFunc != nil {
		return d.UnescapeStringFunc(value)
	}
	return strings.ReplaceAll(value, "''", "'")
}

// QuoteString wraps the escaped value in literal quote characters.
func (d *Dialect) QuoteString(value string) string {
	return "'" + d.EscapeString(value) + "'"
}

// IsQuotedString reports whether value is a quoted string literal.
func (d *Dialect) IsQuotedString(value string) bool {
	return len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\''
}

// UnquoteString strips the literal quotes and unescapes the content.
// Non-literal input is returned unchanged.
func (d *Dialect) UnquoteString(value string) string {
	if !d.IsQuotedString(value) {
		return value
	}
	return d.UnescapeString(value[1 : len(value)-1])
}

// FormatScriptValue renders a runtime value for inclusion in generated
// script text. The default policy keeps the provided text representation
// except for opaque identifier types (UUIDs), which must appear as quoted
// string literals; numeric types such as decimals keep their plain text
// form. Dialects claim engine-specific cases (binary, date/time) through
// FormatValueFunc.
func (d *Dialect) FormatScriptValue(col ColumnType, value any, text string) string {
	if d.FormatValueFunc != nil {
		if formatted, ok := d.FormatValueFunc(col, value, text); ok {
			return formatted
		}
	}
	switch value.(type) {
	case uuid.UUID, *uuid.UUID:
		return d.QuoteString(text)
	case decimal.Decimal:
		return text
	}
	return text
}
