package sqldialect

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestEscapeString(t *testing.T) {
	d := Generic()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"no quotes", "hello", "hello"},
		{"single quote doubled", "it's", "it''s"},
		{"already doubled quote doubled again", "it''s", "it''''s"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.EscapeString(tt.value))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	d := Generic()
	for _, s := range []string{"", "plain", "it's", "''", "a'b'c"} {
		assert.Equal(t, s, d.UnescapeString(d.EscapeString(s)))
	}
}

func TestMySQLEscapeRoundTrip(t *testing.T) {
	d := MySQL()
	for _, s := range []string{"plain", "it's", `back\slash`, `mix\'ed`} {
		assert.Equal(t, s, d.UnescapeString(d.EscapeString(s)))
	}
	assert.Equal(t, `C:\\tmp`, d.EscapeString(`C:\tmp`))
}

func TestQuoteString(t *testing.T) {
	d := Generic()
	assert.Equal(t, "'hello'", d.QuoteString("hello"))
	assert.Equal(t, "'it''s'", d.QuoteString("it's"))
	assert.Equal(t, "''", d.QuoteString(""))
}

func TestUnquoteString(t *testing.T) {
	d := Generic()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"quoted literal", "'hello'", "hello"},
		{"escaped content", "'it''s'", "it's"},
		{"not a literal", "hello", "hello"},
		{"single quote char too short", "'", "'"},
		{"empty literal", "''", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.UnquoteString(tt.value))
		})
	}
}

func TestIsQuotedString(t *testing.T) {
	d := Generic()
	assert.True(t, d.IsQuotedString("'x'"))
	assert.True(t, d.IsQuotedString("''"))
	assert.False(t, d.IsQuotedString("'"))
	assert.False(t, d.IsQuotedString("x"))
}

func TestFormatScriptValue(t *testing.T) {
	d := Generic()
	col := ColumnType{TypeName: "VARCHAR", DataKind: DataKindString}

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", d.FormatScriptValue(col, "hello", "hello"))
	})

	t.Run("uuid becomes a quoted literal", func(t *testing.T) {
		id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
		got := d.FormatScriptValue(col, id, id.String())
		assert.Equal(t, "'01234567-89ab-cdef-0123-456789abcdef'", got)
	})

	t.Run("decimal keeps its text form", func(t *testing.T) {
		v := decimal.RequireFromString("12.50")
		assert.Equal(t, "12.50", d.FormatScriptValue(col, v, "12.50"))
	})

	t.Run("dialect override wins", func(t *testing.T) {
		d := Generic()
		d.FormatValueFunc = func(col ColumnType, value any, text string) (string, bool) {
			if col.DataKind == DataKindBinary {
				return "X'" + text + "'", true
			}
			return "", false
		}
		binary := ColumnType{TypeName: "RAW", DataKind: DataKindBinary}
		assert.Equal(t, "X'CAFE'", d.FormatScriptValue(binary, []byte{0xca, 0xfe}, "CAFE"))
		// Unclaimed values fall back to the default policy.
		id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
		assert.Equal(t, "'01234567-89ab-cdef-0123-456789abcdef'",
			d.FormatScriptValue(col, id, id.String()))
	})
}
