package sqldialect

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestQuoteIdentifier(t *testing.T) {
	d := Generic()

	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{"plain identifier unchanged", "abc123", "abc123"},
		{"reserved keyword quoted", "Select", `"Select"`},
		{"reserved type quoted", "varchar", `"varchar"`},
		{"invalid start char quoted", "1abc", `"1abc"`},
		{"invalid body char quoted", "my col", `"my col"`},
		{"underscore body allowed", "my_col", "my_col"},
		{"empty string never quoted", "", ""},
		{"already quoted unchanged", `"Select"`, `"Select"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.QuoteIdentifier(tt.identifier, false, false))
		})
	}
}

func TestQuoteIdentifierFunctionNotReserved(t *testing.T) {
	// Functions share the reserved word set but do not force quoting;
	// only keywords, types and other reservations do.
	d := Generic()
	assert.Equal(t, KeywordTypeFunction, d.Keywords.Classify("abs"))
	assert.Equal(t, "abs", d.QuoteIdentifier("abs", false, false))
}

func TestQuoteIdentifierForceQuotes(t *testing.T) {
	d := Generic()
	assert.Equal(t, `"abc"`, d.QuoteIdentifier("abc", false, true))
	// Forcing quotes on an already quoted identifier stays a no-op.
	assert.Equal(t, `"abc"`, d.QuoteIdentifier(`"abc"`, false, true))
}

func TestQuoteIdentifierCaseSensitive(t *testing.T) {
	tests := []struct {
		name         string
		unquotedCase IdentifierCase
		insensitive  bool
		identifier   string
		wantQuoted   bool
	}{
		{"upper storage, mixed input", CaseUpper, false, "MixedCase", true},
		{"upper storage, upper input", CaseUpper, false, "MIXEDCASE", false},
		{"lower storage, mixed input", CaseLower, false, "Users", true},
		{"lower storage, lower input", CaseLower, false, "users", false},
		{"mixed storage never mismatches", CaseMixed, false, "MixedCase", false},
		{"case-insensitive lookup disables check", CaseUpper, true, "MixedCase", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Generic()
			d.UnquotedCase = tt.unquotedCase
			d.CaseInsensitiveNameLookup = tt.insensitive

			got := d.QuoteIdentifier(tt.identifier, true, false)
			if tt.wantQuoted {
				assert.Equal(t, `"`+tt.identifier+`"`, got)
			} else {
				assert.Equal(t, tt.identifier, got)
			}
		})
	}
}

func TestQuoteIdentifierCaseIgnoredWithoutFlag(t *testing.T) {
	d := Generic()
	d.UnquotedCase = CaseUpper
	// Without forceCaseSensitive a folding identifier stays unquoted.
	assert.Equal(t, "MixedCase", d.QuoteIdentifier("MixedCase", false, false))
}

func TestQuoteIdentifierNoQuotingSupport(t *testing.T) {
	d := Generic()
	d.IdentifierQuotes = nil

	assert.Equal(t, "Select", d.QuoteIdentifier("Select", true, true))
	assert.False(t, d.IsQuotedIdentifier(`"Select"`))
}

func TestQuoteIdempotent(t *testing.T) {
	d := Generic()
	for _, s := range []string{"abc", "Select", "my col", "1abc", `it"s`} {
		once := d.QuoteIdentifier(s, true, true)
		assert.Equal(t, once, d.QuoteIdentifier(once, true, true))
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	d := Generic()
	for _, s := range []string{"abc", "Select", "my col", `it"s`, "x"} {
		assert.Equal(t, s, d.UnquoteIdentifier(d.QuoteIdentifier(s, true, true)))
	}
}

func TestUnquoteIdentifier(t *testing.T) {
	d := Generic()

	tests := []struct {
		name       string
		identifier string
		want       string
	}{
		{"quoted", `"users"`, "users"},
		{"doubled quote unescaped", `"it""s"`, `it"s`},
		{"not quoted", "users", "users"},
		{"lone quote char", `"`, `"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.UnquoteIdentifier(tt.identifier))
		})
	}
}

func TestSQLiteQuotePairs(t *testing.T) {
	d := SQLite()

	// Every configured pair is recognized on input.
	assert.True(t, d.IsQuotedIdentifier(`"users"`))
	assert.True(t, d.IsQuotedIdentifier("[users]"))
	assert.True(t, d.IsQuotedIdentifier("`users`"))
	// The first pair is used for output.
	assert.Equal(t, `"order"`, d.QuoteIdentifier("order", false, false))
	assert.Equal(t, "users", d.UnquoteIdentifier("[users]"))
}

func TestMySQLBacktickQuoting(t *testing.T) {
	d := MySQL()
	assert.Equal(t, "`order`", d.QuoteIdentifier("order", false, false))
	assert.Equal(t, "order", d.UnquoteIdentifier("`order`"))
	assert.True(t, d.IsQuotedIdentifier(`"order"`))
}
