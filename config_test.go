package sqldialect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseProfile(t *testing.T) {
	data := []byte(`
name: cockroach
base: postgres
keywords:
  - IMPORT
  - EXPORT
remove_keywords:
  - MERGE
identifier_quotes:
  - ['"']
execute_keywords:
  - CALL
unquoted_case: lower
quote_reserved_words: true
`)

	d, err := ParseProfile(data)
	assert.NoError(t, err)
	assert.Equal(t, "cockroach", d.Name)
	assert.Equal(t, CaseLower, d.UnquotedCase)
	assert.Equal(t, [][2]string{{`"`, `"`}}, d.IdentifierQuotes)
	assert.Equal(t, KeywordTypeKeyword, d.Keywords.Classify("IMPORT"))
	assert.Equal(t, KeywordTypeNone, d.Keywords.Classify("MERGE"))
	// Untouched base vocabulary survives.
	assert.Equal(t, KeywordTypeKeyword, d.Keywords.Classify("SELECT"))
}

func TestParseProfileDefaultsFromBase(t *testing.T) {
	d, err := ParseProfile([]byte("base: mysql\n"))
	assert.NoError(t, err)
	assert.Equal(t, "mysql", d.Name)
	assert.Equal(t, "DELIMITER", d.DelimiterRedefiner)
}

func TestParseProfileOverridesCallPolicy(t *testing.T) {
	d, err := ParseProfile([]byte(`
base: generic
execute_keywords: [EXEC]
bracketed_exec_call: true
call_includes_out_parameters: false
procedure_call_end_clause: "INTO :result"
`))
	assert.NoError(t, err)
	assert.True(t, d.BracketedExecCall)
	assert.False(t, d.CallIncludesOutParameters)
	assert.Equal(t, "INTO :result", d.ProcedureCallEndClause)
}

func TestParseProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown base", "base: db2\n", ErrUnknownDialect},
		{"empty document", "   \n", ErrEmptyProfile},
		{"bad identifier case", "base: generic\nunquoted_case: sideways\n", ErrInvalidIdentifierCase},
		{"bad quote pair", "base: generic\nidentifier_quotes:\n  - ['a', 'b', 'c']\n", ErrInvalidQuotePair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.data))
			assert.IsError(t, err, tt.want)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	err := os.WriteFile(path, []byte("name: custom\nbase: sqlite\n"), 0o644)
	assert.NoError(t, err)

	d, err := LoadProfile(path)
	assert.NoError(t, err)
	assert.Equal(t, "custom", d.Name)
	assert.True(t, d.CaseInsensitiveNameLookup)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
