package sqldialect

import (
	"strings"
	"unicode"
)

// Dialect is the syntax rule profile for one database engine. A profile
// is configured once at startup and treated as read-only afterwards, so
// a single value can be shared by any number of concurrent callers.
//
// Engine differences that are pure data live in fields; the few behaviors
// dialects override (identifier character classes, literal escaping,
// script value formatting) are strategy functions with nil meaning the
// standard SQL default.
type Dialect struct {
	Name string

	// Keywords is the classification registry for this dialect. Built
	// during construction, immutable afterwards.
	Keywords *KeywordRegistry

	// Identifier quoting. The first pair is used when quoting output;
	// every pair is recognized when detecting already-quoted input. An
	// empty table means the engine has no identifier quoting at all.
	IdentifierQuotes   [][2]string
	StringQuotes       [][2]string
	QuoteReservedWords bool

	// Case folding. UnquotedCase is how the catalog stores identifiers
	// written without quotes; QuotedCase how it stores quoted ones.
	// CaseInsensitiveNameLookup disables case-mismatch quoting entirely
	// (e.g. MySQL with lower_case_table_names != 0).
	UnquotedCase              IdentifierCase
	QuotedCase                IdentifierCase
	CaseInsensitiveNameLookup bool

	// Comments.
	LineComments           []string
	MultiLineComment       [2]string
	SupportsNestedComments bool
	SupportsCommentQuery   bool

	// Script structure.
	ScriptDelimiters    []string
	DelimiterRedefiner  string
	DelimiterAfterQuery bool
	DelimiterAfterBlock bool
	BlockBounds         [][2]string
	BlockHeaders        []string
	InnerBlockPrefixes  []string

	// Object naming.
	CatalogUsage     UsageLevel
	SchemaUsage      UsageLevel
	CatalogSeparator string
	StructSeparator  rune
	CatalogAtStart   bool

	// Statement vocabulary.
	QueryKeywords               []string
	ExecuteKeywords             []string
	DDLKeywords                 []string
	DMLKeywords                 []string
	NonTransactionKeywords      []string
	TransactionCommitKeywords   []string
	TransactionRollbackKeywords []string

	// Misc syntax capabilities.
	ParameterPrefixes        []string
	SearchStringEscape       string
	StringEscapeCharacter    rune // 0 means no escape character
	DualTableName            string
	TestSQL                  string
	SupportsSubqueries       bool
	SupportsAliasInSelect    bool
	SupportsAliasInUpdate    bool
	SupportsTableDropCascade bool
	SupportsOrderByIndex     bool
	SupportsNullability      bool
	MultiRowInsertMode       MultiRowInsertMode

	// KeywordIndents maps a keyword to the indent delta a formatter
	// should apply to the following line.
	KeywordIndents map[string]int

	// Procedure call synthesis.
	ProcedureCallEndClause    string // e.g. "INTO :result"
	BracketedExecCall         bool   // ODBC-style { call ... } syntax
	CallIncludesOutParameters bool

	// Strategy overrides. Nil falls back to the standard SQL behavior.
	ValidIdentifierStart func(r rune) bool
	ValidIdentifierPart  func(r rune) bool
	EscapeStringFunc     func(s string) string
	UnescapeStringFunc   func(s string) string
	// FormatValueFunc may claim a script value before the default
	// formatting applies; returning ok=false delegates to the default.
	FormatValueFunc func(col ColumnType, value any, text string) (formatted string, ok bool)
}

// NewDialect returns a profile with standard SQL defaults and an empty
// keyword registry. Callers fill in engine specifics and the registry
// before first use.
func NewDialect(name string) *Dialect {
	return &Dialect{
		Name:                      name,
		Keywords:                  NewRegistryBuilder().Build(),
		IdentifierQuotes:          DefaultIdentifierQuotes,
		StringQuotes:              DefaultStringQuotes,
		QuoteReservedWords:        true,
		UnquotedCase:              CaseUpper,
		QuotedCase:                CaseMixed,
		LineComments:              DefaultLineComments,
		MultiLineComment:          DefaultMultiLineComment,
		ScriptDelimiters:          DefaultScriptDelimiters,
		CatalogSeparator:          ".",
		StructSeparator:           '.',
		CatalogAtStart:            true,
		QueryKeywords:             DefaultQueryKeywords,
		DMLKeywords:               DefaultDMLKeywords,
		DDLKeywords:               DefaultDDLKeywords,
		NonTransactionKeywords:    DefaultNonTransactionKeywords,
		SupportsSubqueries:        true,
		SupportsOrderByIndex:      true,
		SupportsNullability:       true,
		CallIncludesOutParameters: true,
	}
}

// IsValidIdentifierStart reports whether r may begin an unquoted
// identifier.
func (d *Dialect) IsValidIdentifierStart(r rune) bool {
	if d.ValidIdentifierStart != nil {
		return d.ValidIdentifierStart(r)
	}
	return unicode.IsLetter(r)
}

// IsValidIdentifierPart reports whether r may appear after the first
// character of an unquoted identifier.
func (d *Dialect) IsValidIdentifierPart(r rune) bool {
	if d.ValidIdentifierPart != nil {
		return d.ValidIdentifierPart(r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// KeywordIndent returns the formatter indent delta registered for word,
// or 0.
func (d *Dialect) KeywordIndent(word string) int {
	return d.KeywordIndents[strings.ToUpper(word)]
}

// IsNonTransactionKeyword reports whether the upper-cased keyword is
// whitelisted as read-only for transaction classification.
func (d *Dialect) IsNonTransactionKeyword(keyword string) bool {
	for _, kw := range d.NonTransactionKeywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// IsDMLKeyword reports whether keyword opens a data manipulation
// statement in this dialect.
func (d *Dialect) IsDMLKeyword(keyword string) bool {
	return containsFold(d.DMLKeywords, keyword)
}

// IsDDLKeyword reports whether keyword opens a data definition
// statement in this dialect.
func (d *Dialect) IsDDLKeyword(keyword string) bool {
	return containsFold(d.DDLKeywords, keyword)
}
