package sqldialect

import "strings"

// IdentifierCase describes how an engine stores identifiers in its catalog.
type IdentifierCase int

const (
	CaseMixed IdentifierCase = iota
	CaseUpper
	CaseLower
)

// Apply folds s the way the engine would store it.
func (c IdentifierCase) Apply(s string) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// String returns the string representation of IdentifierCase
func (c IdentifierCase) String() string {
	switch c {
	case CaseUpper:
		return "UPPER"
	case CaseLower:
		return "LOWER"
	default:
		return "MIXED"
	}
}

// UsageLevel describes where catalog/schema qualifiers apply.
type UsageLevel int

const (
	UsageNone UsageLevel = 0
	UsageDML  UsageLevel = 1
	UsageDDL  UsageLevel = 2
	UsageAll  UsageLevel = UsageDML | UsageDDL
)

// MultiRowInsertMode describes how an engine accepts multi-row inserts.
type MultiRowInsertMode int

const (
	MultiRowInsertNotSupported MultiRowInsertMode = iota
	MultiRowInsertGroupRows                       // INSERT INTO t VALUES (...), (...)
	MultiRowInsertPlainQueries                    // one INSERT statement per row
	MultiRowInsertAll                             // INSERT ALL ... (Oracle)
)

// String returns the string representation of MultiRowInsertMode
func (m MultiRowInsertMode) String() string {
	switch m {
	case MultiRowInsertGroupRows:
		return "group_rows"
	case MultiRowInsertPlainQueries:
		return "plain_queries"
	case MultiRowInsertAll:
		return "insert_all"
	default:
		return "not_supported"
	}
}

// Feature identifiers understood by FeatureSource implementations.
const (
	FeatureMaxStringLength = "max-string-length"
)

// FeatureSource exposes engine-reported capability values keyed by a
// feature identifier. A feature the engine does not report is returned
// with ok=false.
type FeatureSource interface {
	DataSourceFeature(name string) (value int, ok bool)
}
