package sqldialect

import "strings"

// Default tables used by NewDialect. Passed into construction explicitly
// so derived profiles can replace them without hidden shared state.
var (
	DefaultIdentifierQuotes       = [][2]string{{`"`, `"`}}
	DefaultStringQuotes           = [][2]string{{"'", "'"}}
	DefaultLineComments           = []string{"--"}
	DefaultMultiLineComment       = [2]string{"/*", "*/"}
	DefaultScriptDelimiters       = []string{";"}
	DefaultQueryKeywords          = []string{"SELECT"}
	DefaultDMLKeywords            = []string{"SELECT", "INSERT", "UPDATE", "DELETE"}
	DefaultDDLKeywords            = []string{"CREATE", "ALTER", "DROP", "TRUNCATE"}
	DefaultNonTransactionKeywords = []string{"SELECT", "SHOW", "USE", "SET", "EXPLAIN"}
)

// SQL92Keywords is the common reserved word vocabulary every profile
// starts from.
var SQL92Keywords = []string{
	"ALL", "ALTER", "AND", "AS", "ASC", "BEGIN", "BETWEEN", "BY",
	"CASCADE", "CASE", "CHECK", "COLUMN", "COMMIT", "CONSTRAINT",
	"CREATE", "CROSS", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP",
	"DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END",
	"EXCEPT", "EXISTS", "EXPLAIN", "FOREIGN", "FROM", "FULL", "GRANT",
	"GROUP", "HAVING", "IN", "INDEX", "INNER", "INSERT", "INTERSECT",
	"INTO", "IS", "JOIN", "KEY", "LEFT", "LIKE", "LIMIT", "MERGE",
	"NATURAL", "NOT", "NULL", "OFFSET", "ON", "OR", "ORDER", "OUTER",
	"PRIMARY", "REFERENCES", "RESTRICT", "REVOKE", "RIGHT", "ROLLBACK",
	"SAVEPOINT", "SELECT", "SET", "SHOW", "TABLE", "THEN", "TO",
	"TRANSACTION", "TRUNCATE", "UNION", "UNIQUE", "UPDATE", "USE",
	"USING", "VALUES", "VIEW", "WHEN", "WHERE", "WITH",
}

// SQL92Functions are the common built-in function names.
var SQL92Functions = []string{
	"ABS", "AVG", "CAST", "COALESCE", "CONCAT", "COUNT", "LENGTH",
	"LOWER", "MAX", "MIN", "NULLIF", "POSITION", "ROUND", "SUBSTRING",
	"SUM", "TRIM", "UPPER",
}

// SQL92Types are the common built-in data type names.
var SQL92Types = []string{
	"BIGINT", "BINARY", "BIT", "BLOB", "BOOLEAN", "CHAR", "CHARACTER",
	"CLOB", "DATE", "DECIMAL", "DOUBLE", "FLOAT", "INT", "INTEGER",
	"INTERVAL", "NCHAR", "NUMERIC", "REAL", "SMALLINT", "TEXT", "TIME",
	"TIMESTAMP", "VARBINARY", "VARCHAR",
}

func baseRegistry() *RegistryBuilder {
	b := NewRegistryBuilder()
	b.AddKeywords(SQL92Keywords...)
	b.AddFunctions(SQL92Functions...)
	b.AddTypes(SQL92Types...)
	return b
}

// Generic returns the standard SQL profile used when nothing better is
// known about the engine.
func Generic() *Dialect {
	d := NewDialect("generic")
	d.Keywords = baseRegistry().Build()
	d.TransactionCommitKeywords = []string{"COMMIT"}
	d.TransactionRollbackKeywords = []string{"ROLLBACK"}
	d.TestSQL = "SELECT 1"
	return d
}

// Postgres returns the PostgreSQL profile.
func Postgres() *Dialect {
	d := NewDialect("postgres")
	b := baseRegistry()
	b.AddKeywords("CONCURRENTLY", "ILIKE", "LATERAL", "RETURNING", "VACUUM", "WINDOW")
	b.AddFunctions("ARRAY_AGG", "GENERATE_SERIES", "STRING_AGG", "TO_CHAR", "TO_DATE", "TO_TIMESTAMP")
	b.AddTypes("BIGSERIAL", "BYTEA", "CIDR", "INET", "JSON", "JSONB", "SERIAL", "SMALLSERIAL", "TIMESTAMPTZ", "UUID")
	d.Keywords = b.Build()

	d.UnquotedCase = CaseLower
	d.ExecuteKeywords = []string{"CALL"}
	d.SupportsAliasInSelect = true
	d.SupportsTableDropCascade = true
	d.SupportsNestedComments = true
	d.BlockBounds = [][2]string{{"BEGIN", "END"}}
	d.BlockHeaders = []string{"DECLARE"}
	d.SchemaUsage = UsageAll
	d.MultiRowInsertMode = MultiRowInsertGroupRows
	d.TransactionCommitKeywords = []string{"COMMIT"}
	d.TransactionRollbackKeywords = []string{"ROLLBACK"}
	d.ParameterPrefixes = []string{"$"}
	d.TestSQL = "SELECT 1"
	return d
}

// MySQL returns the MySQL/MariaDB profile.
func MySQL() *Dialect {
	d := NewDialect("mysql")
	b := baseRegistry()
	b.AddKeywords("AUTO_INCREMENT", "DATABASES", "REPLACE", "STRAIGHT_JOIN", "TABLES", "UNSIGNED", "ZEROFILL")
	b.AddFunctions("CONCAT_WS", "DATE_FORMAT", "GROUP_CONCAT", "IFNULL", "LAST_INSERT_ID")
	b.AddTypes("DATETIME", "ENUM", "JSON", "LONGTEXT", "MEDIUMINT", "MEDIUMTEXT", "TINYINT", "TINYTEXT", "YEAR")
	d.Keywords = b.Build()

	d.IdentifierQuotes = [][2]string{{"`", "`"}, {`"`, `"`}}
	d.UnquotedCase = CaseMixed
	d.CaseInsensitiveNameLookup = true
	d.LineComments = []string{"--", "#"}
	d.ExecuteKeywords = []string{"CALL"}
	d.DelimiterRedefiner = "DELIMITER"
	d.StringEscapeCharacter = '\\'
	// MySQL escapes backslashes as well as quote characters.
	d.EscapeStringFunc = func(s string) string {
		return strings.NewReplacer(`\`, `\\`, "'", "''").Replace(s)
	}
	d.UnescapeStringFunc = func(s string) string {
		return strings.NewReplacer(`\\`, `\`, "''", "'").Replace(s)
	}
	d.CatalogUsage = UsageAll
	d.MultiRowInsertMode = MultiRowInsertGroupRows
	d.TransactionCommitKeywords = []string{"COMMIT"}
	d.TransactionRollbackKeywords = []string{"ROLLBACK"}
	d.DualTableName = "DUAL"
	d.TestSQL = "SELECT 1"
	return d
}

// Oracle returns the Oracle Database profile.
func Oracle() *Dialect {
	d := NewDialect("oracle")
	b := baseRegistry()
	b.AddKeywords("CONNECT", "DUAL", "MINUS", "PRIOR", "ROWID", "ROWNUM", "START")
	b.AddFunctions("DECODE", "LISTAGG", "NVL", "NVL2", "SYSDATE", "TO_CHAR", "TO_DATE", "TO_NUMBER", "TRUNC")
	b.AddTypes("BFILE", "LONG", "NCLOB", "NUMBER", "NVARCHAR2", "RAW", "VARCHAR2")
	d.Keywords = b.Build()

	d.UnquotedCase = CaseUpper
	d.ExecuteKeywords = []string{"CALL"}
	d.SupportsTableDropCascade = true
	d.BlockBounds = [][2]string{{"BEGIN", "END"}, {"IF", "END IF"}, {"LOOP", "END LOOP"}}
	d.BlockHeaders = []string{"DECLARE"}
	d.InnerBlockPrefixes = []string{"AS", "IS"}
	d.DelimiterAfterBlock = true
	d.SchemaUsage = UsageAll
	d.MultiRowInsertMode = MultiRowInsertAll
	d.TransactionCommitKeywords = []string{"COMMIT"}
	d.TransactionRollbackKeywords = []string{"ROLLBACK"}
	d.DualTableName = "DUAL"
	d.TestSQL = "SELECT 1 FROM DUAL"
	return d
}

// SQLite returns the SQLite profile.
func SQLite() *Dialect {
	d := NewDialect("sqlite")
	b := baseRegistry()
	b.AddKeywords("ATTACH", "AUTOINCREMENT", "DETACH", "GLOB", "PRAGMA", "REINDEX", "REPLACE", "VACUUM", "WITHOUT")
	b.AddFunctions("CHANGES", "IFNULL", "INSTR", "PRINTF", "RANDOM", "TOTAL_CHANGES")
	d.Keywords = b.Build()

	d.IdentifierQuotes = [][2]string{{`"`, `"`}, {"[", "]"}, {"`", "`"}}
	d.UnquotedCase = CaseMixed
	d.CaseInsensitiveNameLookup = true
	d.NonTransactionKeywords = append([]string{"PRAGMA", "ANALYZE"}, DefaultNonTransactionKeywords...)
	d.MultiRowInsertMode = MultiRowInsertGroupRows
	d.TransactionCommitKeywords = []string{"COMMIT", "END"}
	d.TransactionRollbackKeywords = []string{"ROLLBACK"}
	d.TestSQL = "SELECT 1"
	return d
}

// ProfileNames lists the built-in profiles accepted by ProfileByName.
var ProfileNames = []string{"generic", "postgres", "mysql", "oracle", "sqlite"}

// ProfileByName returns the built-in profile registered under name.
// Common aliases (postgresql, mariadb, sqlite3) resolve to their primary
// profile.
func ProfileByName(name string) (*Dialect, bool) {
	switch strings.ToLower(name) {
	case "generic", "standard", "sql92", "":
		return Generic(), true
	case "postgres", "postgresql", "pgsql":
		return Postgres(), true
	case "mysql", "mariadb":
		return MySQL(), true
	case "oracle":
		return Oracle(), true
	case "sqlite", "sqlite3":
		return SQLite(), true
	default:
		return nil, false
	}
}
