package sqldialect

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestIsTransactionModifying(t *testing.T) {
	d := Generic()

	tests := []struct {
		name string
		sql  string
		want bool
	}{
		{"select is read-only", "SELECT * FROM t", false},
		{"update behind comment is modifying", "  -- comment\nUPDATE t SET x=1", true},
		{"empty statement", "", false},
		{"comment only", "/* just a comment */", false},
		{"explain is read-only", "EXPLAIN SELECT 1", false},
		{"show is read-only", "SHOW TABLES", false},
		{"use is read-only", "USE mydb", false},
		{"set is read-only", "SET search_path TO app", false},
		{"insert is modifying", "INSERT INTO t VALUES (1)", true},
		{"delete is modifying", "DELETE FROM t", true},
		{"ddl is modifying", "CREATE TABLE t (id INT)", true},
		{"drop is modifying", "DROP TABLE t", true},
		{"lower case keyword", "update t set x=1", true},
		{"unregistered verb is read-only", "VACUUM FULL", false},
		{"function name is not a statement keyword", "ABS(1)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsTransactionModifying(tt.sql))
		})
	}
}

func TestIsTransactionModifyingPerDialect(t *testing.T) {
	t.Run("postgres registers vacuum", func(t *testing.T) {
		assert.True(t, Postgres().IsTransactionModifying("VACUUM FULL"))
	})

	t.Run("sqlite whitelists pragma", func(t *testing.T) {
		d := SQLite()
		assert.True(t, d.Keywords.Classify("PRAGMA") == KeywordTypeKeyword)
		assert.False(t, d.IsTransactionModifying("PRAGMA journal_mode=WAL"))
	})

	t.Run("mysql hash comment is stripped", func(t *testing.T) {
		assert.True(t, MySQL().IsTransactionModifying("# note\nUPDATE t SET x=1"))
	})
}

func TestTransactionControlKeywords(t *testing.T) {
	d := Generic()
	assert.True(t, d.IsTransactionCommit("commit"))
	assert.True(t, d.IsTransactionRollback("ROLLBACK"))
	assert.False(t, d.IsTransactionCommit("ROLLBACK"))

	sqlite := SQLite()
	assert.True(t, sqlite.IsTransactionCommit("END"))
}
