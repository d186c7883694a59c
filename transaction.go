package sqldialect

import "strings"

// IsTransactionModifying reports whether executing query should be
// considered part of an open transaction requiring eventual commit or
// rollback.
//
// The decision is conservative in both directions: statements whose
// leading keyword is whitelisted in NonTransactionKeywords (SELECT, SHOW,
// USE, SET, EXPLAIN by default) are read-only, as are statements whose
// leading word is not a registered keyword at all (metadata reads,
// engine-specific verbs the dialect never registered). Every other
// registered keyword - INSERT, UPDATE, DELETE, CREATE and the rest of the
// DML/DDL vocabulary - is transaction-modifying by omission from the
// whitelist.
func (d *Dialect) IsTransactionModifying(query string) bool {
	query = d.StripComments(query)
	if query == "" {
		// Nothing left after comment stripping; metadata reads and
		// comment-only scripts never open a transaction.
		return false
	}

	keyword := d.FirstKeyword(query)
	if keyword == "" {
		return false
	}
	keyword = strings.ToUpper(keyword)

	if d.Keywords.Classify(keyword) != KeywordTypeKeyword {
		return false
	}
	return !d.IsNonTransactionKeyword(keyword)
}

// IsTransactionCommit reports whether keyword is one of the dialect's
// transaction commit verbs.
func (d *Dialect) IsTransactionCommit(keyword string) bool {
	return containsFold(d.TransactionCommitKeywords, keyword)
}

// IsTransactionRollback reports whether keyword is one of the dialect's
// transaction rollback verbs.
func (d *Dialect) IsTransactionRollback(keyword string) bool {
	return containsFold(d.TransactionRollbackKeywords, keyword)
}

func containsFold(words []string, word string) bool {
	for _, w := range words {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}
