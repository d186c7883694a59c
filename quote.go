package sqldialect

import "strings"

// IsQuotedIdentifier reports whether identifier is already delimited by
// one of the dialect's identifier quote pairs.
func (d *Dialect) IsQuotedIdentifier(identifier string) bool {
	for _, pair := range d.IdentifierQuotes {
		if strings.HasPrefix(identifier, pair[0]) && strings.HasSuffix(identifier, pair[1]) &&
			len(identifier) >= len(pair[0])+len(pair[1]) {
			return true
		}
	}
	return false
}

// QuoteIdentifier returns identifier quoted for this dialect when
// necessary. Already-quoted identifiers pass through unchanged, as does
// everything when the dialect has no identifier quoting. forceCaseSensitive
// additionally quotes identifiers whose case would not survive the
// engine's unquoted case folding; forceQuotes quotes unconditionally.
func (d *Dialect) QuoteIdentifier(identifier string, forceCaseSensitive, forceQuotes bool) string {
	if identifier == "" || d.IsQuotedIdentifier(identifier) {
		return identifier
	}
	if len(d.IdentifierQuotes) == 0 {
		return identifier
	}
	if d.MustQuoteIdentifier(identifier, forceCaseSensitive) || forceQuotes {
		return d.quoteIdentifier(identifier)
	}
	return identifier
}

// MustQuoteIdentifier reports whether identifier cannot be written
// unquoted: it conflicts with a reserved word, starts with an invalid
// character, contains invalid body characters, or (with
// forceCaseSensitive) its case differs from the engine's unquoted
// storage case.
func (d *Dialect) MustQuoteIdentifier(identifier string, forceCaseSensitive bool) bool {
	if identifier == "" {
		return false
	}

	switch d.Keywords.Classify(identifier) {
	case KeywordTypeKeyword, KeywordTypeType, KeywordTypeOther:
		if d.QuoteReservedWords {
			return true
		}
	}

	runes := []rune(identifier)
	if !d.IsValidIdentifierStart(runes[0]) {
		return true
	}

	if forceCaseSensitive && !d.CaseInsensitiveNameLookup {
		// Quote whenever the actual case differs from how the engine
		// stores unquoted identifiers, otherwise the name would fold.
		switch d.UnquotedCase {
		case CaseUpper:
			if identifier != strings.ToUpper(identifier) {
				return true
			}
		case CaseLower:
			if identifier != strings.ToLower(identifier) {
				return true
			}
		}
	}

	for _, r := range runes[1:] {
		if !d.IsValidIdentifierPart(r) {
			return true
		}
	}

	return false
}

// quoteIdentifier wraps identifier in the default quote pair, doubling
// any embedded quote character that is its own closing token.
func (d *Dialect) quoteIdentifier(identifier string) string {
	for _, pair := range d.IdentifierQuotes {
		open, end := pair[0], pair[1]
		if open == end && (open == `"` || open == "'") && strings.Contains(identifier, open) {
			identifier = strings.ReplaceAll(identifier, open, open+open)
		}
	}
	return d.IdentifierQuotes[0][0] + identifier + d.IdentifierQuotes[0][1]
}

// UnquoteIdentifier strips a recognized surrounding quote pair and
// reverses doubled-quote escaping. Unquoted input is returned unchanged.
func (d *Dialect) UnquoteIdentifier(identifier string) string {
	quotes := d.IdentifierQuotes
	if len(quotes) == 0 {
		quotes = DefaultIdentifierQuotes
	}
	for _, pair := range quotes {
		open, end := pair[0], pair[1]
		if len(identifier) > len(open)+len(end) &&
			strings.HasPrefix(identifier, open) && strings.HasSuffix(identifier, end) {
			identifier = identifier[len(open) : len(identifier)-len(end)]
			if open == end && (open == `"` || open == "'") {
				identifier = strings.ReplaceAll(identifier, open+open, open)
			}
			return identifier
		}
	}
	return identifier
}
