package sqldialect

import (
	"strings"
	"unicode"
)

// StripComments removes single-line and multi-line comments from sql
// using the dialect's comment delimiters, leaving string literals and
// quoted identifiers untouched. The result is trimmed of surrounding
// whitespace. Unterminated literals and comments swallow the rest of the
// input rather than failing.
func (d *Dialect) StripComments(sql string) string {
	var out strings.Builder
	out.Grow(len(sql))

	for i := 0; i < len(sql); {
		if open, end, ok := matchQuote(sql[i:], d.StringQuotes); ok {
			j := skipQuoted(sql, i, open, end, d.StringEscapeCharacter)
			out.WriteString(sql[i:j])
			i = j
			continue
		}
		if open, end, ok := matchQuote(sql[i:], d.IdentifierQuotes); ok {
			// Escape characters apply to string literals only; quoted
			// identifiers know nothing but doubled delimiters.
			j := skipQuoted(sql, i, open, end, 0)
			out.WriteString(sql[i:j])
			i = j
			continue
		}
		if marker := matchMarker(sql[i:], d.LineComments); marker != "" {
			j := i + len(marker)
			for j < len(sql) && sql[j] != '\n' {
				j++
			}
			i = j
			continue
		}
		if start := d.MultiLineComment[0]; start != "" && strings.HasPrefix(sql[i:], start) {
			i = d.skipBlockComment(sql, i)
			continue
		}
		out.WriteByte(sql[i])
		i++
	}

	return strings.TrimSpace(out.String())
}

// FirstKeyword extracts the leading keyword token of comment-stripped
// statement text. It returns "" when the text holds no word at all.
func (d *Dialect) FirstKeyword(sql string) string {
	runes := []rune(sql)

	start := -1
	for i, r := range runes {
		if unicode.IsLetter(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := start + 1
	for end < len(runes) {
		r := runes[end]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		end++
	}

	return string(runes[start:end])
}

func (d *Dialect) skipBlockComment(sql string, i int) int {
	start, end := d.MultiLineComment[0], d.MultiLineComment[1]
	depth := 1
	i += len(start)
	for i < len(sql) {
		switch {
		case strings.HasPrefix(sql[i:], end):
			i += len(end)
			depth--
			if depth == 0 {
				return i
			}
		case d.SupportsNestedComments && strings.HasPrefix(sql[i:], start):
			i += len(start)
			depth++
		default:
			i++
		}
	}
	return i
}

// matchQuote reports which quote pair, if any, opens at the start of s.
func matchQuote(s string, pairs [][2]string) (open, end string, ok bool) {
	for _, pair := range pairs {
		if pair[0] != "" && strings.HasPrefix(s, pair[0]) {
			return pair[0], pair[1], true
		}
	}
	return "", "", false
}

// matchMarker reports which marker, if any, prefixes s.
func matchMarker(s string, markers []string) string {
	for _, m := range markers {
		if m != "" && strings.HasPrefix(s, m) {
			return m
		}
	}
	return ""
}

// skipQuoted advances past a quoted region opened at i, honoring
// doubled-delimiter escaping for self-paired quotes and, when esc is
// non-zero, the dialect's escape character (the escaped character never
// closes the region).
func skipQuoted(sql string, i int, open, end string, esc rune) int {
	j := i + len(open)
	for j < len(sql) {
		if esc != 0 && rune(sql[j]) == esc {
			j += 2
			if j > len(sql) {
				j = len(sql)
			}
			continue
		}
		if strings.HasPrefix(sql[j:], end) {
			if open == end && strings.HasPrefix(sql[j:], end+end) {
				j += 2 * len(end)
				continue
			}
			return j + len(end)
		}
		j++
	}
	return j
}
