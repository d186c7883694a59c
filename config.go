package sqldialect

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// ProfileConfig is the YAML document describing a dialect profile as an
// overlay over a built-in base profile. Loading happens during the
// single-threaded configuration phase; the resulting Dialect is immutable
// like any other profile.
type ProfileConfig struct {
	Name string `yaml:"name"`
	Base string `yaml:"base"`

	IdentifierQuotes [][]string `yaml:"identifier_quotes"`
	StringQuotes     [][]string `yaml:"string_quotes"`

	QuoteReservedWords        *bool  `yaml:"quote_reserved_words"`
	CaseInsensitiveNameLookup *bool  `yaml:"case_insensitive_name_lookup"`
	UnquotedCase              string `yaml:"unquoted_case"`
	QuotedCase                string `yaml:"quoted_case"`

	LineComments       []string `yaml:"line_comments"`
	ScriptDelimiters   []string `yaml:"script_delimiters"`
	DelimiterRedefiner string   `yaml:"delimiter_redefiner"`

	ExecuteKeywords        []string `yaml:"execute_keywords"`
	NonTransactionKeywords []string `yaml:"non_transaction_keywords"`

	Keywords       []string `yaml:"keywords"`
	Functions      []string `yaml:"functions"`
	Types          []string `yaml:"types"`
	RemoveKeywords []string `yaml:"remove_keywords"`

	ProcedureCallEndClause    string `yaml:"procedure_call_end_clause"`
	BracketedExecCall         *bool  `yaml:"bracketed_exec_call"`
	CallIncludesOutParameters *bool  `yaml:"call_includes_out_parameters"`
}

// LoadProfile reads a YAML profile file and resolves it into a dialect.
func LoadProfile(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialect profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile resolves a YAML profile document into a dialect.
func ParseProfile(data []byte) (*Dialect, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyProfile
	}
	var config ProfileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse dialect profile: %w", err)
	}
	return config.Dialect()
}

// Dialect resolves the configuration into a profile: the base dialect is
// copied, scalar overrides applied, and the keyword registry rebuilt with
// the configured additions and removals.
func (c *ProfileConfig) Dialect() (*Dialect, error) {
	base, ok := ProfileByName(c.Base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, c.Base)
	}

	d := *base
	if c.Name != "" {
		d.Name = c.Name
	}

	if c.IdentifierQuotes != nil {
		quotes, err := quotePairs(c.IdentifierQuotes)
		if err != nil {
			return nil, fmt.Errorf("identifier_quotes: %w", err)
		}
		d.IdentifierQuotes = quotes
	}
	if c.StringQuotes != nil {
		quotes, err := quotePairs(c.StringQuotes)
		if err != nil {
			return nil, fmt.Errorf("string_quotes: %w", err)
		}
		d.StringQuotes = quotes
	}

	if c.QuoteReservedWords != nil {
		d.QuoteReservedWords = *c.QuoteReservedWords
	}
	if c.CaseInsensitiveNameLookup != nil {
		d.CaseInsensitiveNameLookup = *c.CaseInsensitiveNameLookup
	}
	if c.UnquotedCase != "" {
		parsed, err := parseIdentifierCase(c.UnquotedCase)
		if err != nil {
			return nil, fmt.Errorf("unquoted_case: %w", err)
		}
		d.UnquotedCase = parsed
	}
	if c.QuotedCase != "" {
		parsed, err := parseIdentifierCase(c.QuotedCase)
		if err != nil {
			return nil, fmt.Errorf("quoted_case: %w", err)
		}
		d.QuotedCase = parsed
	}

	if c.LineComments != nil {
		d.LineComments = c.LineComments
	}
	if c.ScriptDelimiters != nil {
		d.ScriptDelimiters = c.ScriptDelimiters
	}
	if c.DelimiterRedefiner != "" {
		d.DelimiterRedefiner = c.DelimiterRedefiner
	}
	if c.ExecuteKeywords != nil {
		d.ExecuteKeywords = c.ExecuteKeywords
	}
	if c.NonTransactionKeywords != nil {
		d.NonTransactionKeywords = c.NonTransactionKeywords
	}
	if c.ProcedureCallEndClause != "" {
		d.ProcedureCallEndClause = c.ProcedureCallEndClause
	}
	if c.BracketedExecCall != nil {
		d.BracketedExecCall = *c.BracketedExecCall
	}
	if c.CallIncludesOutParameters != nil {
		d.CallIncludesOutParameters = *c.CallIncludesOutParameters
	}

	if len(c.Keywords) > 0 || len(c.Functions) > 0 || len(c.Types) > 0 || len(c.RemoveKeywords) > 0 {
		b := NewRegistryBuilderFrom(base.Keywords)
		b.AddKeywords(c.Keywords...)
		b.AddFunctions(c.Functions...)
		b.AddTypes(c.Types...)
		for _, word := range c.RemoveKeywords {
			b.Unregister(word)
		}
		d.Keywords = b.Build()
	}

	return &d, nil
}

func quotePairs(pairs [][]string) ([][2]string, error) {
	result := make([][2]string, 0, len(pairs))
	for _, pair := range pairs {
		switch len(pair) {
		case 1:
			// A single token quotes both sides, e.g. ["`"].
			result = append(result, [2]string{pair[0], pair[0]})
		case 2:
			result = append(result, [2]string{pair[0], pair[1]})
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidQuotePair, pair)
		}
	}
	return result, nil
}

func parseIdentifierCase(name string) (IdentifierCase, error) {
	switch strings.ToLower(name) {
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	case "mixed":
		return CaseMixed, nil
	default:
		return CaseMixed, fmt.Errorf("%w: %q", ErrInvalidIdentifierCase, name)
	}
}
