package sqldialect

import (
	"sort"
	"strings"
)

// KeywordType classifies a registered word.
type KeywordType int

const (
	// KeywordTypeNone means the word is not registered at all.
	KeywordTypeNone KeywordType = iota
	// KeywordTypeKeyword is a reserved language keyword. Keywords are
	// authoritative: once a word is a keyword it stays one.
	KeywordTypeKeyword
	// KeywordTypeFunction is a built-in function name.
	KeywordTypeFunction
	// KeywordTypeType is a built-in data type name.
	KeywordTypeType
	// KeywordTypeOther is a word reserved for other reasons.
	KeywordTypeOther
)

// String returns the string representation of KeywordType
func (t KeywordType) String() string {
	switch t {
	case KeywordTypeKeyword:
		return "KEYWORD"
	case KeywordTypeFunction:
		return "FUNCTION"
	case KeywordTypeType:
		return "TYPE"
	case KeywordTypeOther:
		return "OTHER"
	default:
		return "NONE"
	}
}

// RegistryBuilder accumulates keyword classifications during dialect
// construction. It is not safe for concurrent use; build the registry
// before handing the dialect to concurrent callers.
type RegistryBuilder struct {
	words map[string]KeywordType
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{words: make(map[string]KeywordType)}
}

// NewRegistryBuilderFrom seeds a builder with the contents of an existing
// registry, for profiles derived from a base dialect.
func NewRegistryBuilderFrom(reg *KeywordRegistry) *RegistryBuilder {
	b := &RegistryBuilder{words: make(map[string]KeywordType, len(reg.byWord))}
	for word, typ := range reg.byWord {
		b.words[word] = typ
	}
	return b
}

// Register adds word under the given classification. The word is
// normalized to upper case. A word already classified as a keyword keeps
// that classification: keywords are reserved, and an identifier that
// conflicts with one must be quoted even if the word is also a function
// or type name.
func (b *RegistryBuilder) Register(word string, typ KeywordType) {
	word = strings.ToUpper(word)
	if b.words[word] == KeywordTypeKeyword && typ != KeywordTypeKeyword {
		return
	}
	b.words[word] = typ
}

// Unregister removes word entirely, so a derived dialect can repurpose a
// default keyword as a plain identifier.
func (b *RegistryBuilder) Unregister(word string) {
	delete(b.words, strings.ToUpper(word))
}

// AddKeywords registers each word as a reserved keyword.
func (b *RegistryBuilder) AddKeywords(words ...string) {
	for _, w := range words {
		b.Register(w, KeywordTypeKeyword)
	}
}

// AddFunctions registers each word as a built-in function name.
func (b *RegistryBuilder) AddFunctions(words ...string) {
	for _, w := range words {
		b.Register(w, KeywordTypeFunction)
	}
}

// AddTypes registers each word as a built-in type name.
func (b *RegistryBuilder) AddTypes(words ...string) {
	for _, w := range words {
		b.Register(w, KeywordTypeType)
	}
}

// Build snapshots the builder into an immutable registry. The builder may
// be reused afterwards without affecting the snapshot.
func (b *RegistryBuilder) Build() *KeywordRegistry {
	byWord := make(map[string]KeywordType, len(b.words))
	sorted := make([]string, 0, len(b.words))
	for word, typ := range b.words {
		byWord[word] = typ
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)
	return &KeywordRegistry{byWord: byWord, sorted: sorted}
}

// KeywordRegistry is an immutable store of classified words. It is safe
// for concurrent use.
type KeywordRegistry struct {
	byWord map[string]KeywordType
	sorted []string
}

// Classify looks word up case-insensitively. Unknown words return
// KeywordTypeNone.
func (r *KeywordRegistry) Classify(word string) KeywordType {
	return r.byWord[strings.ToUpper(word)]
}

// IsReserved reports whether word requires quoting consideration when
// used as an identifier.
func (r *KeywordRegistry) IsReserved(word string) bool {
	_, ok := r.byWord[strings.ToUpper(word)]
	return ok
}

// MatchPrefix returns every registered word starting with prefix
// (case-insensitive), in lexicographic order. Used for autocompletion.
func (r *KeywordRegistry) MatchPrefix(prefix string) []string {
	prefix = strings.ToUpper(prefix)
	i := sort.SearchStrings(r.sorted, prefix)
	var matches []string
	for ; i < len(r.sorted); i++ {
		if !strings.HasPrefix(r.sorted[i], prefix) {
			break
		}
		matches = append(matches, r.sorted[i])
	}
	return matches
}

// HasPrefix reports whether at least one registered word starts with
// prefix (case-insensitive).
func (r *KeywordRegistry) HasPrefix(prefix string) bool {
	prefix = strings.ToUpper(prefix)
	i := sort.SearchStrings(r.sorted, prefix)
	return i < len(r.sorted) && strings.HasPrefix(r.sorted[i], prefix)
}

// ReservedWords returns all registered words in lexicographic order. The
// returned slice is shared; callers must not modify it.
func (r *KeywordRegistry) ReservedWords() []string {
	return r.sorted
}

// Functions returns all words classified as functions, in order.
func (r *KeywordRegistry) Functions() []string {
	return r.wordsOfType(KeywordTypeFunction)
}

// Types returns all words classified as data types, in order.
func (r *KeywordRegistry) Types() []string {
	return r.wordsOfType(KeywordTypeType)
}

func (r *KeywordRegistry) wordsOfType(typ KeywordType) []string {
	var words []string
	for _, w := range r.sorted {
		if r.byWord[w] == typ {
			words = append(words, w)
		}
	}
	return words
}

// Len returns the number of registered words.
func (r *KeywordRegistry) Len() int {
	return len(r.sorted)
}
