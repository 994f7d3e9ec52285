package keywords

import (
	"fmt"
	"sort"
	"strings"
)

// Token delimiters
const (
	TokenOpen  = "{{$"
	TokenClose = "}}"
)

// Well-known tokens
var (
	ProjectName   = Token("PROJECTNAME")
	Home          = Token("HOME")
	CurrentDir    = Token("CURRENTDIR")
	ConfigPath    = Token("CONFIGPATH")
	TemplatesPath = Token("TEMPLATES_PATH")
)

// Token returns the placeholder text for a bare name, e.g. {{$NAME}}
func Token(name string) string {
	return TokenOpen + name + TokenClose
}

// TokenWithFunc returns the placeholder text for a function-qualified name,
// e.g. {{$NAME:read}}
func TokenWithFunc(name, function string) string {
	if function == "" {
		return Token(name)
	}
	return fmt.Sprintf("%s%s:%s%s", TokenOpen, name, function, TokenClose)
}

// Strip removes the wrapping delimiter characters from a token
func Strip(token string) string {
	return strings.Trim(token, "{$}")
}

// Store maps token text to resolved values, remembering first-write order
type Store struct {
	order  []string
	values map[string]string
}

// New creates an empty store
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// FromMap creates a store holding the given tokens, in lexical order
func FromMap(values map[string]string) *Store {
	s := New()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Set(k, values[k])
	}
	return s
}

// Set stores value under token. Overwriting keeps the token's original position.
func (s *Store) Set(token, value string) {
	if _, ok := s.values[token]; !ok {
		s.order = append(s.order, token)
	}
	s.values[token] = value
}

// SetName stores value under the bare token for name
func (s *Store) SetName(name, value string) {
	s.Set(Token(name), value)
}

// Get returns the value stored under token
func (s *Store) Get(token string) (string, bool) {
	v, ok := s.values[token]
	return v, ok
}

// Value returns the value stored under token, or "" when missing
func (s *Store) Value(token string) string {
	return s.values[token]
}

// Has reports whether token has been resolved
func (s *Store) Has(token string) bool {
	_, ok := s.values[token]
	return ok
}

// Len returns the number of stored tokens
func (s *Store) Len() int {
	return len(s.order)
}

// Keys returns the stored tokens in first-write order
func (s *Store) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Merge copies every token of other into s, in other's order
func (s *Store) Merge(other *Store) {
	for _, k := range other.order {
		s.Set(k, other.values[k])
	}
}

// Replace substitutes every stored token found in text.
//
// All tokens are replaced in a single left-to-right pass over a snapshot of
// the store, so a resolved value is never scanned again for placeholders.
// When two tokens could match at the same position, the one written first wins.
func (s *Store) Replace(text string) string {
	if len(s.order) == 0 || text == "" {
		return text
	}

	pairs := make([]string, 0, len(s.order)*2)
	for _, k := range s.order {
		pairs = append(pairs, k, s.values[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
