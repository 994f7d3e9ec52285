package funcs

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/keywords"
)

var tokenPattern = regexp.MustCompile(`\{\{\$.*?\}\}`)

// Placeholder is one unresolved token found in a text
type Placeholder struct {
	// Name is the token with delimiters and function suffix removed
	Name string
	// Token is the exact text of the occurrence that decides how the name
	// is resolved
	Token string
	Func  Function
	// Tokens holds every distinct text found for Name, such as {{$a.b}}
	// next to {{$a.b:read}} or {{$N: read }}. The value is stored under
	// each of them.
	Tokens []string
}

// BareToken returns the function-less token for the placeholder's name
func (p Placeholder) BareToken() string {
	return keywords.Token(p.Name)
}

// AllTokens returns Tokens, always including Token
func (p Placeholder) AllTokens() []string {
	for _, t := range p.Tokens {
		if t == p.Token {
			return p.Tokens
		}
	}
	return append([]string{p.Token}, p.Tokens...)
}

func (p *Placeholder) addToken(token string) {
	for _, t := range p.Tokens {
		if t == token {
			return
		}
	}
	p.Tokens = append(p.Tokens, token)
}

// Find returns the placeholders of text that the store does not hold yet,
// ordered by first appearance and unique by name.
//
// Every spelling of a name collapses into one placeholder carrying all of its
// token texts. When a name appears both bare and with a function, the
// function decides how it is resolved. An unknown function fails the whole
// scan and nothing is returned.
func Find(text string, store *keywords.Store) ([]Placeholder, error) {
	matches := tokenPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	var found []Placeholder
	index := make(map[string]int)

	for _, token := range matches {
		if store.Has(token) {
			continue
		}

		p, err := classify(token)
		if err != nil {
			return nil, err
		}

		if i, seen := index[p.Name]; seen {
			found[i].addToken(token)
			if found[i].Func == None && p.Func != None {
				found[i].Token = p.Token
				found[i].Func = p.Func
			}
			continue
		}
		index[p.Name] = len(found)
		found = append(found, p)
	}

	return found, nil
}

func classify(token string) (Placeholder, error) {
	stripped := keywords.Strip(token)
	name, suffix, qualified := strings.Cut(stripped, ":")
	if !qualified {
		return Placeholder{Name: stripped, Token: token, Func: None, Tokens: []string{token}}, nil
	}

	f, err := ParseFunction(suffix)
	if err != nil {
		return Placeholder{}, errors.Wrapf(err, errors.ErrInvalidFunction, "invalid placeholder %s", token).
			WithDetail("token", token)
	}
	return Placeholder{Name: name, Token: token, Func: f, Tokens: []string{token}}, nil
}
