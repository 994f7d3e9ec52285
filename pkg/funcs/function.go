package funcs

import (
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
)

// Function is the resolution strategy named by a placeholder suffix
type Function int

const (
	// None is the pass-through strategy of bare placeholders
	None Function = iota
	// Read prompts the user for the value
	Read
)

var functionNames = map[string]Function{
	"read": Read,
}

// String returns the suffix text of the function
func (f Function) String() string {
	switch f {
	case Read:
		return "read"
	default:
		return ""
	}
}

// ParseFunction maps a suffix to its function. Surrounding whitespace is
// ignored; matching is case sensitive.
func ParseFunction(name string) (Function, error) {
	if f, ok := functionNames[strings.TrimSpace(name)]; ok {
		return f, nil
	}
	return None, errors.Newf(errors.ErrInvalidFunction, "'%s' is not a valid function", strings.TrimSpace(name)).
		WithDetail("function", name)
}
