// Package jsonquery evaluates jq expressions against the data document a
// template run was given, resolving dotted placeholder names such as
// {{$author.name}}.
package jsonquery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Evaluator runs a query expression against a document and returns the
// textual result
type Evaluator interface {
	Eval(expr string, doc any) (string, error)
}

// Gojq evaluates expressions with gojq
type Gojq struct{}

// New returns the default evaluator
func New() Evaluator {
	return Gojq{}
}

// Eval runs expr against doc. A leading "." is added when expr lacks one, so
// placeholder names like "a.b" read as the jq path ".a.b". Strings are
// returned as is, other values in their JSON encoding. Only the first result
// is used; a null result or no result at all is an error.
func (Gojq) Eval(expr string, doc any) (string, error) {
	query, err := gojq.Parse(normalizeExpr(expr))
	if err != nil {
		return "", fmt.Errorf("invalid query %q: %w", expr, err)
	}

	input, err := Normalize(doc)
	if err != nil {
		return "", err
	}

	iter := query.Run(input)
	v, ok := iter.Next()
	if !ok {
		return "", fmt.Errorf("query %q produced no result", expr)
	}
	if err, isErr := v.(error); isErr {
		return "", fmt.Errorf("query %q failed: %w", expr, err)
	}

	switch value := v.(type) {
	case nil:
		return "", fmt.Errorf("query %q produced null", expr)
	case string:
		return value, nil
	default:
		out, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("query %q produced an unencodable value: %w", expr, err)
		}
		return string(out), nil
	}
}

func normalizeExpr(expr string) string {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, ".") {
		return expr
	}
	return "." + expr
}

// Normalize converts doc into the plain JSON value types gojq accepts by
// round-tripping it through encoding/json. TOML and YAML decoders produce
// int64 and similar types that gojq does not handle.
func Normalize(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("data document is not JSON compatible: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("data document is not JSON compatible: %w", err)
	}
	return out, nil
}

// LoadFile reads a data document. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func LoadFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDataLoad, "failed to read data file %s", path).
			WithDetail("path", path)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &doc)
	default:
		err = json.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDataLoad, "failed to parse data file %s", path).
			WithDetail("path", path)
	}

	return doc, nil
}
