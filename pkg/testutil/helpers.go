package testutil

import (
	"testing"

	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/types"
	"github.com/stretchr/testify/require"
)

// NewStore creates a keyword store from bare name/value pairs, in lexical
// order of the names
func NewStore(values map[string]string) *keywords.Store {
	tokens := make(map[string]string, len(values))
	for name, value := range values {
		tokens[keywords.Token(name)] = value
	}
	return keywords.FromMap(tokens)
}

// ReadString reads a file from fsys, failing the test when it cannot
func ReadString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertNotExists fails the test when path exists in fsys
func AssertNotExists(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	_, err := fsys.Stat(path)
	require.Error(t, err, "expected %s not to exist", path)
}
