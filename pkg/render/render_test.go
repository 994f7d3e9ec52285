package render

import (
	"testing"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "plain text", src: "hello world\n", want: "hello world\n"},
		{name: "true condition", src: `{% if "rust" == "rust" %}cargo{% endif %}`, want: "cargo"},
		{name: "false condition", src: `{% if "go" == "rust" %}cargo{% else %}go mod{% endif %}`, want: "go mod"},
		{name: "loop over literal", src: `{% for i in (1..3) %}{{ i }}{% endfor %}`, want: "123"},
		{name: "filter", src: `{{ "spark" | upcase }}`, want: "SPARK"},
		{name: "unbound variable is empty", src: `[{{ missing }}]`, want: "[]"},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLiquidRenderFailure(t *testing.T) {
	_, err := New().Render(`{% if true %}unterminated`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderFailed))
}

func TestNopRender(t *testing.T) {
	got, err := Nop{}.Render(`{% if %}`)
	require.NoError(t, err)
	assert.Equal(t, `{% if %}`, got)
}
