package funcs

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(p *testutil.Prompter, data any) (*Executor, *bytes.Buffer) {
	var buf bytes.Buffer
	e := NewExecutor(p, data)
	e.Logger = zerolog.New(&buf)
	return e, &buf
}

func TestExecRead(t *testing.T) {
	p := testutil.NewPrompter(map[string]string{"NAME": "spark"})
	e, _ := newTestExecutor(p, nil)
	store := keywords.New()

	require.NoError(t, e.FindAndExec("hi {{$NAME:read}}", store))

	assert.Equal(t, "spark", store.Value("{{$NAME:read}}"))
	assert.Equal(t, "spark", store.Value("{{$NAME}}"))
	assert.Equal(t, []string{"NAME"}, p.Asked())
}

func TestExecIsIdempotent(t *testing.T) {
	p := testutil.NewPrompter(map[string]string{"NAME": "spark"})
	e, _ := newTestExecutor(p, nil)
	store := keywords.New()

	text := "{{$NAME:read}} {{$NAME:read}}"
	require.NoError(t, e.FindAndExec(text, store))
	require.NoError(t, e.FindAndExec(text, store))
	require.NoError(t, e.FindAndExec("{{$NAME}}", store))

	assert.Equal(t, 1, p.Count("NAME"))
}

func TestExecPassThrough(t *testing.T) {
	p := testutil.NewPrompter(nil)
	e, logs := newTestExecutor(p, nil)
	store := keywords.New()

	require.NoError(t, e.FindAndExec("{{$MISSING}} and {{$MISSING}}", store))
	require.NoError(t, e.FindAndExec("{{$MISSING}}", store))

	v, ok := store.Get("{{$MISSING}}")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, 1, strings.Count(logs.String(), "Value not found"))
	assert.Contains(t, logs.String(), "{{$MISSING}}")
	assert.Empty(t, p.Asked())
}

func TestExecSuffixEquivalence(t *testing.T) {
	p := testutil.NewPrompter(map[string]string{"NAME": "x"})
	e, _ := newTestExecutor(p, nil)
	store := keywords.New()

	require.NoError(t, e.FindAndExec("{{$NAME:read}}", store))
	assert.Equal(t, "x-x", store.Replace("{{$NAME}}-{{$NAME:read}}"))

	// a later text using only the bare token resolves without prompting
	require.NoError(t, e.FindAndExec("{{$NAME}}", store))
	assert.Equal(t, 1, p.Count("NAME"))
}

func TestExecJSONPrecedence(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": "x", "quoted": `say "hi"`}}
	p := testutil.NewPrompter(map[string]string{"a.c": "prompted"})
	e, _ := newTestExecutor(p, data)
	store := keywords.New()

	require.NoError(t, e.FindAndExec("{{$a.b:read}} {{$a.quoted}}", store))
	assert.Equal(t, "x", store.Value("{{$a.b:read}}"))
	assert.Equal(t, "say hi", store.Value("{{$a.quoted}}"))
	assert.Empty(t, p.Asked())

	// failed lookups fall back to the function
	require.NoError(t, e.FindAndExec("{{$a.c:read}}", store))
	assert.Equal(t, "prompted", store.Value("{{$a.c:read}}"))
	assert.Equal(t, []string{"a.c"}, p.Asked())
}

func TestExecWithoutDataIgnoresDots(t *testing.T) {
	p := testutil.NewPrompter(map[string]string{"a.b": "typed"})
	e, _ := newTestExecutor(p, nil)
	store := keywords.New()

	require.NoError(t, e.FindAndExec("{{$a.b:read}}", store))
	assert.Equal(t, "typed", store.Value("{{$a.b}}"))
}

func TestExecUnknownFunctionResolvesNothing(t *testing.T) {
	p := testutil.NewPrompter(map[string]string{"A": "a"})
	e, _ := newTestExecutor(p, nil)
	store := keywords.New()

	err := e.FindAndExec("{{$A:read}} {{$B:bogus}}", store)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFunction))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, p.Asked())
}

func TestExecPromptFailure(t *testing.T) {
	p := testutil.NewPrompter(nil).WithError("NAME", stderrors.New("eof"))
	e, _ := newTestExecutor(p, nil)
	store := keywords.New()

	err := e.FindAndExec("{{$NAME:read}}", store)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptFailed))
	assert.False(t, store.Has("{{$NAME:read}}"))
}

func TestExecFillsEverySpelling(t *testing.T) {
	t.Run("prompt answers all spellings", func(t *testing.T) {
		p := testutil.NewPrompter(map[string]string{"NAME": "spark"})
		e, _ := newTestExecutor(p, nil)
		store := keywords.New()

		text := "{{$NAME:read}}|{{$NAME: read }}|{{$NAME}}"
		require.NoError(t, e.FindAndExec(text, store))

		assert.Equal(t, "spark|spark|spark", store.Replace(text))
		assert.Equal(t, 1, p.Count("NAME"))
	})

	t.Run("json lookup ignores the suffix on every spelling", func(t *testing.T) {
		p := testutil.NewPrompter(nil)
		e, _ := newTestExecutor(p, map[string]any{"a": map[string]any{"b": "x"}})
		store := keywords.New()

		text := "[{{$a.b:read}}] [{{$a.b}}]"
		require.NoError(t, e.FindAndExec(text, store))

		assert.Equal(t, "[x] [x]", store.Replace(text))
		assert.Empty(t, p.Asked())
	})

	t.Run("stored value is copied to missing spellings", func(t *testing.T) {
		e, _ := newTestExecutor(testutil.NewPrompter(nil), nil)
		store := keywords.New()
		store.Set("{{$N:read}}", "v")

		p := Placeholder{Name: "N", Token: "{{$N:read}}", Func: Read, Tokens: []string{"{{$N:read}}", "{{$N: read}}"}}
		require.NoError(t, e.Exec(p, store))
		assert.Equal(t, "v", store.Value("{{$N: read}}"))
	})
}
