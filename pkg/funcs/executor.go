package funcs

import (
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/jsonquery"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/prompt"
	"github.com/rs/zerolog"
)

// Executor resolves placeholders into a keyword store
type Executor struct {
	Prompter  prompt.Prompter
	Evaluator jsonquery.Evaluator
	// Data is the document dotted names are queried against; nil disables
	// JSON lookups
	Data   any
	Logger zerolog.Logger
}

// NewExecutor creates an executor using the given prompter and the default
// JSON query evaluator
func NewExecutor(p prompt.Prompter, data any) *Executor {
	return &Executor{
		Prompter:  p,
		Evaluator: jsonquery.New(),
		Data:      data,
		Logger:    logging.GetLogger("funcs.executor"),
	}
}

// FindAndExec scans text and resolves every placeholder the store lacks.
// Nothing is resolved when the scan fails.
func (e *Executor) FindAndExec(text string, store *keywords.Store) error {
	found, err := Find(text, store)
	if err != nil {
		return err
	}
	for _, p := range found {
		if err := e.Exec(p, store); err != nil {
			return err
		}
	}
	return nil
}

// Exec resolves a single placeholder and stores its value under every token
// text the placeholder carries
func (e *Executor) Exec(p Placeholder, store *keywords.Store) error {
	if value, ok := store.Get(p.Token); ok {
		for _, token := range p.AllTokens() {
			if !store.Has(token) {
				store.Set(token, value)
			}
		}
		return nil
	}

	if value, ok := e.query(p); ok {
		setAll(store, p.AllTokens(), value)
		return nil
	}

	switch p.Func {
	case Read:
		if e.Prompter == nil {
			return errors.New(errors.ErrPromptFailed, "no prompter configured").
				WithDetail("token", p.Token)
		}
		value, err := e.Prompter.Prompt(p.Name)
		if err != nil {
			return errors.Wrap(err, errors.ErrPromptFailed, "failed to read input").
				WithDetail("token", p.Token)
		}
		setAll(store, p.AllTokens(), value)
		store.Set(p.BareToken(), value)
	default:
		e.Logger.Warn().Str("keyword", p.Token).Msg("Value not found")
		setAll(store, p.AllTokens(), "")
	}

	return nil
}

func setAll(store *keywords.Store, tokens []string, value string) {
	for _, token := range tokens {
		store.Set(token, value)
	}
}

// query looks a dotted name up in the data document
func (e *Executor) query(p Placeholder) (string, bool) {
	if e.Data == nil || e.Evaluator == nil || !strings.Contains(p.Name, ".") {
		return "", false
	}

	value, err := e.Evaluator.Eval(p.Name, e.Data)
	if err != nil {
		e.Logger.Debug().Err(err).Str("keyword", p.Token).Msg("JSON lookup failed")
		return "", false
	}
	return strings.ReplaceAll(value, `"`, ""), true
}
