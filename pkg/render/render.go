// Package render applies the Liquid conditional/loop pass to file content
// after placeholders have been substituted.
package render

import (
	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/osteele/liquid"
)

// Renderer renders template content to its final text
type Renderer interface {
	Render(src string) (string, error)
}

// Liquid renders with an osteele/liquid engine and no bindings. Placeholder
// values are substituted beforehand, so only control flow and filters on
// literals are meaningful.
type Liquid struct {
	engine *liquid.Engine
}

// New returns a Liquid renderer
func New() *Liquid {
	return &Liquid{engine: liquid.NewEngine()}
}

// Render renders src through the Liquid engine
func (l *Liquid) Render(src string) (string, error) {
	out, serr := l.engine.ParseAndRenderString(src, liquid.Bindings{})
	if serr != nil {
		return "", errors.Wrap(serr, errors.ErrRenderFailed, "failed to render content")
	}
	return out, nil
}

// Nop returns content unchanged
type Nop struct{}

// Render returns src
func (Nop) Render(src string) (string, error) {
	return src, nil
}
