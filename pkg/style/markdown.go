package style

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders text as terminal markdown, word-wrapped at width.
// Text is returned trimmed and unchanged when it cannot be rendered.
func RenderMarkdown(text string, width int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}
