package template

import (
	"fmt"
	"io"

	"github.com/arthur-debert/spark/pkg/style"
)

// ShowInfo prints the name, description and author of tmpl. Nothing is
// printed for templates without an [info] table. With markdown set the
// description is rendered for the terminal.
func ShowInfo(w io.Writer, tmpl *Template, markdown bool) {
	if tmpl == nil || tmpl.Info.IsEmpty() {
		return
	}
	info := tmpl.Info

	description := info.Description
	if markdown && description != "" {
		description = style.RenderMarkdown(description, 80)
	}

	fmt.Fprintln(w, style.Field("Name", info.Name))
	fmt.Fprintln(w, style.Field("Description", description))
	fmt.Fprintln(w, style.Field("Author", info.Author))
	fmt.Fprintln(w)
}
