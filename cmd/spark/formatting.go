package spark

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/spark/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal decides whether help text and template descriptions are
// styled
func stdoutIsTerminal() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func heading(s string) string {
	s = strings.ToUpper(s)
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func muted(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return style.MutedStyle.Render(s)
}

// initTemplateFormatting registers the helpers msgs/usage-template.txt uses
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"heading": heading,
		"muted":   muted,
	})
}
