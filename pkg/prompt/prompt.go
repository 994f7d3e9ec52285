// Package prompt provides the interactive line input used to resolve
// {{$NAME:read}} placeholders and the project name.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/spark/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Prompter asks the user for one line of input
type Prompter interface {
	Prompt(label string) (string, error)
}

// Console prompts on the terminal. When both stdin and stdout are terminals
// it uses pterm's interactive text input, otherwise it reads lines from In.
type Console struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool

	reader *bufio.Reader
}

// NewConsole creates a console prompter reading from in and writing to out.
// It is interactive only when those are the process stdin and stdout and
// both are terminals.
func NewConsole(in io.Reader, out io.Writer) *Console {
	interactive := false
	if in == io.Reader(os.Stdin) && out == io.Writer(os.Stdout) {
		interactive = isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	}
	return &Console{In: in, Out: out, Interactive: interactive}
}

// Prompt blocks until a line has been entered
func (c *Console) Prompt(label string) (string, error) {
	if c.Interactive {
		return pterm.DefaultInteractiveTextInput.Show(label)
	}

	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}

	fmt.Fprintf(c.Out, "%s: ", style.PromptStyle.Render(label))

	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input for %q: %w", label, err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
