// Package vcs initializes a git repository in a freshly extracted project.
package vcs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/style"
	"github.com/rs/zerolog"
)

// Git runs git init in a project root
type Git struct {
	// Binary is the git executable name or path
	Binary string
	// LookPath resolves Binary; defaults to exec.LookPath
	LookPath func(file string) (string, error)
	// Out receives progress messages
	Out    io.Writer
	Logger zerolog.Logger
}

// NewGit returns a Git using the git binary found on PATH
func NewGit() *Git {
	return &Git{
		Binary:   "git",
		LookPath: exec.LookPath,
		Out:      os.Stdout,
		Logger:   logging.GetLogger("vcs.git"),
	}
}

// Init initializes a repository in root unless one already exists.
//
// A missing git binary or an empty root is an error. A failing git init is
// logged and reported but not returned, since the project files are already
// in place.
func (g *Git) Init(root string) error {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}
	lookPath := g.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	gitPath, err := lookPath(binary)
	if err != nil {
		g.print(style.Error("Git is not installed. Please install git and try again."))
		return errors.Wrap(err, errors.ErrGitNotFound, "git is not installed").
			WithDetail("command", binary)
	}

	if strings.TrimSpace(root) == "" {
		g.print(style.Error("Project root is not set"))
		return errors.New(errors.ErrProjectRootUnset, "project root is not set")
	}

	g.print(fmt.Sprintf("\nInitializing git repository for %s\n", style.PathStyle.Render(root)))

	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		g.print(style.Notice("Git is already initialized."))
		return nil
	}

	var stderr bytes.Buffer
	cmd := exec.Command(gitPath, "init")
	cmd.Dir = root
	cmd.Stderr = &stderr

	done := logging.LogOperationStart(g.Logger, "git init")
	err = cmd.Run()
	done()

	if err != nil {
		initErr := errors.Wrap(err, errors.ErrGitInit, "git initialization failed").
			WithDetail("command", gitPath+" init").
			WithDetail("path", root)
		g.Logger.Error().Err(initErr).Str("stderr", strings.TrimSpace(stderr.String())).Msg("Git initialization failed")
		g.print(style.Error("Git initialization failed."))
		return nil
	}

	g.print(style.Success("Git initialized successfully."))
	return nil
}

func (g *Git) print(msg string) {
	if g.Out == nil {
		return
	}
	fmt.Fprintln(g.Out, msg)
}
