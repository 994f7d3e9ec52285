package template

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spark/pkg/errors"
	"github.com/arthur-debert/spark/pkg/filesystem"
	"github.com/arthur-debert/spark/pkg/funcs"
	"github.com/arthur-debert/spark/pkg/jsonquery"
	"github.com/arthur-debert/spark/pkg/keywords"
	"github.com/arthur-debert/spark/pkg/logging"
	"github.com/arthur-debert/spark/pkg/paths"
	"github.com/arthur-debert/spark/pkg/prompt"
	"github.com/arthur-debert/spark/pkg/render"
	"github.com/arthur-debert/spark/pkg/style"
	"github.com/arthur-debert/spark/pkg/types"
	"github.com/rs/zerolog"
)

// ProjectMarker is rewritten to the project-name token in written content.
// Meta-templates, templates that write templates, use it where the template
// they produce must keep a literal {{$PROJECTNAME}}.
const ProjectMarker = "initPJNAME"

// ProjectNameLabel is the prompt shown when the project name is needed
const ProjectNameLabel = "Project name"

// PostProcessor runs once every file has been written
type PostProcessor interface {
	Init(root string) error
}

// Extractor materializes templates
type Extractor struct {
	FS        types.FS
	Prompter  prompt.Prompter
	Evaluator jsonquery.Evaluator
	Renderer  render.Renderer
	// Git initializes the project root when the template asks for it
	Git PostProcessor
	// Out receives one line per directory created and file written
	Out io.Writer
	// WorkDir resolves relative output paths; empty means the process cwd
	WorkDir string
	// Home replaces a leading ~ in paths; empty means the user's home
	Home   string
	Logger zerolog.Logger
}

// Result describes a finished extraction
type Result struct {
	// Options as resolved, with ProjectRoot substituted
	Options *Options
	// Written lists the files written, in order
	Written []string
}

// NewExtractor creates an extractor writing to the real filesystem
func NewExtractor(p prompt.Prompter, git PostProcessor) *Extractor {
	return &Extractor{
		FS:        filesystem.NewOS(),
		Prompter:  p,
		Evaluator: jsonquery.New(),
		Renderer:  render.New(),
		Git:       git,
		Out:       os.Stdout,
		Logger:    logging.GetLogger("template.extract"),
	}
}

// run holds the state of one extraction
type run struct {
	*Extractor
	store    *keywords.Store
	options  *Options
	exec     *funcs.Executor
	prompted bool
	result   *Result
}

// Extract writes every file of tmpl, resolving placeholders into store.
//
// Files are processed in order and the first error stops the run; files
// already written are left in place. Post-processing errors are returned
// after all files were written.
func (e *Extractor) Extract(store *keywords.Store, tmpl *Template) (*Result, error) {
	if tmpl == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no template to extract")
	}
	if store == nil {
		store = keywords.New()
	}
	if !store.Has(keywords.ProjectName) {
		store.Set(keywords.ProjectName, "")
	}

	options := tmpl.Options.Clone()
	exec := funcs.NewExecutor(e.Prompter, options.JSONData)
	exec.Evaluator = e.Evaluator
	exec.Logger = e.Logger

	r := &run{
		Extractor: e,
		store:     store,
		options:   options,
		exec:      exec,
		result:    &Result{Options: options},
	}

	done := logging.LogOperationStart(e.Logger, "extract")
	defer done()

	for i, file := range tmpl.Files {
		if err := r.file(file); err != nil {
			e.Logger.Error().Err(err).Int("index", i).Str("path", file.Path).Msg("Extraction stopped")
			return r.result, err
		}
	}

	options.ProjectRoot = store.Replace(options.ProjectRoot)

	if options.Git && e.Git != nil {
		root := options.ProjectRoot
		if root != "" {
			root = r.outputPath(root)
		}
		if err := e.Git.Init(root); err != nil {
			return r.result, err
		}
	}

	return r.result, nil
}

func (r *run) file(file File) error {
	if err := r.exec.FindAndExec(file.Content, r.store); err != nil {
		return withPath(err, file.Path)
	}
	if err := r.exec.FindAndExec(file.Path, r.store); err != nil {
		return withPath(err, file.Path)
	}

	if err := r.resolveProjectName(file); err != nil {
		return withPath(err, file.Path)
	}

	return r.materialize(file)
}

// resolveProjectName prompts for the project name the first time a file,
// or the project root, refers to it while it is still empty
func (r *run) resolveProjectName(file File) error {
	if r.prompted || r.store.Value(keywords.ProjectName) != "" {
		return nil
	}

	if !strings.Contains(strings.TrimSpace(file.Content), keywords.ProjectName) &&
		!strings.Contains(strings.TrimSpace(file.Path), keywords.ProjectName) &&
		!strings.Contains(strings.TrimSpace(r.options.ProjectRoot), keywords.ProjectName) {
		return nil
	}

	if r.Prompter == nil {
		return errors.New(errors.ErrPromptFailed, "project name not set").
			WithDetail("token", keywords.ProjectName)
	}
	name, err := r.Prompter.Prompt(ProjectNameLabel)
	if err != nil {
		return errors.Wrap(err, errors.ErrPromptFailed, "project name not set").
			WithDetail("token", keywords.ProjectName)
	}

	r.prompted = true
	r.store.Set(keywords.ProjectName, name)
	r.options.ProjectRoot = name
	r.Logger.Debug().Str("project", name).Msg("Project name set")
	return nil
}

// materialize substitutes, renders and writes one file
func (r *run) materialize(file File) error {
	path := r.store.Replace(file.Path)
	content := r.store.Replace(file.Content)

	if r.options.LiquidEnabled() && r.Renderer != nil {
		rendered, err := r.Renderer.Render(content)
		if err != nil {
			if !errors.IsErrorCode(err, errors.ErrRenderFailed) {
				err = errors.Wrap(err, errors.ErrRenderFailed, "failed to render content")
			}
			return withPath(err, path)
		}
		content = rendered
	}

	content = strings.ReplaceAll(content, ProjectMarker, keywords.ProjectName)

	target := r.outputPath(path)

	if dir := filepath.Dir(target); dir != "." && dir != string(filepath.Separator) {
		if err := r.FS.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
				WithDetail("path", dir)
		}
		if strings.Contains(path, "/") {
			r.report("creating directory", dir)
		}
	}

	if err := r.FS.WriteFile(target, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
			WithDetail("path", target)
	}
	r.report("file written", target)
	r.result.Written = append(r.result.Written, target)

	r.Logger.Debug().Str("path", target).Int("bytes", len(content)).Msg("File written")
	return nil
}

// outputPath expands a leading ~ and anchors relative paths at WorkDir
func (e *Extractor) outputPath(path string) string {
	path = e.expandHome(path)
	if filepath.IsAbs(path) || e.WorkDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(e.WorkDir, path)
}

func (e *Extractor) expandHome(path string) string {
	if e.Home == "" {
		return paths.ExpandHome(path)
	}
	if path == "~" {
		return e.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(e.Home, path[2:])
	}
	return path
}

func (e *Extractor) report(label, path string) {
	if e.Out == nil {
		return
	}
	fmt.Fprintln(e.Out, style.Status(label, path))
}

// withPath attaches the template path to spark errors
func withPath(err error, path string) error {
	if serr, ok := err.(*errors.SparkError); ok {
		if !serr.HasDetail("path") {
			return serr.WithDetail("path", path)
		}
	}
	return err
}
