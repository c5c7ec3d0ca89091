package project

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/defs"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/manifest"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/template"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// GitInitializer creates a repository rooted at dir.
type GitInitializer interface {
	Init(ctx context.Context, dir string) error
}

// Request describes one project to materialize.
type Request struct {
	Parent    string             // Directory the project directory is created in.
	Namespace string             // Directory name prefix, e.g. "LiteLoaderQQNT".
	Answers   *models.AnswerSet  // Completed wizard answers.
	Manifest  *manifest.Manifest // Written to manifest.json.
	Package   *manifest.Package  // Written to package.json when non-nil.
}

// Result summarizes a materialization.
type Result struct {
	Layout       Layout
	CreatedDirs  []string
	CreatedFiles []string

	GitInitialized bool
	GitError       error // Non-nil when git init was requested and failed.
}

// Materializer turns a manifest and answers into a project directory.
type Materializer struct {
	fs        FileSystem
	templates fs.FS
	renderer  template.Renderer
	git       GitInitializer
	reporter  ProgressReporter
	logger    *slog.Logger
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithGit enables repository initialization for requests that opt in.
func WithGit(g GitInitializer) Option {
	return func(m *Materializer) { m.git = g }
}

// WithReporter sets the progress reporter.
func WithReporter(r ProgressReporter) Option {
	return func(m *Materializer) { m.reporter = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Materializer) { m.logger = l }
}

// NewMaterializer creates a Materializer writing through fsys and reading
// templates from templates.
func NewMaterializer(fsys FileSystem, templates fs.FS, opts ...Option) *Materializer {
	m := &Materializer{
		fs:        fsys,
		templates: templates,
		renderer:  template.NewRenderer(templates),
		reporter:  &NoOpReporter{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("module", "project")
	return m
}

// SetReporter replaces the progress reporter. A nil reporter discards
// progress.
func (m *Materializer) SetReporter(r ProgressReporter) {
	if r == nil {
		r = &NoOpReporter{}
	}
	m.reporter = r
}

// Steps returns how many reporter steps Materialize runs for req.
func (m *Materializer) Steps(req Request) int {
	n := 6 // two directories, manifest, three sources
	if req.Package != nil {
		n++
	}
	if m.wantsGit(req) {
		n++
	}
	return n
}

// @MX:ANCHOR: [AUTO] Materialize is the only code path that writes a scaffolded project to disk.
// @MX:REASON: [AUTO] fan_in=3, called from cli/create.go and project tests
// Materialize creates the project directory for req. Steps run strictly in
// order: existence check, directories, manifest, sources, package.json, git.
// The first failing step aborts the rest and nothing is rolled back. A git
// init failure is recorded in Result.GitError and does not fail the call.
func (m *Materializer) Materialize(ctx context.Context, req Request) (*Result, error) {
	if req.Answers == nil || req.Manifest == nil {
		return nil, fmt.Errorf("%w: answers and manifest are required", ErrMissingAnswer)
	}
	projectName := req.Answers.String(models.KeyProjectName)
	if projectName == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnswer, models.KeyProjectName)
	}

	layout := NewLayout(req.Parent, req.Namespace, projectName)
	result := &Result{Layout: layout}

	exists, err := attempt("check "+layout.Root, func() (bool, error) {
		return m.fs.Exists(layout.Root)
	})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryExists, layout.Root)
	}

	// Interruption is honoured up to here; once the first directory exists
	// the remaining steps always run.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.logger.Info("materializing project", "root", layout.Root, "slug", req.Manifest.Slug)

	steps := []struct {
		name string
		run  func() error
	}{
		{"create directory " + layout.Root, func() error { return m.mkdir(layout.Root, result) }},
		{"create directory " + layout.SourcePath(), func() error { return m.mkdir(layout.SourcePath(), result) }},
		{"create " + defs.ManifestJSON, func() error { return m.writeManifest(layout, req.Manifest, result) }},
		{"create " + defs.MainJS, func() error {
			return m.copyTemplate(template.MainTemplate, layout.SourceFile(defs.MainJS), result)
		}},
		{"create " + defs.PreloadJS, func() error {
			return m.renderTemplate(template.PreloadTemplate, layout.SourceFile(defs.PreloadJS), req.Manifest.Slug, result)
		}},
		{"create " + defs.RendererJS, func() error {
			return m.copyTemplate(template.RendererTemplate, layout.SourceFile(defs.RendererJS), result)
		}},
	}
	if req.Package != nil {
		steps = append(steps, struct {
			name string
			run  func() error
		}{"create " + defs.PackageJSON, func() error { return m.writePackage(layout, req.Package, result) }})
	}

	for _, step := range steps {
		m.reporter.StepStart(step.name, "")
		if err := attemptDo(step.name, step.run); err != nil {
			m.reporter.StepError(err)
			m.logger.Error("scaffold step failed", "step", step.name, "error", err)
			return result, err
		}
		m.reporter.StepComplete(step.name)
	}

	if m.wantsGit(req) {
		m.initGit(ctx, layout, result)
	}

	return result, nil
}

func (m *Materializer) wantsGit(req Request) bool {
	return m.git != nil && req.Answers != nil && req.Answers.Bool(models.KeyPluginGit)
}

func (m *Materializer) initGit(ctx context.Context, layout Layout, result *Result) {
	const step = "initialize git repository"
	m.reporter.StepStart(step, layout.Root)
	if err := attemptDo(step, func() error { return m.git.Init(ctx, layout.Root) }); err != nil {
		result.GitError = err
		m.reporter.StepError(err)
		m.logger.Warn("git init failed", "root", layout.Root, "error", err)
		return
	}
	result.GitInitialized = true
	m.reporter.StepComplete(step)
}

func (m *Materializer) mkdir(path string, result *Result) error {
	if err := m.fs.Mkdir(path); err != nil {
		return err
	}
	result.CreatedDirs = append(result.CreatedDirs, path)
	return nil
}

func (m *Materializer) writeManifest(layout Layout, doc *manifest.Manifest, result *Result) error {
	data, err := manifest.Marshal(doc)
	if err != nil {
		return err
	}
	return m.write(layout.File(defs.ManifestJSON), data, result)
}

func (m *Materializer) writePackage(layout Layout, pkg *manifest.Package, result *Result) error {
	data, err := manifest.MarshalPackage(pkg)
	if err != nil {
		return err
	}
	return m.write(layout.File(defs.PackageJSON), data, result)
}

func (m *Materializer) copyTemplate(name, dst string, result *Result) error {
	src, err := m.templates.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %s", template.ErrTemplateNotFound, name)
	}
	defer func() { _ = src.Close() }()

	if err := m.fs.Copy(dst, src); err != nil {
		return err
	}
	result.CreatedFiles = append(result.CreatedFiles, dst)
	return nil
}

func (m *Materializer) renderTemplate(name, dst, slug string, result *Result) error {
	data, err := m.renderer.Render(name, slug)
	if err != nil {
		return err
	}
	return m.write(dst, data, result)
}

func (m *Materializer) write(path string, data []byte, result *Result) error {
	if err := m.fs.WriteFile(path, data); err != nil {
		return err
	}
	result.CreatedFiles = append(result.CreatedFiles, path)
	return nil
}
