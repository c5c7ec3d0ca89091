package manifest

import (
	"path"
	"strings"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/defs"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// DefaultBranch is used for the repository record when no branch is given.
const DefaultBranch = "main"

// Option customizes Build.
type Option func(*Manifest)

// WithRepository records the GitHub repository ("owner/name") the plugin is
// released from. An empty repo leaves the record out.
func WithRepository(repo, branch string) Option {
	return func(m *Manifest) {
		if repo == "" {
			return
		}
		if branch == "" {
			branch = DefaultBranch
		}
		m.Repository = &Repository{
			Repo:    repo,
			Branch:  branch,
			Release: Release{Tag: "v" + m.Version},
		}
	}
}

// WithDependencies lists the slugs of plugins this one requires.
func WithDependencies(slugs ...string) Option {
	return func(m *Manifest) {
		if len(slugs) > 0 {
			m.Dependencies = append([]string(nil), slugs...)
		}
	}
}

// @MX:ANCHOR: [AUTO] Build is the single place answers become a manifest; the writer and the check command both rely on its shape.
// @MX:REASON: [AUTO] fan_in=3, called from cli/create.go, manifest tests, project tests
// Build maps a completed answer set and the author identity to a Manifest.
// It performs no validation; the wizard guarantees every answer is present
// and valid.
func Build(answers *models.AnswerSet, identity string, opts ...Option) *Manifest {
	m := &Manifest{
		ManifestVersion: SchemaVersion,
		Type:            models.PluginType(answers.String(models.KeyPluginType)),
		Name:            answers.String(models.KeyProjectName),
		Slug:            answers.String(models.KeyPluginSlug),
		Description:     answers.String(models.KeyPluginDescription),
		Version:         answers.String(models.KeyPluginVersion),
		Authors: []Author{{
			Name: identity,
			Link: GitHubBaseURL + identity,
		}},
		Platform: platforms(answers.Strings(models.KeyPluginPlatform)),
		Injects: Injects{
			Renderer: InjectPath(defs.RendererJS),
			Main:     InjectPath(defs.MainJS),
			Preload:  InjectPath(defs.PreloadJS),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// InjectPath returns the manifest path of a file in the source directory,
// e.g. "./src/main.js".
func InjectPath(name string) string {
	return "./" + path.Join(defs.SourceDir, name)
}

// BuildPackage maps the answers to a package.json document.
func BuildPackage(answers *models.AnswerSet, identity string) *Package {
	return &Package{
		Name:        strings.ToLower(answers.String(models.KeyPluginSlug)),
		Version:     answers.String(models.KeyPluginVersion),
		Description: answers.String(models.KeyPluginDescription),
		Private:     true,
		Author:      identity,
		Main:        InjectPath(defs.MainJS),
	}
}

func platforms(values []string) []models.Platform {
	out := make([]models.Platform, 0, len(values))
	for _, v := range values {
		out = append(out, models.Platform(v))
	}
	return out
}
