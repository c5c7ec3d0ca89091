// Package manifest builds, serializes and validates the LiteLoaderQQNT
// plugin manifest (manifest.json) and the optional package.json that
// accompanies it.
package manifest

import "github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"

// SchemaVersion is the manifest_version this scaffolder writes.
const SchemaVersion = 4

// GitHubBaseURL prefixes the author profile link.
const GitHubBaseURL = "https://github.com/"

// Manifest is the structure of manifest.json. Field order is the
// serialization order.
type Manifest struct {
	ManifestVersion int               `json:"manifest_version"`
	Type            models.PluginType `json:"type"`
	Name            string            `json:"name"`
	Slug            string            `json:"slug"`
	Description     string            `json:"description"`
	Version         string            `json:"version"`
	Icon            *string           `json:"icon,omitempty"`
	Authors         []Author          `json:"authors"`
	Dependencies    []string          `json:"dependencies,omitempty"`
	Platform        []models.Platform `json:"platform"`
	Injects         Injects           `json:"injects"`
	Repository      *Repository       `json:"repository,omitempty"`
}

// Author is a manifest author entry.
type Author struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Injects maps the three injection points to paths relative to the plugin root.
type Injects struct {
	Renderer string `json:"renderer,omitempty"`
	Main     string `json:"main,omitempty"`
	Preload  string `json:"preload,omitempty"`
}

// Repository describes where the plugin is published.
type Repository struct {
	Repo    string  `json:"repo"`
	Branch  string  `json:"branch"`
	Release Release `json:"release"`
}

// Release identifies the release asset used for installation.
type Release struct {
	Tag  string `json:"tag"`
	File string `json:"file,omitempty"`
}

// Package is the package.json written alongside the manifest when the
// project uses npm.
type Package struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	Author      string `json:"author"`
	Main        string `json:"main"`
}
