package wizard

import (
	"slices"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/naming"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/validate"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// Defaults are the configurable initial values of the default questions.
type Defaults struct {
	Type      string
	Platforms []string
	Version   string
	NPM       bool
	Git       bool
}

// DefaultQuestions returns the standard question sequence:
//  1. project name
//  2. plugin slug (derived from 1)
//  3. plugin display name (derived from 2)
//  4. plugin type
//  5. description (derived from 3)
//  6. supported platforms
//  7. version
//  8. npm toggle
//  9. git toggle
func DefaultQuestions(d Defaults) []Question {
	return []Question{
		{
			Key:         models.KeyProjectName,
			Kind:        KindInput,
			Title:       "Project name",
			Description: "Used as the manifest name and for the project directory.",
			Validators:  []validate.Func{validate.FileName},
		},
		{
			Key:         models.KeyPluginSlug,
			Kind:        KindInput,
			Title:       "Plugin slug",
			Description: "Unique identifier of the plugin, e.g. my_plugin.",
			Derive: &Deriver{
				Requires: []string{models.KeyProjectName},
				Func: func(a *models.AnswerSet) string {
					return naming.Slug(a.String(models.KeyProjectName))
				},
			},
			Validators: []validate.Func{validate.FileName},
		},
		{
			Key:         models.KeyPluginName,
			Kind:        KindInput,
			Title:       "Plugin name",
			Description: "Display name shown in the plugin list.",
			Derive: &Deriver{
				Requires: []string{models.KeyPluginSlug},
				Func: func(a *models.AnswerSet) string {
					return naming.DisplayName(a.String(models.KeyPluginSlug))
				},
			},
			Validators: []validate.Func{validate.NonEmpty},
		},
		{
			Key:     models.KeyPluginType,
			Kind:    KindSelect,
			Title:   "Plugin type",
			Initial: d.Type,
			Options: []Option{
				{Label: "Extension", Value: string(models.PluginTypeExtension), Desc: "A regular plugin"},
				{Label: "Theme", Value: string(models.PluginTypeTheme), Desc: "Restyles QQNT"},
				{Label: "Framework", Value: string(models.PluginTypeFramework), Desc: "Provides APIs to other plugins"},
			},
		},
		{
			Key:         models.KeyPluginDescription,
			Kind:        KindInput,
			Title:       "Description",
			Description: "One sentence about what the plugin does.",
			Derive: &Deriver{
				Requires: []string{models.KeyPluginName},
				Func: func(a *models.AnswerSet) string {
					return naming.Description(a.String(models.KeyPluginName))
				},
			},
		},
		{
			Key:         models.KeyPluginPlatform,
			Kind:        KindMultiSelect,
			Title:       "Supported platforms",
			Description: "Space to toggle, enter to confirm.",
			Initial:     slices.Clone(d.Platforms),
			Options: []Option{
				{Label: "Windows", Value: string(models.PlatformWindows), Selected: true},
				{Label: "Linux", Value: string(models.PlatformLinux), Selected: true},
				{Label: "macOS", Value: string(models.PlatformMacOS), Selected: true},
			},
		},
		{
			Key:         models.KeyPluginVersion,
			Kind:        KindInput,
			Title:       "Version",
			Description: "Semantic version, e.g. 1.0.0.",
			Initial:     d.Version,
			Validators:  []validate.Func{validate.SemVer},
		},
		{
			Key:         models.KeyPluginPackageNPM,
			Kind:        KindConfirm,
			Title:       "Use npm as the package manager?",
			Description: "Writes a package.json next to the manifest.",
			Initial:     d.NPM,
		},
		{
			Key:     models.KeyPluginGit,
			Kind:    KindConfirm,
			Title:   "Initialize a git repository?",
			Initial: d.Git,
		},
	}
}
