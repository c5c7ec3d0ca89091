package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/defs"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/manifest"
)

// ErrCheckFailed is returned when a project manifest has problems.
var ErrCheckFailed = errors.New("manifest check failed")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate the manifest.json of an existing plugin",
		Long: `Check validates manifest.json in dir (default: the current directory)
against the LiteLoaderQQNT manifest schema, verifies that the version is
strict semantic versioning, and that every inject script exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return ErrNotInitialized
	}
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	issues, doc, err := checkProject(dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := deps.Theme
	if len(issues) > 0 {
		for _, issue := range issues {
			_, _ = fmt.Fprintln(out, theme.ErrorLine(issue))
		}
		return fmt.Errorf("%w: %d problem(s) in %s", ErrCheckFailed, len(issues), filepath.Join(dir, defs.ManifestJSON))
	}

	const width = 7
	_, _ = fmt.Fprintln(out, theme.SuccessCard(defs.ManifestJSON+" is valid",
		theme.KeyValue("Name", doc.Name, width),
		theme.KeyValue("Slug", doc.Slug, width),
		theme.KeyValue("Version", doc.Version, width),
	))
	return nil
}

// checkProject returns every problem found in dir's manifest. The error
// return is reserved for a missing or unreadable manifest.
func checkProject(dir string) ([]string, *manifest.Manifest, error) {
	path := filepath.Join(dir, defs.ManifestJSON)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	res, err := manifest.Validate(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	var issues []string
	for _, issue := range res.Issues {
		issues = append(issues, "schema: "+issue.String())
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		// Schema-valid JSON with mistyped fields still fails here.
		return append(issues, err.Error()), nil, nil
	}

	if _, err := semver.StrictNewVersion(doc.Version); err != nil {
		issues = append(issues, fmt.Sprintf("version %q: %v", doc.Version, err))
	}

	for _, inject := range []struct{ name, path string }{
		{"main", doc.Injects.Main},
		{"preload", doc.Injects.Preload},
		{"renderer", doc.Injects.Renderer},
	} {
		if inject.path == "" {
			continue
		}
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(inject.path)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			issues = append(issues, fmt.Sprintf("injects.%s: %s does not exist", inject.name, inject.path))
		case err != nil:
			issues = append(issues, fmt.Sprintf("injects.%s: %v", inject.name, err))
		}
	}
	return issues, doc, nil
}
