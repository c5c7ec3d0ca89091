package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/cli/wizard"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/naming"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/project"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/validate"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/defs"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/manifest"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/template"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/ui"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

var (
	// ErrNotInitialized is returned when a command runs before the
	// dependencies were wired.
	ErrNotInitialized = errors.New("dependencies not initialized")

	// ErrNoIdentity indicates that no author name could be determined.
	ErrNoIdentity = errors.New("no author identity: set git config user.name or pass --author")

	// ErrInvalidManifest indicates that a built manifest failed schema validation.
	ErrInvalidManifest = errors.New("generated manifest is invalid")
)

// cancelledMessage is printed when the user aborts the wizard.
const cancelledMessage = "Scaffolding cancelled."

// createOptions holds the flags of the scaffolding command.
type createOptions struct {
	slug          string
	displayName   string
	pluginType    string
	description   string
	platforms     []string
	pluginVersion string
	npm           bool
	git           bool

	repo        string
	branch      string
	yes         bool
	templateDir string
	dir         string
	author      string
}

// presetFlags maps string flags to the question they answer.
var presetFlags = []struct {
	flag string
	key  string
}{
	{"slug", models.KeyPluginSlug},
	{"display-name", models.KeyPluginName},
	{"type", models.KeyPluginType},
	{"description", models.KeyPluginDescription},
	{"plugin-version", models.KeyPluginVersion},
}

func (o *createOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.slug, "slug", "", "plugin slug (default: derived from the project name)")
	f.StringVar(&o.displayName, "display-name", "", "plugin display name (default: derived from the slug)")
	f.StringVar(&o.pluginType, "type", "", "plugin type: extension, theme or framework")
	f.StringVar(&o.description, "description", "", "plugin description")
	f.StringSliceVar(&o.platforms, "platform", nil, "supported platforms: win32, linux, darwin (repeatable)")
	f.StringVar(&o.pluginVersion, "plugin-version", "", "initial plugin version (semver)")
	f.BoolVar(&o.npm, "npm", false, "write package.json for npm")
	f.BoolVar(&o.git, "git", false, "initialize a git repository")

	f.StringVar(&o.repo, "repo", "", "GitHub repository (owner/name) recorded in the manifest")
	f.StringVar(&o.branch, "branch", "", "repository branch recorded in the manifest")
	f.BoolVarP(&o.yes, "yes", "y", false, "do not prompt; unanswered questions take their defaults")
	f.StringVar(&o.templateDir, "template-dir", "", "directory with main.template, preload.template and renderer.template")
	f.StringVar(&o.dir, "dir", "", "directory to create the project in (default: current directory)")
	f.StringVar(&o.author, "author", "", "author name (default: git config user.name)")
}

// presets returns the answers given on the command line. Only flags the
// user actually set become presets, so an explicit --git=false still
// overrides a true default.
func (o *createOptions) presets(cmd *cobra.Command, args []string) map[string]any {
	f := cmd.Flags()
	presets := make(map[string]any)
	if len(args) > 0 {
		presets[models.KeyProjectName] = args[0]
	}
	for _, pf := range presetFlags {
		if f.Changed(pf.flag) {
			v, _ := f.GetString(pf.flag)
			presets[pf.key] = v
		}
	}
	if f.Changed("platform") {
		presets[models.KeyPluginPlatform] = append([]string(nil), o.platforms...)
	}
	if f.Changed("npm") {
		presets[models.KeyPluginPackageNPM] = o.npm
	}
	if f.Changed("git") {
		presets[models.KeyPluginGit] = o.git
	}
	return presets
}

// prompter picks how open questions are answered: presets only when the
// run is non-interactive, presets layered over a form otherwise.
func (o *createOptions) prompter(presets map[string]any) wizard.Prompter {
	if o.yes || deps.Headless.IsHeadless() {
		return wizard.NewPresetPrompter(presets)
	}
	interactive := deps.Prompter
	if interactive == nil {
		interactive = wizard.NewFormPrompter(wizard.WithAccessible(os.Getenv("ACCESSIBLE") != ""))
	}
	return wizard.NewPresetPrompter(presets, wizard.WithFallback(interactive))
}

// @MX:ANCHOR: [AUTO] runCreate drives the whole scaffold: wizard, identity, manifest, materializer, summary.
// @MX:REASON: [AUTO] fan_in=2, called from root.go RunE and cli tests
func runCreate(cmd *cobra.Command, args []string, o *createOptions) error {
	if deps == nil {
		return ErrNotInitialized
	}
	if o.repo != "" {
		if err := validate.GitHubRepo(o.repo); err != nil {
			return fmt.Errorf("--repo: %w", err)
		}
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	cfg := deps.Config
	logger := deps.Logger.With("module", "create")

	collector, err := wizard.NewCollector(wizard.DefaultQuestions(wizard.Defaults{
		Type:      cfg.Defaults.Type,
		Platforms: cfg.Defaults.Platforms,
		Version:   cfg.Defaults.Version,
		NPM:       cfg.Defaults.NPM,
		Git:       cfg.Defaults.Git,
	}), o.prompter(o.presets(cmd, args)), deps.Logger)
	if err != nil {
		return err
	}

	answers, err := collector.Collect(ctx)
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(out, cancelledMessage)
		return nil
	}
	if err != nil {
		return err
	}

	progress := ui.NewProgressTo(deps.Theme, deps.Headless, out)

	identity, err := o.identity(ctx, progress)
	if err != nil {
		return err
	}

	parent := o.dir
	if parent == "" {
		if parent, err = os.Getwd(); err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	dirName := naming.DirName(cfg.Namespace, answers.String(models.KeyProjectName))
	doc := manifest.Build(answers, identity, manifest.WithRepository(o.repository(dirName)))
	if err := checkBuilt(doc); err != nil {
		return err
	}

	req := project.Request{
		Parent:    parent,
		Namespace: cfg.Namespace,
		Answers:   answers,
		Manifest:  doc,
	}
	if answers.Bool(models.KeyPluginPackageNPM) {
		req.Package = manifest.BuildPackage(answers, identity)
	}

	templateDir := o.templateDir
	if templateDir == "" {
		templateDir = cfg.TemplateDir
	}
	templates, err := template.Load(templateDir)
	if err != nil {
		return err
	}

	mat := project.NewMaterializer(deps.FS, templates,
		project.WithGit(deps.Git),
		project.WithLogger(deps.Logger),
	)
	reporter := ui.NewStepReporter(progress.Start("Scaffolding "+dirName, mat.Steps(req)), deps.Theme, cmd.ErrOrStderr())
	mat.SetReporter(reporter)

	result, err := mat.Materialize(ctx, req)
	reporter.Finish()
	if err != nil {
		return err
	}
	logger.Info("project created", "root", result.Layout.Root, "files", len(result.CreatedFiles))

	if result.GitError != nil {
		_, _ = fmt.Fprintln(out, deps.Theme.WarningLine("git repository was not initialized; run git init in the project directory"))
	}
	printSummary(out, doc, result, req.Package != nil)
	return nil
}

// identity returns the author name: --author when given, else git's
// user.name. A missing identity is fatal because the manifest requires an
// author.
func (o *createOptions) identity(ctx context.Context, progress ui.Progress) (string, error) {
	if name := strings.TrimSpace(o.author); name != "" {
		return name, nil
	}
	if deps.Git == nil {
		return "", ErrNoIdentity
	}

	spinner := progress.Spinner("Reading git identity")
	name, err := deps.Git.UserName(ctx)
	spinner.Stop()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoIdentity, err)
	}
	if name == "" {
		return "", ErrNoIdentity
	}
	return name, nil
}

// repository returns the repository record arguments. --repo wins; a
// configured owner yields owner/dirName.
func (o *createOptions) repository(dirName string) (repo, branch string) {
	repo = o.repo
	if repo == "" && deps.Config.Repository.Owner != "" {
		repo = deps.Config.Repository.Owner + "/" + dirName
	}
	branch = o.branch
	if branch == "" {
		branch = deps.Config.Repository.Branch
	}
	return repo, branch
}

// checkBuilt validates the serialized manifest against the schema before
// anything is written.
func checkBuilt(doc *manifest.Manifest) error {
	data, err := manifest.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := manifest.Validate(data)
	if err != nil {
		return err
	}
	if !res.Valid {
		issues := make([]string, len(res.Issues))
		for i, issue := range res.Issues {
			issues[i] = issue.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(issues, "; "))
	}
	return nil
}

func printSummary(w io.Writer, doc *manifest.Manifest, result *project.Result, npm bool) {
	const width = 9
	theme := deps.Theme
	_, _ = fmt.Fprintln(w, theme.SuccessCard("Plugin created",
		theme.KeyValue("Directory", result.Layout.Root, width),
		theme.KeyValue("Slug", doc.Slug, width),
		theme.KeyValue("Type", string(doc.Type), width),
		theme.KeyValue("Version", doc.Version, width),
		theme.KeyValue("Git", gitStatus(result), width),
	))

	md := nextSteps(result.Layout, npm)
	rendered, err := ui.RenderMarkdown(theme, deps.Headless, md)
	if err != nil {
		deps.Logger.Warn("render next steps", "error", err)
		rendered = md
	}
	_, _ = fmt.Fprint(w, rendered)
}

func gitStatus(result *project.Result) string {
	switch {
	case result.GitInitialized:
		return "initialized"
	case result.GitError != nil:
		return "failed"
	default:
		return "skipped"
	}
}

func nextSteps(layout project.Layout, npm bool) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "1. Move or link `%s` into the `plugins` directory of your %s data folder.\n", layout.Name(), naming.Product)
	fmt.Fprintf(&b, "2. Edit `%s/%s`, `%s/%s` and `%s/%s`.\n",
		defs.SourceDir, defs.MainJS, defs.SourceDir, defs.PreloadJS, defs.SourceDir, defs.RendererJS)
	n := 3
	if npm {
		fmt.Fprintf(&b, "%d. Run `npm install` in the project directory.\n", n)
		n++
	}
	fmt.Fprintf(&b, "%d. Restart QQNT to load the plugin.\n", n)
	return b.String()
}
