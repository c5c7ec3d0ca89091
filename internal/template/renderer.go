package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
)

// SlugPlaceholder is replaced with the plugin slug in rendered templates.
const SlugPlaceholder = "{{plugin-slug}}"

// unexpandedTokenPattern detects placeholders left in rendered output.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{plugin-[a-z-]+\}\}`)

// Renderer produces file content from a template. Substitution is a literal
// string replace; templates have no other syntax.
type Renderer interface {
	// Render reads the named template and replaces every SlugPlaceholder
	// with slug. Returns ErrTemplateNotFound if the template is missing and
	// ErrUnexpandedToken if another plugin placeholder remains.
	Render(templateName, slug string) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render implements Renderer.
func (r *renderer) Render(templateName, slug string) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}
	return Substitute(content, slug)
}

// Substitute replaces SlugPlaceholder in content with slug.
func Substitute(content []byte, slug string) ([]byte, error) {
	result := bytes.ReplaceAll(content, []byte(SlugPlaceholder), []byte(slug))
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}
	return result, nil
}
