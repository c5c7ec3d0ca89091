package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Template names inside a template set.
const (
	MainTemplate     = "main.template"
	PreloadTemplate  = "preload.template"
	RendererTemplate = "renderer.template"
)

//go:embed files/*.template
var embedded embed.FS

// Required returns the names every template set must provide.
func Required() []string {
	return []string{MainTemplate, PreloadTemplate, RendererTemplate}
}

// Embedded returns the template set compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// fs.Sub only fails for invalid paths; "files" is a constant.
		panic(err)
	}
	return sub
}

// Load returns the template set to scaffold from. An empty dir selects the
// embedded set; otherwise dir must contain every required template.
func Load(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s: not a directory", dir)
	}
	fsys := os.DirFS(filepath.Clean(dir))
	if err := Verify(fsys); err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	return fsys, nil
}

// Verify checks that fsys provides every required template as a regular file.
func Verify(fsys fs.FS) error {
	for _, name := range Required() {
		info, err := fs.Stat(fsys, name)
		if err != nil || !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
	}
	return nil
}
