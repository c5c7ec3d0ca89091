package project

import (
	"path/filepath"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/naming"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/defs"
)

// Layout resolves every output path of a scaffolded project.
type Layout struct {
	Root      string // Project directory, e.g. ./LiteLoaderQQNT-My-Cool-Plugin
	SourceDir string // Inject script directory name, always "src"
}

// NewLayout computes the layout for projectName inside parent. The directory
// name is the namespace followed by the dashed, title-cased project words.
func NewLayout(parent, namespace, projectName string) Layout {
	return Layout{
		Root:      filepath.Join(parent, naming.DirName(namespace, projectName)),
		SourceDir: defs.SourceDir,
	}
}

// Name returns the project directory name.
func (l Layout) Name() string {
	return filepath.Base(l.Root)
}

// SourcePath returns the absolute-or-relative path of the source directory.
func (l Layout) SourcePath() string {
	return filepath.Join(l.Root, l.SourceDir)
}

// File returns the path of a file in the project root.
func (l Layout) File(name string) string {
	return filepath.Join(l.Root, name)
}

// SourceFile returns the path of a file in the source directory.
func (l Layout) SourceFile(name string) string {
	return filepath.Join(l.Root, l.SourceDir, name)
}
