package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileSystem is the set of file operations the materializer needs.
type FileSystem interface {
	// Exists reports whether anything (file, directory, link) exists at path.
	Exists(path string) (bool, error)
	// Mkdir creates path and any missing parents.
	Mkdir(path string) error
	// WriteFile creates or truncates path with data.
	WriteFile(path string, data []byte) error
	// Copy writes everything read from src to path.
	Copy(path string, src io.Reader) error
}

// Compile-time interface compliance check.
var _ FileSystem = OSFileSystem{}

// OSFileSystem implements FileSystem on the local disk.
type OSFileSystem struct{}

// Exists implements FileSystem.
func (OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Mkdir implements FileSystem.
func (OSFileSystem) Mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile implements FileSystem.
func (OSFileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// Copy implements FileSystem.
func (OSFileSystem) Copy(path string, src io.Reader) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	_, err = io.Copy(f, src)
	return err
}
