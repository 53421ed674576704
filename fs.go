package strata

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filesystem is the read-only file access used during resolution. The engine
// performs no writes; injecting an in-memory implementation makes resolution
// fully hermetic.
type Filesystem interface {
	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)
	// Exists reports whether path exists. Errors other than non-existence
	// are returned as-is.
	Exists(path string) (bool, error)
	// Glob expands a glob pattern, ** included, into matching file paths.
	// Zero matches is not an error.
	Glob(pattern string) ([]string, error)
}

// OSFilesystem is the default Filesystem, backed by the real filesystem.
type OSFilesystem struct{}

// ReadFile implements Filesystem.
func (OSFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists implements Filesystem.
func (OSFilesystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Glob implements Filesystem.
func (OSFilesystem) Glob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern)
}

// FS adapts an io/fs.FS into a Filesystem. Paths are interpreted relative to
// the tree root; use slash-separated relative paths in documents resolved
// against it.
type FS struct {
	fsys fs.FS
}

// NewFS wraps fsys for use as the resolver's filesystem.
func NewFS(fsys fs.FS) FS {
	return FS{fsys: fsys}
}

// ReadFile implements Filesystem.
func (f FS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(f.fsys, fsPath(path))
}

// Exists implements Filesystem.
func (f FS) Exists(path string) (bool, error) {
	_, err := fs.Stat(f.fsys, fsPath(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Glob implements Filesystem.
func (f FS) Glob(pattern string) ([]string, error) {
	return doublestar.Glob(f.fsys, fsPath(pattern))
}

// fsPath rewrites an engine path into the rooted slash form io/fs expects.
func fsPath(p string) string {
	p = filepath.ToSlash(filepath.Clean(p))
	if p == "" {
		return "."
	}
	return p
}
