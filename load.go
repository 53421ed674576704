package strata

import (
	"fmt"
	"io/fs"
)

// LoadFile loads a single configuration file, resolves every include
// directive it contains, and returns the merged document. The format is
// chosen by file extension through the resolver's registry; an extension
// with no registered parser fails with ErrUnsupportedFormat.
//
// The resolved root must be a mapping, otherwise ErrInvalidRootShape is
// returned. Includes are expanded relative to the file's directory.
func (r *Resolver) LoadFile(path string) (RawMapping, error) {
	inc := &includeResolver{fs: r.fs, formats: r.formats}
	doc, err := inc.loadFile(path, 0)
	if err != nil {
		return nil, err
	}
	m, ok := doc.(RawMapping)
	if !ok {
		return nil, fmt.Errorf("%w: %q resolved to %T", ErrInvalidRootShape, path, doc)
	}
	return m, nil
}

// fileLayer produces the file layer for one resolution pass. The path is
// chosen in order: Options.Path, the value of Options.PathEnvVar, then
// Options.DefaultPath. A path the caller asked for explicitly (directly or
// through the variable) must exist; only the default may be silently absent.
func (r *Resolver) fileLayer(opts Options) (RawMapping, error) {
	path := opts.Path
	explicit := path != ""
	if path == "" && opts.PathEnvVar != "" {
		if p := r.environ[opts.PathEnvVar]; p != "" {
			path = p
			explicit = true
		}
	}
	if path == "" {
		path = opts.DefaultPath
	}
	if path == "" {
		return RawMapping{}, nil
	}
	ok, err := r.fs.Exists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		if explicit {
			return nil, fmt.Errorf("configuration file %q: %w", path, fs.ErrNotExist)
		}
		return RawMapping{}, nil
	}
	return r.LoadFile(path)
}
