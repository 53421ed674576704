package strata

import (
	"github.com/strataconf/strata/format"
)

// Resolver merges the four configuration layers, lowest precedence first:
// defaults (empty), file, environment, arguments. It holds only injected
// capabilities, never state from a previous resolution, so a single Resolver
// is safe for concurrent use.
type Resolver struct {
	fs      Filesystem
	formats *format.Registry
	environ map[string]string
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithFilesystem replaces the real filesystem, typically with an FS over a
// fstest.MapFS in tests.
func WithFilesystem(fs Filesystem) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithFormats replaces the default parser registry, e.g. to restrict the
// recognized formats.
func WithFormats(reg *format.Registry) Option {
	return func(r *Resolver) { r.formats = reg }
}

// WithEnviron replaces the process environment snapshot.
func WithEnviron(environ map[string]string) Option {
	return func(r *Resolver) { r.environ = environ }
}

// New returns a Resolver reading the real filesystem and the environment as
// captured at call time, with every built-in format registered.
func New(options ...Option) *Resolver {
	r := &Resolver{
		fs:      OSFilesystem{},
		formats: format.Default(),
		environ: Environ(),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Resolve produces the final raw mapping for one configuration pass:
//
//	Merge(Merge(Merge(defaults, file), env), args)
//
// where defaults is the empty mapping. The result is freshly allocated and
// untyped; hand it to a schema binder (see the bind package) for typing and
// validation. Any layer failure aborts the whole resolution.
func (r *Resolver) Resolve(opts Options, args RawMapping) (RawMapping, error) {
	fileLayer, err := r.fileLayer(opts)
	if err != nil {
		return nil, err
	}
	envLayer := RawMapping{}
	if opts.EnvPrefix != "" {
		envLayer, err = BuildEnvLayer(r.environ, opts.EnvPrefix, opts.EnvSeparator)
		if err != nil {
			return nil, err
		}
	}
	argsLayer, _ := normalizeKeys(args).(RawMapping)
	return MergeAll(fileLayer, envLayer, argsLayer), nil
}
