// Package strata resolves application configuration from layered sources
// (configuration files with recursive includes, environment variables, and
// caller-supplied overrides) into a single merged raw mapping.
//
// Strata is deliberately untyped: resolution produces a plain
// map[string]any, and a separate binding step (see the bind package) turns
// that into a validated struct. The engine never assumes a schema; every
// merge decision is structural.
//
// # Layers
//
// Four layers are merged, lowest precedence first:
//
//  1. defaults: empty; schema defaults belong to the binder
//  2. file: one document, with $include directives expanded
//  3. environment: variables under a configured prefix
//  4. arguments: a mapping supplied by the caller (see FlagLayer)
//
// Mappings merge recursively by key union. Scalars and sequences are
// replaced wholesale by the higher-precedence layer; there is no list-merge
// strategy.
//
// # Includes
//
// A mapping whose only key is "$include" is replaced by the deep-merged
// contents of the comma-separated files and globs it names, resolved
// relative to the including file. Glob matches merge in lexicographic
// order; "!" prefixed patterns exclude their matches. Included files may
// include further files, bounded by a recursion guard.
//
// # Environment overrides
//
// With prefix APP and the default "__" separator, APP__SERVER__PORT=8080
// sets server.port. Values are inferred as bool, integer, float or string.
//
// # Example
//
//	r := strata.New()
//	raw, err := r.Resolve(strata.Options{
//	    DefaultPath: "/etc/myapp/config.yaml",
//	    PathEnvVar:  "MYAPP_CONFIG",
//	    EnvPrefix:   "MYAPP",
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var cfg Config
//	if err := bind.Bind(raw, &cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Each resolution is a one-shot, read-only pass over the injected filesystem
// and environment snapshot; nothing is cached between calls.
package strata
