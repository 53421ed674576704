package strata

import (
	"strings"

	"github.com/spf13/pflag"
)

// FlagLayer builds an argument-layer mapping from the flags a user actually
// set. keys maps flag names to dotted configuration paths; flags without an
// entry use their own name as the path. Unset flags contribute nothing, so
// flag defaults never shadow lower-precedence layers.
//
// Values of string-typed flags are kept verbatim; other flag types go
// through the same scalar inference as environment variables.
func FlagLayer(flags *pflag.FlagSet, keys map[string]string) RawMapping {
	root := RawMapping{}
	if flags == nil {
		return root
	}
	flags.Visit(func(f *pflag.Flag) {
		path := f.Name
		if mapped, ok := keys[f.Name]; ok {
			path = mapped
		}
		addr := Address(strings.Split(strings.ToLower(path), "."))
		// Flag names and the key mapping are caller-controlled; a path that
		// collides with a scalar set by an earlier flag is skipped.
		_ = addr.Set(root, flagValue(f))
	})
	return root
}

func flagValue(f *pflag.Flag) any {
	s := f.Value.String()
	if f.Value.Type() == "string" {
		return s
	}
	return inferScalar(s)
}
