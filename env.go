package strata

import (
	"sort"
	"strconv"
	"strings"
)

// BuildEnvLayer assembles the environment layer from a captured snapshot.
// Variables whose first sep-delimited segment case-insensitively matches
// prefix contribute one value each, addressed by the remaining segments;
// everything else is ignored. Values are inferred in order as boolean
// literal, integer, float, then raw string.
//
// Variables are applied in sorted name order so the result and any error are
// deterministic. Two variables whose addresses overlap, one a strict prefix
// of the other, fail with a ConflictError naming both.
func BuildEnvLayer(environ map[string]string, prefix, sep string) (RawMapping, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	names := make([]string, 0, len(environ))
	for name := range environ {
		if first, _, _ := strings.Cut(name, sep); strings.EqualFold(first, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	root := RawMapping{}
	setters := make(map[string]string, len(names))
	for _, name := range names {
		addr, err := DecodeAddress(name, prefix, sep)
		if err != nil {
			return nil, err
		}
		leaf := addr.String()
		if prev, ok := setterBelow(setters, leaf); ok {
			return nil, &ConflictError{Variable: name, Previous: prev, Path: leaf}
		}
		if err := addr.Set(root, inferScalar(environ[name])); err != nil {
			prev, path := setterAbove(setters, addr)
			return nil, &ConflictError{Variable: name, Previous: prev, Path: path}
		}
		setters[leaf] = name
	}
	return root, nil
}

// setterAbove finds the variable that set a scalar at a strict prefix of
// addr, the one a failed descent ran into.
func setterAbove(setters map[string]string, addr Address) (variable, path string) {
	for i := 1; i < len(addr); i++ {
		p := addr[:i].String()
		if v, ok := setters[p]; ok {
			return v, p
		}
	}
	return "", addr.String()
}

// setterBelow finds a variable whose leaf sits at or under path, meaning the
// node at path is already a mapping some longer address created.
func setterBelow(setters map[string]string, path string) (string, bool) {
	for p, v := range setters {
		if p == path || strings.HasPrefix(p, path+".") {
			return v, true
		}
	}
	return "", false
}

// inferScalar coerces an environment variable value. Only the literals
// "true" and "false" (any case) become booleans, so numeric strings are
// never shadowed by the boolean attempt. No structured parsing is applied;
// anything non-numeric stays a string.
func inferScalar(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
