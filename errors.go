package strata

import (
	"errors"
	"fmt"

	"github.com/strataconf/strata/format"
)

var (
	// ErrUnsupportedFormat is returned when no parser is registered for a
	// configuration file's extension.
	ErrUnsupportedFormat = format.ErrUnsupported
	// ErrIncludeNotFound is returned when a literal include path does not
	// exist. A glob that matches nothing is not an error.
	ErrIncludeNotFound = errors.New("include not found")
	// ErrIncludeCycle is returned when include expansion exceeds the
	// recursion limit, typically because a file includes itself.
	ErrIncludeCycle = errors.New("include recursion limit exceeded")
	// ErrInvalidRootShape is returned when a document root resolves to
	// something other than a mapping.
	ErrInvalidRootShape = errors.New("configuration root is not a mapping")
	// ErrInvalidAddress is returned when an environment variable name does
	// not decode to at least one non-empty path segment after the prefix.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrAddressConflict is returned when a decoded path would have to
	// descend through, or overwrite, a node another value already claimed.
	ErrAddressConflict = errors.New("address conflict")
)

// ConflictError reports two environment variables whose decoded addresses
// overlap, one being a strict prefix of the other. It unwraps to
// ErrAddressConflict.
type ConflictError struct {
	// Variable is the variable whose value could not be applied.
	Variable string
	// Previous is the variable that claimed the conflicting node.
	Previous string
	// Path is the dotted address where the conflict occurred.
	Path string
}

func (e *ConflictError) Error() string {
	if e.Previous == "" {
		return fmt.Sprintf("address conflict at %q applying %s", e.Path, e.Variable)
	}
	return fmt.Sprintf("address conflict at %q: %s and %s overlap", e.Path, e.Previous, e.Variable)
}

func (e *ConflictError) Unwrap() error { return ErrAddressConflict }
