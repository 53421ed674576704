package strata

import (
	"fmt"
	"strings"
)

// Address is the decoded nested-key route derived from a delimited name such
// as an environment variable. Segments are lower-cased and never empty.
type Address []string

// DecodeAddress splits name on sep and strips the leading prefix segment,
// matched case-insensitively. The remaining segments, lower-cased, form the
// address. A name whose first segment is not the prefix, that reduces to
// zero segments, or that contains an empty segment fails with
// ErrInvalidAddress.
func DecodeAddress(name, prefix, sep string) (Address, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	parts := strings.Split(name, sep)
	if !strings.EqualFold(parts[0], prefix) {
		return nil, fmt.Errorf("%w: %q does not start with prefix %q", ErrInvalidAddress, name, prefix)
	}
	rest := parts[1:]
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: %q has no segments after prefix", ErrInvalidAddress, name)
	}
	addr := make(Address, len(rest))
	for i, seg := range rest {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidAddress, name)
		}
		addr[i] = strings.ToLower(seg)
	}
	return addr, nil
}

// String renders the address in dotted form.
func (a Address) String() string {
	return strings.Join(a, ".")
}

// Set walks root along the address, creating intermediate mappings as
// needed, and stores value at the leaf, overwriting any existing leaf.
// Descending through an existing non-mapping node fails with
// ErrAddressConflict.
func (a Address) Set(root RawMapping, value any) error {
	node := root
	for i, seg := range a[:len(a)-1] {
		child, ok := node[seg]
		if !ok {
			next := RawMapping{}
			node[seg] = next
			node = next
			continue
		}
		next, ok := child.(RawMapping)
		if !ok {
			return fmt.Errorf("%w: cannot descend through non-mapping at %q", ErrAddressConflict, a[:i+1].String())
		}
		node = next
	}
	node[a[len(a)-1]] = value
	return nil
}
