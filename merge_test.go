package strata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strataconf/strata"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    strata.RawMapping
		overlay strata.RawMapping
		want    strata.RawMapping
	}{
		{
			name:    "empty mappings",
			base:    strata.RawMapping{},
			overlay: strata.RawMapping{},
			want:    strata.RawMapping{},
		},
		{
			name:    "overlay identity",
			base:    strata.RawMapping{"a": 1, "b": 2},
			overlay: strata.RawMapping{},
			want:    strata.RawMapping{"a": 1, "b": 2},
		},
		{
			name:    "base identity",
			base:    strata.RawMapping{},
			overlay: strata.RawMapping{"a": 1, "b": 2},
			want:    strata.RawMapping{"a": 1, "b": 2},
		},
		{
			name:    "disjoint keys union",
			base:    strata.RawMapping{"a": 1},
			overlay: strata.RawMapping{"b": 2},
			want:    strata.RawMapping{"a": 1, "b": 2},
		},
		{
			name:    "overlay wins scalar",
			base:    strata.RawMapping{"a": 1, "b": 2},
			overlay: strata.RawMapping{"b": 3, "c": 4},
			want:    strata.RawMapping{"a": 1, "b": 3, "c": 4},
		},
		{
			name:    "deep key union",
			base:    strata.RawMapping{"a": strata.RawMapping{"p": 1}},
			overlay: strata.RawMapping{"a": strata.RawMapping{"q": 2}},
			want:    strata.RawMapping{"a": strata.RawMapping{"p": 1, "q": 2}},
		},
		{
			name:    "nested overlay wins",
			base:    strata.RawMapping{"a": strata.RawMapping{"x": 1, "y": 2}, "b": 3},
			overlay: strata.RawMapping{"a": strata.RawMapping{"y": 4, "z": 5}, "c": 6},
			want:    strata.RawMapping{"a": strata.RawMapping{"x": 1, "y": 4, "z": 5}, "b": 3, "c": 6},
		},
		{
			name:    "sequences replaced not concatenated",
			base:    strata.RawMapping{"x": []any{1, 2}},
			overlay: strata.RawMapping{"x": []any{3}},
			want:    strata.RawMapping{"x": []any{3}},
		},
		{
			name:    "scalar replaces mapping",
			base:    strata.RawMapping{"a": strata.RawMapping{"x": 1}},
			overlay: strata.RawMapping{"a": "replaced"},
			want:    strata.RawMapping{"a": "replaced"},
		},
		{
			name:    "mapping replaces scalar",
			base:    strata.RawMapping{"a": "original"},
			overlay: strata.RawMapping{"a": strata.RawMapping{"x": 1}},
			want:    strata.RawMapping{"a": strata.RawMapping{"x": 1}},
		},
		{
			name:    "nil overlay value wins",
			base:    strata.RawMapping{"a": 1, "b": 2},
			overlay: strata.RawMapping{"a": nil},
			want:    strata.RawMapping{"a": nil, "b": 2},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, strata.Merge(tc.base, tc.overlay))
		})
	}
}

func TestMerge_RightBias(t *testing.T) {
	// For a key present in both later layers, the last one wins regardless
	// of how the fold groups.
	a := strata.RawMapping{"k": "a"}
	b := strata.RawMapping{"k": "b"}
	c := strata.RawMapping{"k": "c"}

	assert.Equal(t, "c", strata.Merge(strata.Merge(a, b), c)["k"])
	assert.Equal(t, "c", strata.MergeAll(a, b, c)["k"])
}

func TestMerge_InputsNotModified(t *testing.T) {
	base := strata.RawMapping{"a": strata.RawMapping{"x": 1}}
	overlay := strata.RawMapping{"a": strata.RawMapping{"y": 2}}

	got := strata.Merge(base, overlay)

	assert.Equal(t, strata.RawMapping{"a": strata.RawMapping{"x": 1}}, base)
	assert.Equal(t, strata.RawMapping{"a": strata.RawMapping{"y": 2}}, overlay)
	assert.Equal(t, strata.RawMapping{"a": strata.RawMapping{"x": 1, "y": 2}}, got)
}

func TestMergeAll_NoLayers(t *testing.T) {
	assert.Equal(t, strata.RawMapping{}, strata.MergeAll())
}
