package strata

// Merge combines two raw mappings into a new one. Keys present in only one
// side are taken verbatim; keys present in both are merged recursively when
// both values are mappings, otherwise the overlay value wins outright.
// Sequences are replaced wholesale, never concatenated.
//
// Neither input is modified. Subtrees that exist on only one side are shared
// with the result, not copied; all layers are treated as read-only.
func Merge(base, overlay RawMapping) RawMapping {
	out := make(RawMapping, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if existing, ok := out[k]; ok {
			out[k] = mergeValue(existing, v)
			continue
		}
		out[k] = v
	}
	return out
}

// MergeAll left-folds Merge over the given layers, lowest precedence first.
func MergeAll(layers ...RawMapping) RawMapping {
	out := RawMapping{}
	for _, layer := range layers {
		out = Merge(out, layer)
	}
	return out
}

func mergeValue(base, overlay any) any {
	bm, baseIsMap := base.(RawMapping)
	om, overlayIsMap := overlay.(RawMapping)
	if baseIsMap && overlayIsMap {
		return Merge(bm, om)
	}
	return overlay
}
