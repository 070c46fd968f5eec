package reconcile

import "sort"

// Diff computes the join-record insertions and deletions that make current equal
// to the selection restricted to the universe.
//
// The universe drives iteration, so submitted keys with no matching entity are
// ignored and the output order follows the universe. Current associations whose
// counterpart is outside the universe are always deleted, after the universe keys.
func Diff(universe []string, current map[string]struct{}, sel Selection) Delta {
	delta := Delta{Insert: []string{}, Delete: []string{}, Result: []string{}}

	if sel.Absent() {
		for key := range current {
			delta.Delete = append(delta.Delete, key)
		}
		sort.Strings(delta.Delete)
		return delta
	}

	selected := sel.Set()
	known := make(map[string]struct{}, len(universe))

	for _, key := range universe {
		known[key] = struct{}{}
		_, isSelected := selected[key]
		_, isCurrent := current[key]

		switch {
		case isSelected && !isCurrent:
			delta.Insert = append(delta.Insert, key)
		case !isSelected && isCurrent:
			delta.Delete = append(delta.Delete, key)
		}
		if isSelected {
			delta.Result = append(delta.Result, key)
		}
	}

	var stale []string
	for key := range current {
		if _, ok := known[key]; !ok {
			stale = append(stale, key)
		}
	}
	sort.Strings(stale)
	delta.Delete = append(delta.Delete, stale...)

	sort.Strings(delta.Result)
	return delta
}
