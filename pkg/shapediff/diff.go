// Package shapediff compares the structure of two raw JSON values in
// lock-step and classifies every visited path as same, added or removed.
//
// Like the inference engine, only array element 0 (the representative
// element) is ever inspected; arrays differing only beyond index 0 compare
// as identical. A kind change at a node masks everything beneath it.
package shapediff

import (
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
)

// Entry is one classified path. Paths use `.` for object field descent and
// `[0]` for the representative array element; the empty path reads "root".
type Entry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Result holds the three ordered classification sequences.
type Result struct {
	Same    []Entry `json:"same"`
	Added   []Entry `json:"added"`
	Removed []Entry `json:"removed"`
}

// Identical reports whether no structural additions or removals were found.
func (r *Result) Identical() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0
}

// Diff walks two values in lock-step and returns the classified paths.
// It is total: any pair of classifiable values diffs without error, and
// self-referential values terminate.
func Diff(a, b any) *Result {
	res := &Result{
		Same:    []Entry{},
		Added:   []Entry{},
		Removed: []Entry{},
	}
	diffValue(a, b, "", res, make(map[uintptr]struct{}))
	return res
}

// diffValue recurses with the chain of currently-open composite identities,
// the same way inference does. A side that re-enters a value already open on
// the chain ends the walk at that path; descending again would never
// terminate.
func diffValue(a, b any, path string, res *Result, open map[uintptr]struct{}) {
	ka := jsonvalue.KindOf(a)
	kb := jsonvalue.KindOf(b)

	if ka != kb {
		res.Removed = append(res.Removed, Entry{Path: displayPath(path), Type: string(ka)})
		res.Added = append(res.Added, Entry{Path: displayPath(path), Type: string(kb)})
		return
	}

	ida, trackedA := jsonvalue.Identity(a)
	idb, trackedB := jsonvalue.Identity(b)
	if trackedA {
		if _, cyc := open[ida]; cyc {
			res.Same = append(res.Same, Entry{Path: displayPath(path), Type: string(ka)})
			return
		}
		open[ida] = struct{}{}
		defer delete(open, ida)
	}
	if trackedB && idb != ida {
		if _, cyc := open[idb]; cyc {
			res.Same = append(res.Same, Entry{Path: displayPath(path), Type: string(ka)})
			return
		}
		open[idb] = struct{}{}
		defer delete(open, idb)
	}

	switch ka {
	case jsonvalue.KindObject:
		diffObjects(a, b, path, res, open)

	case jsonvalue.KindArray:
		aa := a.([]any)
		ba := b.([]any)
		switch {
		case len(aa) == 0 && len(ba) == 0:
			res.Same = append(res.Same, Entry{Path: displayPath(path), Type: "array"})
		case len(aa) == 0 || len(ba) == 0:
			// One side has no representative element; nothing comparable.
		default:
			before := changeCount(res)
			diffValue(aa[0], ba[0], path+"[0]", res, open)
			if changeCount(res) == before {
				res.Same = append(res.Same, Entry{Path: displayPath(path), Type: "array"})
			}
		}

	default:
		res.Same = append(res.Same, Entry{Path: displayPath(path), Type: string(ka)})
	}
}

func diffObjects(a, b any, path string, res *Result, open map[uintptr]struct{}) {
	before := changeCount(res)

	fa := jsonvalue.Fields(a)
	fb := jsonvalue.Fields(b)

	bValues := make(map[string]any, len(fb))
	for _, f := range fb {
		bValues[f.Name] = f.Value
	}
	aNames := make(map[string]struct{}, len(fa))
	for _, f := range fa {
		aNames[f.Name] = struct{}{}
	}

	for _, f := range fa {
		child := childPath(path, f.Name)
		bv, shared := bValues[f.Name]
		if !shared {
			res.Removed = append(res.Removed, Entry{Path: child, Type: string(jsonvalue.KindOf(f.Value))})
			continue
		}
		diffValue(f.Value, bv, child, res, open)
	}

	for _, f := range fb {
		if _, shared := aNames[f.Name]; shared {
			continue
		}
		res.Added = append(res.Added, Entry{Path: childPath(path, f.Name), Type: string(jsonvalue.KindOf(f.Value))})
	}

	if changeCount(res) == before {
		res.Same = append(res.Same, Entry{Path: displayPath(path), Type: "object"})
	}
}

func changeCount(res *Result) int {
	return len(res.Added) + len(res.Removed)
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func displayPath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
