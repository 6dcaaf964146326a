package zodschema

import (
	"strings"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// seen records the first emission of a definition: the output path the
// fragment landed at, plus every $ref fragment pointing there so a later
// rebase can retarget them.
type seen struct {
	path []string
	refs []*jsonschema.Schema
}

// Refs is the run-scoped conversion context threaded through every converter
// call: the output path under construction, the identity-keyed registry of
// visited definitions, and the option set. One Refs per Convert call; never
// shared across runs.
type Refs struct {
	CurrentPath []string
	Seen        map[zod.Def]*seen
	Opts        Options
}

func newRefs(opts Options) *Refs {
	return &Refs{
		CurrentPath: []string{"#"},
		Seen:        make(map[zod.Def]*seen),
		Opts:        opts,
	}
}

// at returns a context whose path descends into the given segments. The seen
// registry and options are shared; only the path is rebound.
func (r *Refs) at(segments ...string) *Refs {
	cp := make([]string, 0, len(r.CurrentPath)+len(segments))
	cp = append(cp, r.CurrentPath...)
	cp = append(cp, segments...)
	return &Refs{CurrentPath: cp, Seen: r.Seen, Opts: r.Opts}
}

// rebase repoints every seen entry at or under oldPath to the matching
// position under newPath, rewriting the $ref fragments already emitted for
// those entries. Callers use it when a structural rewrite moves fragments
// after conversion.
func (r *Refs) rebase(oldPath, newPath []string) {
	for _, item := range r.Seen {
		if !pathHasPrefix(item.path, oldPath) {
			continue
		}
		moved := make([]string, 0, len(newPath)+len(item.path)-len(oldPath))
		moved = append(moved, newPath...)
		moved = append(moved, item.path[len(oldPath):]...)
		item.path = moved
		target := refTo(moved)
		for _, ref := range item.refs {
			ref.Ref = target
		}
	}
}

func pathHasPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i, seg := range prefix {
		if path[i] != seg {
			return false
		}
	}
	return true
}

// trackable reports whether a definition participates in the seen registry.
// The stateless kinds are excluded: their structs are zero-size, so every
// constructor call returns the same address and independent definitions
// would conflate. They cannot recurse and cost nothing to re-derive inline.
func trackable(def zod.Def) bool {
	switch def.TypeName() {
	case zod.TypeBoolean, zod.TypeBigInt, zod.TypeDate, zod.TypeNull,
		zod.TypeAny, zod.TypeUnknown, zod.TypeNever:
		return false
	}
	return true
}

// pointer renders the current path as a JSON Pointer for diagnostics.
func (r *Refs) pointer() string {
	if len(r.CurrentPath) <= 1 {
		return "/"
	}
	return "/" + strings.Join(r.CurrentPath[1:], "/")
}

// refTo joins an output path into a $ref value, e.g. "#/properties/user".
func refTo(path []string) string { return strings.Join(path, "/") }
