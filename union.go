package zodschema

import (
	"reflect"
	"strconv"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// parseUnion prefers compact encodings over generic composition: options that
// are all bare primitives collapse into a multi-valued type, literal-only and
// enum-only unions collapse into enum form, and everything else becomes
// anyOf.
func parseUnion(def *zod.UnionDef, refs *Refs) (*jsonschema.Schema, error) {
	if s, ok := collapsePrimitives(def); ok {
		return s, nil
	}
	if s, ok := collapseLiterals(def); ok {
		return s, nil
	}
	if s, ok := collapseEnums(def); ok {
		return s, nil
	}
	res := &jsonschema.Schema{}
	for i, opt := range def.Options {
		s, err := parseDef(opt, refs.at("anyOf", strconv.Itoa(i)), false)
		if err != nil {
			return nil, err
		}
		res.AnyOf = append(res.AnyOf, s)
	}
	return res, nil
}

// barePrimitiveType maps a check-free primitive definition to its JSON type
// name.
func barePrimitiveType(def zod.Def) (string, bool) {
	switch d := def.(type) {
	case *zod.StringDef:
		if len(d.Checks) == 0 {
			return "string", true
		}
	case *zod.NumberDef:
		if len(d.Checks) == 0 {
			return "number", true
		}
	case *zod.BigIntDef:
		return "integer", true
	case *zod.BooleanDef:
		return "boolean", true
	case *zod.NullDef:
		return "null", true
	}
	return "", false
}

func collapsePrimitives(def *zod.UnionDef) (*jsonschema.Schema, bool) {
	if len(def.Options) == 0 {
		return nil, false
	}
	var types jsonschema.Type
	for _, opt := range def.Options {
		t, ok := barePrimitiveType(opt)
		if !ok {
			return nil, false
		}
		if !containsString(types, t) {
			types = append(types, t)
		}
	}
	return &jsonschema.Schema{Type: types}, true
}

func collapseLiterals(def *zod.UnionDef) (*jsonschema.Schema, bool) {
	if len(def.Options) == 0 {
		return nil, false
	}
	var types jsonschema.Type
	values := make([]any, 0, len(def.Options))
	for _, opt := range def.Options {
		lit, ok := opt.(*zod.LiteralDef)
		if !ok {
			return nil, false
		}
		t, ok := literalType(lit.Value)
		if !ok {
			return nil, false
		}
		if !containsString(types, t) {
			types = append(types, t)
		}
		values = append(values, lit.Value)
	}
	return &jsonschema.Schema{Type: types, Enum: values}, true
}

func collapseEnums(def *zod.UnionDef) (*jsonschema.Schema, bool) {
	if len(def.Options) == 0 {
		return nil, false
	}
	var values []string
	for _, opt := range def.Options {
		en, ok := opt.(*zod.EnumDef)
		if !ok {
			return nil, false
		}
		for _, v := range en.Values {
			if !containsString(values, v) {
				values = append(values, v)
			}
		}
	}
	return &jsonschema.Schema{Type: jsonschema.Type{"string"}, Enum: stringsToAny(values)}, true
}

// parseIntersection joins both sides with allOf, splicing children that are
// themselves bare allOf wrappers so nesting stays flat. Splicing moves
// fragments to new positions, so the seen registry is rebased onto the final
// indices and refs already emitted into the spliced region stay resolvable.
func parseIntersection(def *zod.IntersectionDef, refs *Refs) (*jsonschema.Schema, error) {
	parts := make([]*jsonschema.Schema, 0, 2)
	for _, side := range []zod.Def{def.Left, def.Right} {
		idx := len(parts)
		sideRefs := refs.at("allOf", strconv.Itoa(idx))
		s, err := parseDef(side, sideRefs, false)
		if err != nil {
			return nil, err
		}
		if bareAllOf(s) {
			for j := range s.AllOf {
				refs.rebase(
					sideRefs.at("allOf", strconv.Itoa(j)).CurrentPath,
					refs.at("allOf", strconv.Itoa(idx+j)).CurrentPath,
				)
			}
			// The wrapper fragment no longer exists as a node once spliced; a
			// revisit of that definition must re-derive instead of pointing at
			// one of its pieces.
			delete(refs.Seen, side)
			parts = append(parts, s.AllOf...)
		} else {
			parts = append(parts, s)
		}
	}
	return &jsonschema.Schema{AllOf: parts}, nil
}

// bareAllOf reports whether s carries an allOf list and nothing else.
func bareAllOf(s *jsonschema.Schema) bool {
	if len(s.AllOf) == 0 {
		return false
	}
	return reflect.DeepEqual(s, &jsonschema.Schema{AllOf: s.AllOf})
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func stringsToAny(vs []string) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
