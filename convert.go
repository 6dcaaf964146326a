package zodschema

import (
	"fmt"
	"sort"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// Convert translates a definition into a JSON Schema draft-07 document.
func Convert(def zod.Def, opts Options) (*jsonschema.Schema, error) {
	if def == nil {
		return nil, Issues{{Path: "/", Code: CodeMalformedDefinition, Message: "nil definition"}}
	}
	refs := newRefs(opts)
	defPath := opts.definitionPath()

	// Pre-register shared definitions before any conversion so that every
	// occurrence, including occurrences inside other definitions, resolves to
	// a $ref into the definitions section.
	names := make([]string, 0, len(opts.Definitions))
	for name := range opts.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if d := opts.Definitions[name]; trackable(d) {
			refs.Seen[d] = &seen{path: []string{"#", defPath, name}}
		}
	}

	var defs map[string]*jsonschema.Schema
	if len(names) > 0 {
		defs = make(map[string]*jsonschema.Schema, len(names))
		for _, name := range names {
			s, err := parseDef(opts.Definitions[name], refs.at(defPath, name), true)
			if err != nil {
				return nil, err
			}
			defs[name] = s
		}
	}

	rootRefs := refs
	if opts.Name != "" {
		rootRefs = refs.at(defPath, opts.Name)
	}
	main, err := parseDef(def, rootRefs, false)
	if err != nil {
		return nil, err
	}

	out := main
	if opts.Name != "" {
		if defs == nil {
			defs = make(map[string]*jsonschema.Schema, 1)
		}
		defs[opts.Name] = main
		out = &jsonschema.Schema{Ref: refTo([]string{"#", defPath, opts.Name})}
	}
	if defs != nil {
		if defPath == "$defs" {
			out.Defs = defs
		} else {
			out.Definitions = defs
		}
	}
	out.SchemaURI = jsonschema.Version
	return out, nil
}

// parseDef routes one definition to its converter. The seen registry is
// consulted first so revisits of a shared definition, and re-entrant visits
// on cyclic graphs, short-circuit into a $ref instead of re-deriving (or
// infinitely recursing into) the fragment. force bypasses the short-circuit
// for definitions pre-registered by Convert, which must resolve their bodies
// exactly once.
func parseDef(def zod.Def, refs *Refs, force bool) (*jsonschema.Schema, error) {
	if def == nil {
		return nil, Issues{{Path: refs.pointer(), Code: CodeMalformedDefinition, Message: "nil definition"}}
	}
	if !trackable(def) {
		return selectConverter(def, refs)
	}
	item, ok := refs.Seen[def]
	if ok && !force {
		ref := &jsonschema.Schema{Ref: refTo(item.path)}
		item.refs = append(item.refs, ref)
		return ref, nil
	}
	if !ok {
		// Register before descending into children: a definition containing
		// itself must find its own entry.
		refs.Seen[def] = &seen{path: refs.CurrentPath}
	}
	return selectConverter(def, refs)
}

// selectConverter is the exhaustive dispatch over definition kinds. A
// definition type outside the closed zod set is a hard failure, never a
// silent drop.
func selectConverter(def zod.Def, refs *Refs) (*jsonschema.Schema, error) {
	switch d := def.(type) {
	case *zod.StringDef:
		return parseString(d, refs)
	case *zod.NumberDef:
		return parseNumber(d, refs)
	case *zod.BigIntDef:
		return &jsonschema.Schema{Type: jsonschema.Type{"integer"}, Format: "int64"}, nil
	case *zod.BooleanDef:
		return &jsonschema.Schema{Type: jsonschema.Type{"boolean"}}, nil
	case *zod.DateDef:
		return &jsonschema.Schema{Type: jsonschema.Type{"string"}, Format: "date-time"}, nil
	case *zod.NullDef:
		return &jsonschema.Schema{Type: jsonschema.Type{"null"}}, nil
	case *zod.AnyDef, *zod.UnknownDef:
		return &jsonschema.Schema{}, nil
	case *zod.NeverDef:
		return &jsonschema.Schema{Not: &jsonschema.Schema{}}, nil
	case *zod.LiteralDef:
		return parseLiteral(d, refs)
	case *zod.EnumDef:
		return parseEnum(d)
	case *zod.ArrayDef:
		return parseArray(d, refs)
	case *zod.TupleDef:
		return parseTuple(d, refs)
	case *zod.SetDef:
		return parseSet(d, refs)
	case *zod.ObjectDef:
		return parseObject(d, refs)
	case *zod.RecordDef:
		return parseRecord(d, refs)
	case *zod.UnionDef:
		return parseUnion(d, refs)
	case *zod.IntersectionDef:
		return parseIntersection(d, refs)
	case *zod.OptionalDef:
		// Optionality only matters in property position; standalone it is the
		// inner shape.
		return parseDef(d.Inner, refs, false)
	case *zod.NullableDef:
		return parseNullable(d, refs)
	case *zod.DefaultDef:
		return parseDefault(d, refs)
	case *zod.CatchDef:
		return parseDef(d.Inner, refs, false)
	case *zod.BrandedDef:
		return parseDef(d.Inner, refs, false)
	case *zod.ReadonlyDef:
		return parseDef(d.Inner, refs, false)
	case *zod.LazyDef:
		return parseDef(d.Resolve(), refs, false)
	case *zod.PipelineDef:
		return parsePipeline(d, refs)
	case *zod.EffectsDef:
		return parseEffects(d, refs)
	default:
		return nil, Issues{{
			Path:    refs.pointer(),
			Code:    CodeUnsupportedType,
			Message: fmt.Sprintf("no converter for definition kind %v", def.TypeName()),
		}}
	}
}
