package zodschema

import (
	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// parseEffects describes what a caller must supply. A refinement never
// changes the accepted input, so it converts to its base type unchanged.
// Transforms and preprocessors follow the configured strategy: EffectsInput
// (the default) describes the input side, EffectsAny drops to the
// unconstrained fragment.
func parseEffects(def *zod.EffectsDef, refs *Refs) (*jsonschema.Schema, error) {
	if def.Mode != zod.EffectsRefine && refs.Opts.Effects == EffectsAny {
		return &jsonschema.Schema{}, nil
	}
	return parseDef(def.Inner, refs, false)
}

// parseNullable widens check-free primitives in place via a two-valued type;
// anything else becomes an anyOf with an explicit null branch.
func parseNullable(def *zod.NullableDef, refs *Refs) (*jsonschema.Schema, error) {
	if t, ok := barePrimitiveType(def.Inner); ok && t != "null" {
		return &jsonschema.Schema{Type: jsonschema.Type{t, "null"}}, nil
	}
	inner, err := parseDef(def.Inner, refs.at("anyOf", "0"), false)
	if err != nil {
		return nil, err
	}
	return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
		inner,
		{Type: jsonschema.Type{"null"}},
	}}, nil
}

// parseDefault converts the inner definition and annotates the materialized
// default value.
func parseDefault(def *zod.DefaultDef, refs *Refs) (*jsonschema.Schema, error) {
	s, err := parseDef(def.Inner, refs, false)
	if err != nil {
		return nil, err
	}
	s.Default = def.Value
	return s, nil
}

// parsePipeline describes the input side by default; PipeAll joins both
// sides with allOf since a value must satisfy each stage in turn.
func parsePipeline(def *zod.PipelineDef, refs *Refs) (*jsonschema.Schema, error) {
	if refs.Opts.Pipes == PipeAll {
		in, err := parseDef(def.In, refs.at("allOf", "0"), false)
		if err != nil {
			return nil, err
		}
		out, err := parseDef(def.Out, refs.at("allOf", "1"), false)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{AllOf: []*jsonschema.Schema{in, out}}, nil
	}
	return parseDef(def.In, refs, false)
}
