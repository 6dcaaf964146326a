package zodschema

import "github.com/Janpot/zod-to-json-schema/zod"

// EffectsStrategy controls how transforming effects are described.
type EffectsStrategy int

const (
	// EffectsInput describes the input side of a transform, since the emitted
	// schema validates data being supplied.
	EffectsInput EffectsStrategy = iota
	// EffectsAny emits an unconstrained fragment for transforms.
	EffectsAny
)

// PipeStrategy controls which side of a pipeline is described.
type PipeStrategy int

const (
	// PipeInput describes only the input side of a pipeline.
	PipeInput PipeStrategy = iota
	// PipeAll describes both sides via allOf.
	PipeAll
)

// Options controls conversion behavior for one Convert call.
type Options struct {
	// Name places the converted body under <definitionPath>/<Name> and makes
	// the document root a bare $ref to it.
	Name string
	// DefinitionPath selects where shared definitions live: "definitions"
	// (the default) or "$defs".
	DefinitionPath string
	// Definitions pre-registers shared definitions by name. Occurrences of a
	// registered definition anywhere in the graph emit $ref pointers into the
	// definitions section instead of inlined fragments.
	Definitions map[string]zod.Def
	// ErrorMessages enables the errorMessage sidecar for checks that carry a
	// message. When disabled, messages are never emitted.
	ErrorMessages bool
	Effects       EffectsStrategy
	Pipes         PipeStrategy
}

func (o Options) definitionPath() string {
	if o.DefinitionPath == "" {
		return "definitions"
	}
	return o.DefinitionPath
}
