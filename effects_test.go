package zodschema_test

import (
	"reflect"
	"testing"

	zodschema "github.com/Janpot/zod-to-json-schema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

func TestEffects_RefinementIsTransparent(t *testing.T) {
	base := convertTree(t, zod.String().Min(1), zodschema.Options{})
	refined := convertTree(t, zod.Refine(zod.String().Min(1)), zodschema.Options{})
	if !reflect.DeepEqual(base, refined) {
		t.Fatalf("refinement changed the schema:\n base    %v\n refined %v", base, refined)
	}
}

func TestEffects_TransformDescribesInputByDefault(t *testing.T) {
	def := zod.Transform(zod.String().Min(1))
	expectTree(t, def, zodschema.Options{}, `{
		"type": "string",
		"minLength": 1
	}`)
}

func TestEffects_TransformUnderAnyStrategy(t *testing.T) {
	opts := zodschema.Options{Effects: zodschema.EffectsAny}
	expectTree(t, zod.Transform(zod.String().Min(1)), opts, `{}`)
	expectTree(t, zod.Preprocess(zod.Number()), opts, `{}`)

	// Refinements stay transparent even under EffectsAny.
	expectTree(t, zod.Refine(zod.Number().Int()), opts, `{"type": "integer"}`)
}

func TestPipeline_InputSideByDefault(t *testing.T) {
	def := zod.Pipeline(zod.String().Datetime(), zod.Date())
	expectTree(t, def, zodschema.Options{}, `{
		"type": "string",
		"format": "date-time"
	}`)
}

func TestPipeline_AllStrategyJoinsStages(t *testing.T) {
	def := zod.Pipeline(zod.Number(), zod.Number().Int())
	expectTree(t, def, zodschema.Options{Pipes: zodschema.PipeAll}, `{
		"allOf": [
			{"type": "number"},
			{"type": "integer"}
		]
	}`)
}

func TestWrappers_Nullable(t *testing.T) {
	expectTree(t, zod.Nullable(zod.String()), zodschema.Options{}, `{
		"type": ["string", "null"]
	}`)

	expectTree(t, zod.Nullable(zod.String().Min(1)), zodschema.Options{}, `{
		"anyOf": [
			{"type": "string", "minLength": 1},
			{"type": "null"}
		]
	}`)

	// null stays a single type instead of doubling up.
	expectTree(t, zod.Nullable(zod.Null()), zodschema.Options{}, `{
		"anyOf": [
			{"type": "null"},
			{"type": "null"}
		]
	}`)
}

func TestWrappers_DefaultAnnotatesValue(t *testing.T) {
	expectTree(t, zod.Default(zod.Number().Int(), 10), zodschema.Options{}, `{
		"type": "integer",
		"default": 10
	}`)

	// false is a legitimate default and must survive serialization.
	expectTree(t, zod.Default(zod.Boolean(), false), zodschema.Options{}, `{
		"type": "boolean",
		"default": false
	}`)
}

func TestWrappers_TransparentOnes(t *testing.T) {
	want := `{"type": "string", "minLength": 2}`
	inner := func() *zod.StringDef { return zod.String().Min(2) }

	expectTree(t, zod.Optional(inner()), zodschema.Options{}, want)
	expectTree(t, zod.Catch(inner(), "fallback"), zodschema.Options{}, want)
	expectTree(t, zod.Branded(inner()), zodschema.Options{}, want)
	expectTree(t, zod.Readonly(inner()), zodschema.Options{}, want)
}
