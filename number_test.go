package zodschema_test

import (
	"testing"

	zodschema "github.com/Janpot/zod-to-json-schema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

func TestNumber_Bare(t *testing.T) {
	expectTree(t, zod.Number(), zodschema.Options{}, `{"type": "number"}`)
}

func TestNumber_IntRewritesType(t *testing.T) {
	expectTree(t, zod.Number().Int(), zodschema.Options{}, `{"type": "integer"}`)
}

func TestNumber_InclusiveAndExclusiveBoundsKeepDistinctKeywords(t *testing.T) {
	expectTree(t, zod.Number().Min(0).Lt(100), zodschema.Options{}, `{
		"type": "number",
		"minimum": 0,
		"exclusiveMaximum": 100
	}`)

	expectTree(t, zod.Number().Gt(0).Max(100), zodschema.Options{}, `{
		"type": "number",
		"exclusiveMinimum": 0,
		"maximum": 100
	}`)
}

func TestNumber_BoundsTightenRegardlessOfOrder(t *testing.T) {
	expectTree(t, zod.Number().Min(1).Min(3).Max(10).Max(7), zodschema.Options{}, `{
		"type": "number",
		"minimum": 3,
		"maximum": 7
	}`)

	// Exclusive bounds tighten within their own keyword.
	expectTree(t, zod.Number().Gt(5).Gt(2), zodschema.Options{}, `{
		"type": "number",
		"exclusiveMinimum": 5
	}`)
}

func TestNumber_MultipleOf(t *testing.T) {
	expectTree(t, zod.Number().MultipleOf(0.5), zodschema.Options{}, `{
		"type": "number",
		"multipleOf": 0.5
	}`)
}

func TestNumber_FiniteIsDropped(t *testing.T) {
	expectTree(t, zod.Number().Finite().Min(1), zodschema.Options{}, `{
		"type": "number",
		"minimum": 1
	}`)
}

func TestNumber_MessagesRecordedWhenEnabled(t *testing.T) {
	def := zod.Number().Int("whole numbers only").Min(0, "no negatives")
	expectTree(t, def, zodschema.Options{ErrorMessages: true}, `{
		"type": "integer",
		"minimum": 0,
		"errorMessage": {
			"type": "whole numbers only",
			"minimum": "no negatives"
		}
	}`)
}

func TestNumber_UnknownCheckKindFails(t *testing.T) {
	def := &zod.NumberDef{Checks: []zod.NumberCheck{{Kind: zod.NumberCheckKind(42)}}}
	_, err := zodschema.Convert(def, zodschema.Options{})
	iss, ok := zodschema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != zodschema.CodeUnsupportedCheck {
		t.Fatalf("expected one unsupported_check issue, got %#v", err)
	}
}
