package zodschema_test

import (
	"testing"

	"github.com/tidwall/gjson"

	zodschema "github.com/Janpot/zod-to-json-schema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

func TestUnion_BarePrimitivesCollapseIntoTypeList(t *testing.T) {
	def := zod.Union(zod.String(), zod.Number(), zod.Null())
	expectTree(t, def, zodschema.Options{}, `{
		"type": ["string", "number", "null"]
	}`)
}

func TestUnion_DuplicatePrimitiveTypesDeduplicate(t *testing.T) {
	def := zod.Union(zod.String(), zod.String(), zod.Boolean())
	expectTree(t, def, zodschema.Options{}, `{
		"type": ["string", "boolean"]
	}`)
}

func TestUnion_LiteralsCollapseIntoEnum(t *testing.T) {
	def := zod.Union(zod.Literal("a"), zod.Literal("b"), zod.Literal(1))
	expectTree(t, def, zodschema.Options{}, `{
		"type": ["string", "number"],
		"enum": ["a", "b", 1]
	}`)
}

func TestUnion_EnumsMergeAndDeduplicate(t *testing.T) {
	def := zod.Union(zod.Enum("a", "b"), zod.Enum("b", "c"))
	expectTree(t, def, zodschema.Options{}, `{
		"type": "string",
		"enum": ["a", "b", "c"]
	}`)
}

func TestUnion_CheckedOptionsFallBackToAnyOf(t *testing.T) {
	def := zod.Union(zod.String().Min(1), zod.Number())
	expectTree(t, def, zodschema.Options{}, `{
		"anyOf": [
			{"type": "string", "minLength": 1},
			{"type": "number"}
		]
	}`)
}

func TestUnion_MixedKindsFallBackToAnyOf(t *testing.T) {
	def := zod.Union(zod.Literal("a"), zod.Enum("b", "c"))
	expectTree(t, def, zodschema.Options{}, `{
		"anyOf": [
			{"type": "string", "const": "a"},
			{"type": "string", "enum": ["b", "c"]}
		]
	}`)
}

func TestIntersection_AllOfOfBothSides(t *testing.T) {
	def := zod.Intersection(
		zod.Object().Field("a", zod.String()),
		zod.Object().Field("b", zod.Number()),
	)
	expectTree(t, def, zodschema.Options{}, `{
		"allOf": [
			{"type": "object", "properties": {"a": {"type": "string"}}, "required": ["a"]},
			{"type": "object", "properties": {"b": {"type": "number"}}, "required": ["b"]}
		]
	}`)
}

func TestIntersection_NestedAllOfFlattens(t *testing.T) {
	def := zod.Intersection(
		zod.Intersection(
			zod.Object().Field("a", zod.String()),
			zod.Object().Field("b", zod.String()),
		),
		zod.Object().Field("c", zod.String()),
	)
	got := convertTree(t, def, zodschema.Options{})
	allOf, ok := got["allOf"].([]any)
	if !ok || len(allOf) != 3 {
		t.Fatalf("nested intersections should flatten into one allOf of 3, got %v", got["allOf"])
	}
}

func TestIntersection_FlatteningKeepsSharedRefsResolvable(t *testing.T) {
	shared := zod.Object().Field("id", zod.String())
	def := zod.Intersection(
		zod.Intersection(shared, zod.Object().Field("b", zod.Number())),
		zod.Object().Field("c", shared),
	)

	s, err := zodschema.Convert(def, zodschema.Options{})
	if err != nil {
		t.Fatalf("convert err: %v", err)
	}
	b, err := s.JSON()
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	doc := string(b)

	if n := len(gjson.Get(doc, "allOf").Array()); n != 3 {
		t.Fatalf("expected a flat allOf of 3, got %s", gjson.Get(doc, "allOf").Raw)
	}
	// The shared definition moved from its nested position to the spliced one;
	// the revisit must point at where it actually lives.
	if got := gjson.Get(doc, "allOf.2.properties.c.\\$ref").String(); got != "#/allOf/0" {
		t.Fatalf("revisit ref = %q, want %q", got, "#/allOf/0")
	}
	compileDocument(t, s)
}

func TestLiteral_PrimitiveValues(t *testing.T) {
	expectTree(t, zod.Literal("on"), zodschema.Options{}, `{"type": "string", "const": "on"}`)
	expectTree(t, zod.Literal(false), zodschema.Options{}, `{"type": "boolean", "const": false}`)
	expectTree(t, zod.Literal(3.5), zodschema.Options{}, `{"type": "number", "const": 3.5}`)
	expectTree(t, zod.Literal(7), zodschema.Options{}, `{"type": "number", "const": 7}`)
}

func TestLiteral_NonJSONValueFails(t *testing.T) {
	_, err := zodschema.Convert(zod.Literal(struct{}{}), zodschema.Options{})
	iss, ok := zodschema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != zodschema.CodeMalformedDefinition {
		t.Fatalf("expected one malformed_definition issue, got %#v", err)
	}
}

func TestEnum_StringValues(t *testing.T) {
	expectTree(t, zod.Enum("red", "green", "blue"), zodschema.Options{}, `{
		"type": "string",
		"enum": ["red", "green", "blue"]
	}`)
}
