package zodschema

import (
	"fmt"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// parseLiteral emits type plus const for primitive literal values. Values
// without a JSON form are malformed input.
func parseLiteral(def *zod.LiteralDef, refs *Refs) (*jsonschema.Schema, error) {
	t, ok := literalType(def.Value)
	if !ok {
		return nil, Issues{{
			Path:    refs.pointer(),
			Code:    CodeMalformedDefinition,
			Message: fmt.Sprintf("literal value of type %T has no JSON form", def.Value),
		}}
	}
	return &jsonschema.Schema{Type: jsonschema.Type{t}, Const: def.Value}, nil
}

// literalType maps a Go literal value to its JSON type name.
func literalType(v any) (string, bool) {
	switch v.(type) {
	case string:
		return "string", true
	case bool:
		return "boolean", true
	case int, int32, int64, float32, float64:
		return "number", true
	}
	return "", false
}

func parseEnum(def *zod.EnumDef) (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: jsonschema.Type{"string"},
		Enum: stringsToAny(def.Values),
	}, nil
}
