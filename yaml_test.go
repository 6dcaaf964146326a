package zodschema_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	zodschema "github.com/Janpot/zod-to-json-schema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

func TestEmitYAML_RoundTripsTheDocument(t *testing.T) {
	def := zod.Object().
		Field("name", zod.String().Min(1)).
		Field("port", zod.Number().Int().Min(1).Max(65535))

	s, err := zodschema.Convert(def, zodschema.Options{})
	require.NoError(t, err)

	out, err := zodschema.EmitYAML(s)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal(out, &tree))

	require.Equal(t, "object", tree["type"])
	props, ok := tree["properties"].(map[string]any)
	require.True(t, ok, "properties should be a mapping, got %T", tree["properties"])
	port, ok := props["port"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "integer", port["type"])
	require.EqualValues(t, 65535, port["maximum"])
}

func TestEmitYAML_KeepsCustomKeywordEncodings(t *testing.T) {
	s, err := zodschema.Convert(zod.Union(zod.String(), zod.Null()), zodschema.Options{})
	require.NoError(t, err)

	out, err := zodschema.EmitYAML(s)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal(out, &tree))

	// The multi-valued type keyword must survive as a list, not a string.
	require.Equal(t, []any{"string", "null"}, tree["type"])
}
