package zodschema

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
)

// EmitYAML renders a converted document as YAML. The schema is normalized
// through its JSON form first so custom keyword encodings (single-or-list
// "type", tuple "items") survive unchanged.
func EmitYAML(s *jsonschema.Schema) ([]byte, error) {
	b, err := s.JSON()
	if err != nil {
		return nil, err
	}
	var tree any
	if err := gojson.Unmarshal(b, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
