package zodschema

import (
	"fmt"
	"strconv"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// parseArray converts an array definition. An any/unknown item type leaves
// items unconstrained; size checks tighten narrowest-wins like string length
// bounds.
func parseArray(def *zod.ArrayDef, refs *Refs) (*jsonschema.Schema, error) {
	res := &jsonschema.Schema{Type: jsonschema.Type{"array"}}
	if constrainedItem(def.Item) {
		item, err := parseDef(def.Item, refs.at("items"), false)
		if err != nil {
			return nil, err
		}
		res.Items = &jsonschema.Items{Schema: item}
	}
	for _, ch := range def.Checks {
		switch ch.Kind {
		case zod.ArrayMin:
			tightenMinItems(res, refs, ch.Value, ch.Message)
		case zod.ArrayNonEmpty:
			tightenMinItems(res, refs, 1, ch.Message)
		case zod.ArrayMax:
			tightenMaxItems(res, refs, ch.Value, ch.Message)
		case zod.ArrayLength:
			tightenMinItems(res, refs, ch.Value, ch.Message)
			tightenMaxItems(res, refs, ch.Value, ch.Message)
		default:
			return nil, Issues{{
				Path:    refs.pointer(),
				Code:    CodeUnsupportedCheck,
				Message: fmt.Sprintf("no translation for array check kind %d", ch.Kind),
			}}
		}
	}
	return res, nil
}

// parseTuple emits positional item fragments with exact length bounds; a
// rest element relaxes maxItems and lands in additionalItems.
func parseTuple(def *zod.TupleDef, refs *Refs) (*jsonschema.Schema, error) {
	items := make([]*jsonschema.Schema, len(def.Items))
	for i, it := range def.Items {
		s, err := parseDef(it, refs.at("items", strconv.Itoa(i)), false)
		if err != nil {
			return nil, err
		}
		items[i] = s
	}
	res := &jsonschema.Schema{
		Type:     jsonschema.Type{"array"},
		Items:    &jsonschema.Items{Tuple: items},
		MinItems: intPtr(len(items)),
	}
	if def.RestItem != nil {
		rest, err := parseDef(def.RestItem, refs.at("additionalItems"), false)
		if err != nil {
			return nil, err
		}
		res.AdditionalItems = rest
	} else {
		res.MaxItems = intPtr(len(items))
	}
	return res, nil
}

// parseSet converts a set to a unique-items array.
func parseSet(def *zod.SetDef, refs *Refs) (*jsonschema.Schema, error) {
	res := &jsonschema.Schema{Type: jsonschema.Type{"array"}, UniqueItems: true}
	if constrainedItem(def.Item) {
		item, err := parseDef(def.Item, refs.at("items"), false)
		if err != nil {
			return nil, err
		}
		res.Items = &jsonschema.Items{Schema: item}
	}
	for _, ch := range def.Checks {
		switch ch.Kind {
		case zod.SetMin:
			tightenMinItems(res, refs, ch.Value, ch.Message)
		case zod.SetMax:
			tightenMaxItems(res, refs, ch.Value, ch.Message)
		default:
			return nil, Issues{{
				Path:    refs.pointer(),
				Code:    CodeUnsupportedCheck,
				Message: fmt.Sprintf("no translation for set check kind %d", ch.Kind),
			}}
		}
	}
	return res, nil
}

// constrainedItem reports whether an item definition constrains elements at
// all; any/unknown items leave the items keyword out entirely.
func constrainedItem(item zod.Def) bool {
	if item == nil {
		return false
	}
	switch item.TypeName() {
	case zod.TypeAny, zod.TypeUnknown:
		return false
	}
	return true
}

func tightenMinItems(res *jsonschema.Schema, refs *Refs, v int, message string) {
	if res.MinItems != nil && *res.MinItems > v {
		v = *res.MinItems
	}
	setConstraint(res, refs, "minItems", message, func() { res.MinItems = intPtr(v) })
}

func tightenMaxItems(res *jsonschema.Schema, refs *Refs, v int, message string) {
	if res.MaxItems != nil && *res.MaxItems < v {
		v = *res.MaxItems
	}
	setConstraint(res, refs, "maxItems", message, func() { res.MaxItems = intPtr(v) })
}
