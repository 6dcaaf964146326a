package zodschema

import (
	"fmt"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// parseNumber folds numeric checks into one fragment. Bounds tighten
// narrowest-wins per keyword; inclusive and exclusive bounds occupy the
// distinct draft-07 keywords minimum/maximum and exclusiveMinimum/
// exclusiveMaximum.
func parseNumber(def *zod.NumberDef, refs *Refs) (*jsonschema.Schema, error) {
	res := &jsonschema.Schema{Type: jsonschema.Type{"number"}}
	for _, ch := range def.Checks {
		switch ch.Kind {
		case zod.NumberInt:
			setConstraint(res, refs, "type", ch.Message, func() { res.Type = jsonschema.Type{"integer"} })
		case zod.NumberMin:
			v := ch.Value
			if ch.Inclusive {
				if res.Minimum != nil && *res.Minimum > v {
					v = *res.Minimum
				}
				setConstraint(res, refs, "minimum", ch.Message, func() { res.Minimum = floatPtr(v) })
			} else {
				if res.ExclusiveMinimum != nil && *res.ExclusiveMinimum > v {
					v = *res.ExclusiveMinimum
				}
				setConstraint(res, refs, "exclusiveMinimum", ch.Message, func() { res.ExclusiveMinimum = floatPtr(v) })
			}
		case zod.NumberMax:
			v := ch.Value
			if ch.Inclusive {
				if res.Maximum != nil && *res.Maximum < v {
					v = *res.Maximum
				}
				setConstraint(res, refs, "maximum", ch.Message, func() { res.Maximum = floatPtr(v) })
			} else {
				if res.ExclusiveMaximum != nil && *res.ExclusiveMaximum < v {
					v = *res.ExclusiveMaximum
				}
				setConstraint(res, refs, "exclusiveMaximum", ch.Message, func() { res.ExclusiveMaximum = floatPtr(v) })
			}
		case zod.NumberMultipleOf:
			v := ch.Value
			setConstraint(res, refs, "multipleOf", ch.Message, func() { res.MultipleOf = floatPtr(v) })
		case zod.NumberFinite:
			// Draft-07 numbers cannot encode NaN or infinities; nothing to add.
		default:
			return nil, Issues{{
				Path:    refs.pointer(),
				Code:    CodeUnsupportedCheck,
				Message: fmt.Sprintf("no translation for number check kind %d", ch.Kind),
			}}
		}
	}
	return res, nil
}
