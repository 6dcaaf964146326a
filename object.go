package zodschema

import (
	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// parseObject converts declared fields in order. Fields whose definition may
// be absent stay out of required; the unknown-keys policy maps onto
// additionalProperties, with a catchall schema taking precedence.
func parseObject(def *zod.ObjectDef, refs *Refs) (*jsonschema.Schema, error) {
	res := &jsonschema.Schema{Type: jsonschema.Type{"object"}}
	if len(def.Fields) > 0 {
		res.Properties = make(map[string]*jsonschema.Schema, len(def.Fields))
	}
	for _, f := range def.Fields {
		ps, err := parseDef(f.Schema, refs.at("properties", f.Name), false)
		if err != nil {
			return nil, err
		}
		res.Properties[f.Name] = ps
		if !isOptionalDef(f.Schema) {
			res.Required = append(res.Required, f.Name)
		}
	}
	switch {
	case def.Catchall != nil:
		ap, err := parseDef(def.Catchall, refs.at("additionalProperties"), false)
		if err != nil {
			return nil, err
		}
		res.AdditionalProperties = ap
	case def.Unknown == zod.UnknownStrict:
		res.AdditionalProperties = false
	case def.Unknown == zod.UnknownPassthrough:
		res.AdditionalProperties = true
	}
	return res, nil
}

// isOptionalDef reports whether a field definition accepts absence: optional
// and default wrappers, the unconstrained types, and those same shapes behind
// identity wrappers.
func isOptionalDef(def zod.Def) bool {
	switch d := def.(type) {
	case *zod.OptionalDef, *zod.DefaultDef, *zod.AnyDef, *zod.UnknownDef:
		return true
	case *zod.BrandedDef:
		return isOptionalDef(d.Inner)
	case *zod.ReadonlyDef:
		return isOptionalDef(d.Inner)
	}
	return false
}

// parseRecord maps the value definition onto additionalProperties. A
// constrained key definition surfaces as propertyNames; the names are always
// strings, so the redundant type tag is dropped there.
func parseRecord(def *zod.RecordDef, refs *Refs) (*jsonschema.Schema, error) {
	res := &jsonschema.Schema{Type: jsonschema.Type{"object"}}
	if constrainedItem(def.Value) {
		vs, err := parseDef(def.Value, refs.at("additionalProperties"), false)
		if err != nil {
			return nil, err
		}
		res.AdditionalProperties = vs
	} else {
		res.AdditionalProperties = true
	}
	switch k := def.Key.(type) {
	case *zod.StringDef:
		if len(k.Checks) > 0 {
			names, err := parseString(k, refs.at("propertyNames"))
			if err != nil {
				return nil, err
			}
			names.Type = nil
			res.PropertyNames = names
		}
	case *zod.EnumDef:
		res.PropertyNames = &jsonschema.Schema{Enum: stringsToAny(k.Values)}
	}
	return res, nil
}
