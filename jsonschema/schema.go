package jsonschema

import (
	gojson "github.com/goccy/go-json"
)

// Version is the draft-07 meta-schema URI stamped on top-level documents.
const Version = "http://json-schema.org/draft-07/schema#"

// Type is the JSON Schema "type" keyword: a single name or a list of names.
// A one-element value marshals as a bare string.
type Type []string

func (t Type) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return gojson.Marshal(t[0])
	}
	return gojson.Marshal([]string(t))
}

// Is reports whether t names exactly the given single type.
func (t Type) Is(name string) bool { return len(t) == 1 && t[0] == name }

// Enum is the "enum" keyword. It marshals through an explicit top-level
// Marshal call: the compiled encoder truncates a plain []any field to its
// first element when the field sits inside a recursive struct.
type Enum []any

func (e Enum) MarshalJSON() ([]byte, error) {
	return gojson.Marshal([]any(e))
}

// Items is the "items" keyword: either one schema applied to every element or
// a positional tuple of schemas.
type Items struct {
	Schema *Schema
	Tuple  []*Schema
}

func (it *Items) MarshalJSON() ([]byte, error) {
	if it.Schema != nil {
		return gojson.Marshal(it.Schema)
	}
	return gojson.Marshal(it.Tuple)
}

// Schema is one node of a draft-07 document. Zero-valued fields are omitted,
// so the empty Schema marshals to the unconstrained "{}".
type Schema struct {
	SchemaURI string `json:"$schema,omitempty"`
	Ref       string `json:"$ref,omitempty"`

	Type    Type   `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Enum    Enum   `json:"enum,omitempty"`
	Const   any    `json:"const,omitempty"`
	Default any    `json:"default,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty"`

	// Array
	Items           *Items  `json:"items,omitempty"`
	AdditionalItems *Schema `json:"additionalItems,omitempty"`
	MinItems        *int    `json:"minItems,omitempty"`
	MaxItems        *int    `json:"maxItems,omitempty"`
	UniqueItems     bool    `json:"uniqueItems,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	// Definitions and Defs are the same section under its draft-07 name and
	// its newer alias; at most one is populated per document.
	Definitions map[string]*Schema `json:"definitions,omitempty"`
	Defs        map[string]*Schema `json:"$defs,omitempty"`

	// ErrorMessage is a non-standard sidecar consumed by validators that
	// support per-constraint messages, keyed by constraint name. It is never
	// present-but-empty.
	ErrorMessage map[string]string `json:"errorMessage,omitempty"`
}

// JSON renders the schema as compact JSON.
func (s *Schema) JSON() ([]byte, error) { return gojson.Marshal(s) }

// JSONIndent renders the schema as indented JSON.
func (s *Schema) JSONIndent() ([]byte, error) { return gojson.MarshalIndent(s, "", "  ") }
