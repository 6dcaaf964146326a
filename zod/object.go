package zod

// UnknownKeys controls how an object treats keys outside its declared fields.
type UnknownKeys int

const (
	UnknownStrip UnknownKeys = iota // Drop unknown keys (default).
	UnknownStrict
	UnknownPassthrough
)

// Field maps one property name to its definition. Declaration order is
// preserved.
type Field struct {
	Name   string
	Schema Def
}

// ObjectDef is an object with ordered fields, an unknown-keys policy and an
// optional catchall definition for undeclared keys.
type ObjectDef struct {
	Fields   []Field
	Unknown  UnknownKeys
	Catchall Def
}

func (*ObjectDef) TypeName() TypeName { return TypeObject }

// Object returns an empty object definition.
func Object() *ObjectDef { return &ObjectDef{} }

// Field appends a property. A field is required unless its definition is
// wrapped in Optional or Default.
func (d *ObjectDef) Field(name string, schema Def) *ObjectDef {
	d.Fields = append(d.Fields, Field{Name: name, Schema: schema})
	return d
}

// Strict rejects unknown keys.
func (d *ObjectDef) Strict() *ObjectDef {
	d.Unknown = UnknownStrict
	return d
}

// Passthrough preserves unknown keys.
func (d *ObjectDef) Passthrough() *ObjectDef {
	d.Unknown = UnknownPassthrough
	return d
}

// CatchallDef validates unknown keys against the given definition.
func (d *ObjectDef) CatchallDef(schema Def) *ObjectDef {
	d.Catchall = schema
	return d
}

// RecordDef is an object with homogeneous values and an optional key
// definition constraining property names.
type RecordDef struct {
	Key   Def
	Value Def
}

func (*RecordDef) TypeName() TypeName { return TypeRecord }

// Record returns a record definition over the given value definition.
func Record(value Def) *RecordDef { return &RecordDef{Value: value} }

// Keys constrains the record's property names.
func (d *RecordDef) Keys(key Def) *RecordDef {
	d.Key = key
	return d
}

// UnionDef accepts a value matching any of its options.
type UnionDef struct {
	Options []Def
}

func (*UnionDef) TypeName() TypeName { return TypeUnion }

// Union returns a union over the given options.
func Union(options ...Def) *UnionDef { return &UnionDef{Options: options} }

// IntersectionDef accepts a value matching both sides.
type IntersectionDef struct {
	Left  Def
	Right Def
}

func (*IntersectionDef) TypeName() TypeName { return TypeIntersection }

// Intersection returns an intersection of two definitions.
func Intersection(left, right Def) *IntersectionDef {
	return &IntersectionDef{Left: left, Right: right}
}
