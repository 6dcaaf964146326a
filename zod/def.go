package zod

// Package zod models the source validation library's schema graph: a closed
// set of definition kinds, each carrying either an ordered check sequence or
// nested child definitions. Definitions are built once and only read by the
// converter.

import "strconv"

// TypeName identifies a definition kind.
type TypeName int

const (
	TypeString TypeName = iota
	TypeNumber
	TypeBigInt
	TypeBoolean
	TypeDate
	TypeNull
	TypeAny
	TypeUnknown
	TypeNever
	TypeLiteral
	TypeEnum
	TypeArray
	TypeTuple
	TypeSet
	TypeObject
	TypeRecord
	TypeUnion
	TypeIntersection
	TypeOptional
	TypeNullable
	TypeDefault
	TypeCatch
	TypeBranded
	TypeReadonly
	TypeLazy
	TypePipeline
	TypeEffects
)

var typeNames = [...]string{
	"string", "number", "bigint", "boolean", "date", "null", "any", "unknown",
	"never", "literal", "enum", "array", "tuple", "set", "object", "record",
	"union", "intersection", "optional", "nullable", "default", "catch",
	"branded", "readonly", "lazy", "pipeline", "effects",
}

func (t TypeName) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "typename(" + strconv.Itoa(int(t)) + ")"
}

// Def is the root definition node interface.
type Def interface {
	TypeName() TypeName
}

// ---- primitives ----

type BooleanDef struct{}

func (*BooleanDef) TypeName() TypeName { return TypeBoolean }

// Boolean returns a boolean definition.
func Boolean() *BooleanDef { return &BooleanDef{} }

type BigIntDef struct{}

func (*BigIntDef) TypeName() TypeName { return TypeBigInt }

// BigInt returns an arbitrary-precision integer definition.
func BigInt() *BigIntDef { return &BigIntDef{} }

type DateDef struct{}

func (*DateDef) TypeName() TypeName { return TypeDate }

// Date returns a date definition.
func Date() *DateDef { return &DateDef{} }

type NullDef struct{}

func (*NullDef) TypeName() TypeName { return TypeNull }

// Null returns a null definition.
func Null() *NullDef { return &NullDef{} }

type AnyDef struct{}

func (*AnyDef) TypeName() TypeName { return TypeAny }

// Any returns the unconstrained definition.
func Any() *AnyDef { return &AnyDef{} }

type UnknownDef struct{}

func (*UnknownDef) TypeName() TypeName { return TypeUnknown }

// Unknown returns the unconstrained definition with unknown semantics.
func Unknown() *UnknownDef { return &UnknownDef{} }

type NeverDef struct{}

func (*NeverDef) TypeName() TypeName { return TypeNever }

// Never returns a definition no value satisfies.
func Never() *NeverDef { return &NeverDef{} }

// ---- literal / enum ----

// LiteralDef accepts exactly one primitive value.
type LiteralDef struct {
	Value any
}

func (*LiteralDef) TypeName() TypeName { return TypeLiteral }

// Literal returns a definition matching exactly the given value.
func Literal(value any) *LiteralDef { return &LiteralDef{Value: value} }

// EnumDef accepts one of a fixed set of string values.
type EnumDef struct {
	Values []string
}

func (*EnumDef) TypeName() TypeName { return TypeEnum }

// Enum returns a definition matching one of the given string values.
func Enum(values ...string) *EnumDef { return &EnumDef{Values: values} }

// ---- wrappers ----

// OptionalDef marks its inner definition as allowed to be absent.
type OptionalDef struct {
	Inner Def
}

func (*OptionalDef) TypeName() TypeName { return TypeOptional }

// Optional wraps a definition so it may be absent in property position.
func Optional(inner Def) *OptionalDef { return &OptionalDef{Inner: inner} }

// NullableDef widens its inner definition to also accept null.
type NullableDef struct {
	Inner Def
}

func (*NullableDef) TypeName() TypeName { return TypeNullable }

// Nullable wraps a definition so it also accepts null.
func Nullable(inner Def) *NullableDef { return &NullableDef{Inner: inner} }

// DefaultDef supplies a materialized default for an absent value.
type DefaultDef struct {
	Inner Def
	Value any
}

func (*DefaultDef) TypeName() TypeName { return TypeDefault }

// Default wraps a definition with a default value applied when absent.
func Default(inner Def, value any) *DefaultDef { return &DefaultDef{Inner: inner, Value: value} }

// CatchDef substitutes a fallback value when the inner definition rejects.
type CatchDef struct {
	Inner Def
	Value any
}

func (*CatchDef) TypeName() TypeName { return TypeCatch }

// Catch wraps a definition with a fallback value on rejection.
func Catch(inner Def, value any) *CatchDef { return &CatchDef{Inner: inner, Value: value} }

// BrandedDef tags its inner definition with a nominal brand; the accepted
// wire shape is unchanged.
type BrandedDef struct {
	Inner Def
}

func (*BrandedDef) TypeName() TypeName { return TypeBranded }

// Branded wraps a definition with a nominal brand.
func Branded(inner Def) *BrandedDef { return &BrandedDef{Inner: inner} }

// ReadonlyDef freezes the parsed value; the accepted wire shape is unchanged.
type ReadonlyDef struct {
	Inner Def
}

func (*ReadonlyDef) TypeName() TypeName { return TypeReadonly }

// Readonly wraps a definition as read-only.
func Readonly(inner Def) *ReadonlyDef { return &ReadonlyDef{Inner: inner} }

// LazyDef defers resolution so schema graphs can reference themselves.
type LazyDef struct {
	Getter func() Def

	inner Def
}

func (*LazyDef) TypeName() TypeName { return TypeLazy }

// Lazy returns a definition resolved on first use via getter.
func Lazy(getter func() Def) *LazyDef { return &LazyDef{Getter: getter} }

// Resolve materializes the inner definition. The result is memoized: cycle
// tracking relies on a stable inner identity across visits.
func (d *LazyDef) Resolve() Def {
	if d.inner == nil {
		d.inner = d.Getter()
	}
	return d.inner
}

// PipelineDef feeds the output of In into Out.
type PipelineDef struct {
	In  Def
	Out Def
}

func (*PipelineDef) TypeName() TypeName { return TypePipeline }

// Pipeline chains two definitions, validating through In then Out.
func Pipeline(in, out Def) *PipelineDef { return &PipelineDef{In: in, Out: out} }

// EffectsMode distinguishes predicate-only refinements from value-changing
// transforms.
type EffectsMode int

const (
	EffectsRefine EffectsMode = iota
	EffectsTransform
	EffectsPreprocess
)

// EffectsDef layers a refinement or transform over a base definition.
type EffectsDef struct {
	Inner Def
	Mode  EffectsMode
}

func (*EffectsDef) TypeName() TypeName { return TypeEffects }

// Refine layers a predicate-only validation over inner. The accepted input
// shape is exactly inner's.
func Refine(inner Def) *EffectsDef { return &EffectsDef{Inner: inner, Mode: EffectsRefine} }

// Transform layers a value-changing transformation over inner.
func Transform(inner Def) *EffectsDef { return &EffectsDef{Inner: inner, Mode: EffectsTransform} }

// Preprocess layers a pre-parse transformation over inner.
func Preprocess(inner Def) *EffectsDef { return &EffectsDef{Inner: inner, Mode: EffectsPreprocess} }
