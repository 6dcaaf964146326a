package zod

// ArrayCheckKind identifies one array size constraint.
type ArrayCheckKind int

const (
	ArrayMin ArrayCheckKind = iota
	ArrayMax
	ArrayLength
	ArrayNonEmpty
)

// ArrayCheck is one size constraint attached to an array definition.
type ArrayCheck struct {
	Kind    ArrayCheckKind
	Value   int
	Message string
}

// ArrayDef is an array of Item with an ordered check sequence.
type ArrayDef struct {
	Item   Def
	Checks []ArrayCheck
}

func (*ArrayDef) TypeName() TypeName { return TypeArray }

// Array returns an array definition over the given item definition.
func Array(item Def) *ArrayDef { return &ArrayDef{Item: item} }

func (d *ArrayDef) check(c ArrayCheck, message []string) *ArrayDef {
	if len(message) > 0 {
		c.Message = message[0]
	}
	d.Checks = append(d.Checks, c)
	return d
}

// Min requires at least n elements.
func (d *ArrayDef) Min(n int, message ...string) *ArrayDef {
	return d.check(ArrayCheck{Kind: ArrayMin, Value: n}, message)
}

// Max requires at most n elements.
func (d *ArrayDef) Max(n int, message ...string) *ArrayDef {
	return d.check(ArrayCheck{Kind: ArrayMax, Value: n}, message)
}

// Length requires exactly n elements.
func (d *ArrayDef) Length(n int, message ...string) *ArrayDef {
	return d.check(ArrayCheck{Kind: ArrayLength, Value: n}, message)
}

// NonEmpty requires at least one element.
func (d *ArrayDef) NonEmpty(message ...string) *ArrayDef {
	return d.check(ArrayCheck{Kind: ArrayNonEmpty}, message)
}

// TupleDef is a fixed positional array, optionally with a rest element.
type TupleDef struct {
	Items    []Def
	RestItem Def
}

func (*TupleDef) TypeName() TypeName { return TypeTuple }

// Tuple returns a fixed positional array definition.
func Tuple(items ...Def) *TupleDef { return &TupleDef{Items: items} }

// Rest allows additional trailing elements of the given definition.
func (d *TupleDef) Rest(rest Def) *TupleDef {
	d.RestItem = rest
	return d
}

// SetCheckKind identifies one set size constraint.
type SetCheckKind int

const (
	SetMin SetCheckKind = iota
	SetMax
)

// SetCheck is one size constraint attached to a set definition.
type SetCheck struct {
	Kind    SetCheckKind
	Value   int
	Message string
}

// SetDef is a collection of unique Item values.
type SetDef struct {
	Item   Def
	Checks []SetCheck
}

func (*SetDef) TypeName() TypeName { return TypeSet }

// Set returns a set definition over the given item definition.
func Set(item Def) *SetDef { return &SetDef{Item: item} }

func (d *SetDef) check(c SetCheck, message []string) *SetDef {
	if len(message) > 0 {
		c.Message = message[0]
	}
	d.Checks = append(d.Checks, c)
	return d
}

// Min requires at least n elements.
func (d *SetDef) Min(n int, message ...string) *SetDef {
	return d.check(SetCheck{Kind: SetMin, Value: n}, message)
}

// Max requires at most n elements.
func (d *SetDef) Max(n int, message ...string) *SetDef {
	return d.check(SetCheck{Kind: SetMax, Value: n}, message)
}
