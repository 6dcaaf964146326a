package zod

// NumberCheckKind identifies one numeric constraint.
type NumberCheckKind int

const (
	NumberMin NumberCheckKind = iota
	NumberMax
	NumberInt
	NumberMultipleOf
	NumberFinite
)

// NumberCheck is one constraint attached to a number definition. Inclusive
// distinguishes >=/<= bounds from >/< bounds.
type NumberCheck struct {
	Kind      NumberCheckKind
	Value     float64
	Inclusive bool
	Message   string
}

// NumberDef is a number definition with an ordered check sequence.
type NumberDef struct {
	Checks []NumberCheck
}

func (*NumberDef) TypeName() TypeName { return TypeNumber }

// Number returns a number definition.
func Number() *NumberDef { return &NumberDef{} }

func (d *NumberDef) check(c NumberCheck, message []string) *NumberDef {
	if len(message) > 0 {
		c.Message = message[0]
	}
	d.Checks = append(d.Checks, c)
	return d
}

// Min requires the value to be >= v.
func (d *NumberDef) Min(v float64, message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberMin, Value: v, Inclusive: true}, message)
}

// Gt requires the value to be > v.
func (d *NumberDef) Gt(v float64, message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberMin, Value: v}, message)
}

// Max requires the value to be <= v.
func (d *NumberDef) Max(v float64, message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberMax, Value: v, Inclusive: true}, message)
}

// Lt requires the value to be < v.
func (d *NumberDef) Lt(v float64, message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberMax, Value: v}, message)
}

// Int requires an integer value.
func (d *NumberDef) Int(message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberInt}, message)
}

// MultipleOf requires the value to be a multiple of v.
func (d *NumberDef) MultipleOf(v float64, message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberMultipleOf, Value: v}, message)
}

// Finite rejects NaN and infinities.
func (d *NumberDef) Finite(message ...string) *NumberDef {
	return d.check(NumberCheck{Kind: NumberFinite}, message)
}
