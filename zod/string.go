package zod

// StringCheckKind identifies one string constraint.
type StringCheckKind int

const (
	StringMin StringCheckKind = iota
	StringMax
	StringLength
	StringEmail
	StringURL
	StringUUID
	StringCUID
	StringCUID2
	StringULID
	StringEmoji
	StringRegex
	StringStartsWith
	StringEndsWith
	StringIncludes
	StringDatetime
	StringIP
	StringTrim
	StringToLowerCase
	StringToUpperCase
)

// IPVersion restricts an ip check to one address family. IPAny accepts both.
type IPVersion int

const (
	IPAny IPVersion = iota
	IPv4
	IPv6
)

// StringCheck is one constraint attached to a string definition. Value,
// Literal, Pattern and Version are populated per kind; Message is an optional
// human-readable error message.
type StringCheck struct {
	Kind    StringCheckKind
	Value   int
	Literal string
	Pattern string
	Version IPVersion
	Message string
}

// StringDef is a string definition with an ordered check sequence.
type StringDef struct {
	Checks []StringCheck
}

func (*StringDef) TypeName() TypeName { return TypeString }

// String returns a string definition.
func String() *StringDef { return &StringDef{} }

func (d *StringDef) check(c StringCheck, message []string) *StringDef {
	if len(message) > 0 {
		c.Message = message[0]
	}
	d.Checks = append(d.Checks, c)
	return d
}

// Min requires at least n characters.
func (d *StringDef) Min(n int, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringMin, Value: n}, message)
}

// Max requires at most n characters.
func (d *StringDef) Max(n int, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringMax, Value: n}, message)
}

// Length requires exactly n characters.
func (d *StringDef) Length(n int, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringLength, Value: n}, message)
}

// Email requires an email address.
func (d *StringDef) Email(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringEmail}, message)
}

// URL requires a URL.
func (d *StringDef) URL(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringURL}, message)
}

// UUID requires a UUID.
func (d *StringDef) UUID(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringUUID}, message)
}

// CUID requires a CUID.
func (d *StringDef) CUID(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringCUID}, message)
}

// CUID2 requires a CUID2.
func (d *StringDef) CUID2(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringCUID2}, message)
}

// ULID requires a ULID.
func (d *StringDef) ULID(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringULID}, message)
}

// Emoji requires emoji content only.
func (d *StringDef) Emoji(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringEmoji}, message)
}

// Regex requires the value to match pattern.
func (d *StringDef) Regex(pattern string, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringRegex, Pattern: pattern}, message)
}

// StartsWith requires the given literal prefix.
func (d *StringDef) StartsWith(prefix string, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringStartsWith, Literal: prefix}, message)
}

// EndsWith requires the given literal suffix.
func (d *StringDef) EndsWith(suffix string, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringEndsWith, Literal: suffix}, message)
}

// Includes requires the given literal substring.
func (d *StringDef) Includes(substring string, message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringIncludes, Literal: substring}, message)
}

// Datetime requires an ISO 8601 date-time.
func (d *StringDef) Datetime(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringDatetime}, message)
}

// IP requires an IPv4 or IPv6 address.
func (d *StringDef) IP(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringIP, Version: IPAny}, message)
}

// IPvFour requires an IPv4 address.
func (d *StringDef) IPvFour(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringIP, Version: IPv4}, message)
}

// IPvSix requires an IPv6 address.
func (d *StringDef) IPvSix(message ...string) *StringDef {
	return d.check(StringCheck{Kind: StringIP, Version: IPv6}, message)
}

// Trim normalizes surrounding whitespace away before validation.
func (d *StringDef) Trim() *StringDef {
	return d.check(StringCheck{Kind: StringTrim}, nil)
}

// ToLowerCase normalizes the value to lower case before validation.
func (d *StringDef) ToLowerCase() *StringDef {
	return d.check(StringCheck{Kind: StringToLowerCase}, nil)
}

// ToUpperCase normalizes the value to upper case before validation.
func (d *StringDef) ToUpperCase() *StringDef {
	return d.check(StringCheck{Kind: StringToUpperCase}, nil)
}
