package zodschema

import (
	"fmt"
	"strings"

	"github.com/Janpot/zod-to-json-schema/jsonschema"
	"github.com/Janpot/zod-to-json-schema/zod"
)

// Fixed patterns for the identifier checks. Not derived from check
// parameters; the cuid2 pattern is looser than real CUID2 constraints and is
// kept as-is for output compatibility.
const (
	cuidPattern  = `^c[^\s-]{8,}$`
	cuid2Pattern = `^[a-z][a-z0-9]*$`
	ulidPattern  = `[0-9A-HJKMNP-TV-Z]{26}`
	emojiPattern = `^(\p{Extended_Pictographic}|\p{Emoji_Component})+$`
)

// parseString folds a string definition's checks, in declaration order, into
// one fragment. Length bounds tighten toward the narrowest range regardless
// of order; a second expected format demotes into anyOf (one-of semantics)
// and a second required pattern into allOf (must match every pattern).
func parseString(def *zod.StringDef, refs *Refs) (*jsonschema.Schema, error) {
	res := &jsonschema.Schema{Type: jsonschema.Type{"string"}}
	for _, ch := range def.Checks {
		switch ch.Kind {
		case zod.StringMin:
			v := ch.Value
			if res.MinLength != nil && *res.MinLength > v {
				v = *res.MinLength
			}
			setConstraint(res, refs, "minLength", ch.Message, func() { res.MinLength = intPtr(v) })
		case zod.StringMax:
			v := ch.Value
			if res.MaxLength != nil && *res.MaxLength < v {
				v = *res.MaxLength
			}
			setConstraint(res, refs, "maxLength", ch.Message, func() { res.MaxLength = intPtr(v) })
		case zod.StringLength:
			// Exact length composes as min+max of the same value so a later,
			// different length still narrows instead of overwriting.
			minV, maxV := ch.Value, ch.Value
			if res.MinLength != nil && *res.MinLength > minV {
				minV = *res.MinLength
			}
			if res.MaxLength != nil && *res.MaxLength < maxV {
				maxV = *res.MaxLength
			}
			setConstraint(res, refs, "minLength", ch.Message, func() { res.MinLength = intPtr(minV) })
			setConstraint(res, refs, "maxLength", ch.Message, func() { res.MaxLength = intPtr(maxV) })
		case zod.StringEmail:
			addFormat(res, refs, "email", ch.Message)
		case zod.StringURL:
			addFormat(res, refs, "uri", ch.Message)
		case zod.StringUUID:
			addFormat(res, refs, "uuid", ch.Message)
		case zod.StringDatetime:
			addFormat(res, refs, "date-time", ch.Message)
		case zod.StringIP:
			// Unrestricted ip wants either family, so both formats go in.
			if ch.Version != zod.IPv6 {
				addFormat(res, refs, "ipv4", ch.Message)
			}
			if ch.Version != zod.IPv4 {
				addFormat(res, refs, "ipv6", ch.Message)
			}
		case zod.StringRegex:
			addPattern(res, refs, ch.Pattern, ch.Message)
		case zod.StringCUID:
			addPattern(res, refs, cuidPattern, ch.Message)
		case zod.StringCUID2:
			addPattern(res, refs, cuid2Pattern, ch.Message)
		case zod.StringULID:
			addPattern(res, refs, ulidPattern, ch.Message)
		case zod.StringEmoji:
			addPattern(res, refs, emojiPattern, ch.Message)
		case zod.StringStartsWith:
			addPattern(res, refs, "^"+escapeLiteral(ch.Literal), ch.Message)
		case zod.StringEndsWith:
			addPattern(res, refs, escapeLiteral(ch.Literal)+"$", ch.Message)
		case zod.StringIncludes:
			addPattern(res, refs, escapeLiteral(ch.Literal), ch.Message)
		case zod.StringTrim, zod.StringToLowerCase, zod.StringToUpperCase:
			// Normalization has no schema vocabulary; intentionally dropped.
		default:
			return nil, Issues{{
				Path:    refs.pointer(),
				Code:    CodeUnsupportedCheck,
				Message: fmt.Sprintf("no translation for string check kind %d", ch.Kind),
			}}
		}
	}
	return res, nil
}

// addFormat merges one more expected format. The format slot holds a single
// value, so arrival of a second one demotes both into anyOf entries, each
// carrying its own migrated message.
func addFormat(res *jsonschema.Schema, refs *Refs, format, message string) {
	if res.Format != "" || anyOfHasFormat(res) {
		if res.Format != "" {
			prev := &jsonschema.Schema{Format: res.Format}
			if m, ok := takeMessage(res, "format"); ok {
				putMessage(prev, "format", m)
			}
			res.Format = ""
			res.AnyOf = append(res.AnyOf, prev)
		}
		next := &jsonschema.Schema{Format: format}
		if message != "" && refs.Opts.ErrorMessages {
			putMessage(next, "format", message)
		}
		res.AnyOf = append(res.AnyOf, next)
		return
	}
	setConstraint(res, refs, "format", message, func() { res.Format = format })
}

func anyOfHasFormat(res *jsonschema.Schema) bool {
	for _, s := range res.AnyOf {
		if s.Format != "" {
			return true
		}
	}
	return false
}

// addPattern mirrors addFormat for the pattern slot, with allOf composition:
// every accumulated pattern must match.
func addPattern(res *jsonschema.Schema, refs *Refs, pattern, message string) {
	if res.Pattern != "" || allOfHasPattern(res) {
		if res.Pattern != "" {
			prev := &jsonschema.Schema{Pattern: res.Pattern}
			if m, ok := takeMessage(res, "pattern"); ok {
				putMessage(prev, "pattern", m)
			}
			res.Pattern = ""
			res.AllOf = append(res.AllOf, prev)
		}
		next := &jsonschema.Schema{Pattern: pattern}
		if message != "" && refs.Opts.ErrorMessages {
			putMessage(next, "pattern", message)
		}
		res.AllOf = append(res.AllOf, next)
		return
	}
	setConstraint(res, refs, "pattern", message, func() { res.Pattern = pattern })
}

func allOfHasPattern(res *jsonschema.Schema) bool {
	for _, s := range res.AllOf {
		if s.Pattern != "" {
			return true
		}
	}
	return false
}

// escapeLiteral escapes every character that is not an ASCII alphanumeric,
// one backslash per character. Conservative on purpose: no character-class
// grouping, so the result is safe in any regex position.
func escapeLiteral(lit string) string {
	var b strings.Builder
	b.Grow(len(lit))
	for _, r := range lit {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
