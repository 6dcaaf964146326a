package zodschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnsupportedType marks a definition kind no converter handles.
	CodeUnsupportedType = "unsupported_type"
	// CodeUnsupportedCheck marks a check kind with no schema translation.
	// Unknown checks fail loudly: dropping one silently would emit an
	// under-constrained schema.
	CodeUnsupportedCheck = "unsupported_check"
	// CodeMalformedDefinition marks a definition missing required parts for
	// its kind (nil node, non-JSON literal value, ...).
	CodeMalformedDefinition = "malformed_definition"
)

// Issue represents a single conversion failure.
type Issue struct {
	Path    string // JSON Pointer into the output document under construction.
	Code    string // One of the codes listed above.
	Message string
}

// Issues is a collection of conversion errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unsupported_type at /properties/meta
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
