package zodschema

import "github.com/Janpot/zod-to-json-schema/jsonschema"

// setConstraint writes one constraint value onto s through assign and, when
// error messages are enabled and a message was supplied, records it under
// key. It never tightens values itself: callers pre-compute the narrowest
// bound before calling.
func setConstraint(s *jsonschema.Schema, refs *Refs, key, message string, assign func()) {
	assign()
	if message != "" && refs.Opts.ErrorMessages {
		putMessage(s, key, message)
	}
}

// putMessage records message under key, creating the sidecar map on first
// use.
func putMessage(s *jsonschema.Schema, key, message string) {
	if s.ErrorMessage == nil {
		s.ErrorMessage = make(map[string]string)
	}
	s.ErrorMessage[key] = message
}

// takeMessage removes and returns the message stored under key, pruning the
// sidecar when it empties so it is never present-but-empty.
func takeMessage(s *jsonschema.Schema, key string) (string, bool) {
	m, ok := s.ErrorMessage[key]
	if !ok {
		return "", false
	}
	delete(s.ErrorMessage, key)
	if len(s.ErrorMessage) == 0 {
		s.ErrorMessage = nil
	}
	return m, true
}

func intPtr(n int) *int { return &n }

func floatPtr(v float64) *float64 { return &v }
