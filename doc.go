// Package zodschema converts zod-style validation definitions into JSON
// Schema draft-07 documents.
//
// - Per-type converters translate every check into draft-07 vocabulary.
// - Same-kind constraints compose instead of overwriting: length and numeric
//   bounds tighten toward the narrowest range, a second expected format
//   demotes into anyOf, a second required pattern into allOf.
// - Shared and self-referential definitions resolve to $ref pointers through
//   a per-run reference tracker.
// - Optional per-check error messages surface in an errorMessage sidecar,
//   only when enabled and only where a message was supplied.
//
// Design policy:
// - Keep the conversion surface in the root package; the source model lives
//   under zod/ and the output model under jsonschema/.
// - Conversion is pure and synchronous; all failures surface as Issues.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := zod.Object().
//		Field("id", zod.String().UUID()).
//		Field("tags", zod.Array(zod.String()).Min(1))
//	doc, err := zodschema.Convert(user, zodschema.Options{})
//	data, err := doc.JSON()
package zodschema
