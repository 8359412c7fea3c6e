// Package errors defines the error taxonomy shared by the toolkit.
//
// Every failure raised by the codec, the schema engine, the identifier
// deriver or the cosignature workflow is an *Error carrying a Kind. Kinds
// implement error themselves, so callers match on them directly:
//
//	if errors.Is(err, errors.MissingField) { ... }
//
// All kinds describe local, non-retryable conditions. Transport failures are
// reported by the transport package and are not part of this taxonomy.
package errors
