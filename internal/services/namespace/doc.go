// Package namespace resolves namespace names to ids and back.
//
// Names are hashed locally; only the reverse lookup of a full name asks the
// node, walking parent ids up to the namespace depth limit.
package namespace
