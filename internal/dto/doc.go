// Package dto is the schema-driven conversion layer between typed domain
// models and wire payloads.
//
// Each model type declares a *Schema once, at package initialisation: an
// ordered list of fields, each binding a field name to a wire key, a Codec
// and an accessor into the model. Two generic operations consult the schema:
//
//	payload, err := schema.ToWire(model)
//	model, err := schema.FromWire(payload)
//
// ToWire walks the fields in declaration order, recursing into nested
// schemas and lists, encoding uint64 values as [low32, high32] pairs and
// omitting optional fields that are absent. FromWire first checks the
// payload's structure (required keys present, no undeclared keys for closed
// schemas) and only then decodes; it never returns a partially built model.
//
// Schemas are read-only after construction and safe for concurrent use.
//
// # Field presence
//
//   - Required: the key must be present; FromWire fails with MissingField.
//   - Optional: the model holds a pointer; nil is omitted on the wire.
//   - Default: the key may be absent; FromWire substitutes the default.
//
// JSON null is treated as an absent key.
package dto
