package dto

import (
	"fmt"
	"maps"
	"slices"

	"nem2/internal/errors"
	"nem2/internal/wire"
)

// Schema is the compile-time description of a model type T.
type Schema[T any] struct {
	name   string
	fields []Field[T]
	byKey  map[string]int
	closed bool
}

// NewSchema builds the schema of T. It panics when two fields share a name
// or a wire key, since either would break the name/key table bijection.
func NewSchema[T any](name string, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		name:   name,
		fields: fields,
		byKey:  make(map[string]int, len(fields)),
	}
	names := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.name == "" || f.key == "" {
			panic(fmt.Sprintf("dto: schema %s: field %d has an empty name or key", name, i))
		}
		if names[f.name] {
			panic(fmt.Sprintf("dto: schema %s: duplicate field name %q", name, f.name))
		}
		if _, dup := s.byKey[f.key]; dup {
			panic(fmt.Sprintf("dto: schema %s: duplicate wire key %q", name, f.key))
		}
		names[f.name] = true
		s.byKey[f.key] = i
	}
	return s
}

// Closed returns a copy of s whose FromWire rejects undeclared keys.
func (s *Schema[T]) Closed() *Schema[T] {
	c := *s
	c.closed = true
	return &c
}

// IsClosed reports whether undeclared keys are rejected.
func (s *Schema[T]) IsClosed() bool { return s.closed }

// Name returns the model name.
func (s *Schema[T]) Name() string { return s.name }

// Type implements Codec so schemas nest.
func (s *Schema[T]) Type() string { return s.name }

// Describe returns the field-type and field-key tables in declaration order.
func (s *Schema[T]) Describe() []FieldInfo {
	out := make([]FieldInfo, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.info()
	}
	return out
}

// Encode implements Codec.
func (s *Schema[T]) Encode(v T) (wire.Value, error) { return s.ToWire(v) }

// Decode implements Codec.
func (s *Schema[T]) Decode(v wire.Value) (T, error) { return s.FromWire(v) }

// ToWire renders v as a payload holding exactly the keys of its present
// fields.
func (s *Schema[T]) ToWire(v T) (wire.Map, error) {
	out := make(wire.Map, len(s.fields))
	for _, f := range s.fields {
		e, present, err := f.encode(&v)
		if err != nil {
			return nil, errors.AtField(err, f.key)
		}
		if present {
			out[f.key] = e
		}
	}
	return out, nil
}

// FromWire validates payload against the schema and builds a T from it.
// List fields normalise emptiness: a present empty list decodes to a nil
// slice, so a T holding an empty non-nil slice comes back with nil there.
// Both forms encode to the same empty wire list.
func (s *Schema[T]) FromWire(payload wire.Value) (T, error) {
	var zero T

	m, err := wire.ToMap(payload)
	if err != nil {
		return zero, errors.Validation.WithCauseAndFormat(err, "%s payload", s.name)
	}

	if s.closed {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			if _, ok := s.byKey[k]; !ok {
				return zero, errors.UnexpectedField.WithFormat("%s does not declare it", s.name).At(k)
			}
		}
	}

	for _, f := range s.fields {
		if f.presence == required && isAbsent(m, f.key) {
			return zero, missing(f.key)
		}
	}

	var v T
	for _, f := range s.fields {
		if isAbsent(m, f.key) {
			if f.absent != nil {
				f.absent(&v)
			}
			continue
		}
		if err := f.decode(&v, m[f.key]); err != nil {
			return zero, errors.AtField(err, f.key)
		}
	}
	return v, nil
}

func isAbsent(m wire.Map, key string) bool {
	v, ok := m[key]
	return !ok || v == nil
}
