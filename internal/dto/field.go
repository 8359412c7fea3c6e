package dto

import (
	"strconv"

	"nem2/internal/errors"
	"nem2/internal/wire"
)

type presence int

const (
	required presence = iota
	optional
	defaulted
)

// Field binds one model field of T to a wire key.
type Field[T any] struct {
	name     string
	key      string
	typ      string
	presence presence

	encode func(*T) (v wire.Value, present bool, err error)
	decode func(*T, wire.Value) error
	absent func(*T)
}

// FieldInfo is one row of a schema's field-type and field-key tables.
type FieldInfo struct {
	Name       string
	Key        string
	Type       string
	Required   bool
	HasDefault bool
}

// Required declares a field whose key must be present in every payload.
func Required[T, V any](name, key string, c Codec[V], at func(*T) *V) Field[T] {
	return Field[T]{
		name: name,
		key:  key,
		typ:  c.Type(),
		encode: func(m *T) (wire.Value, bool, error) {
			v, err := c.Encode(*at(m))
			return v, true, err
		},
		decode: func(m *T, v wire.Value) error {
			d, err := c.Decode(v)
			if err != nil {
				return err
			}
			*at(m) = d
			return nil
		},
	}
}

// Optional declares a field held by pointer. A nil pointer is omitted from
// the payload and an absent key decodes to nil.
func Optional[T, V any](name, key string, c Codec[V], at func(*T) **V) Field[T] {
	return Field[T]{
		name:     name,
		key:      key,
		typ:      "*" + c.Type(),
		presence: optional,
		encode: func(m *T) (wire.Value, bool, error) {
			p := *at(m)
			if p == nil {
				return nil, false, nil
			}
			v, err := c.Encode(*p)
			return v, true, err
		},
		decode: func(m *T, v wire.Value) error {
			d, err := c.Decode(v)
			if err != nil {
				return err
			}
			*at(m) = &d
			return nil
		},
	}
}

// Default declares a field that is always emitted but may be absent from a
// payload, in which case def is substituted.
func Default[T, V any](name, key string, c Codec[V], at func(*T) *V, def V) Field[T] {
	f := Required(name, key, c, at)
	f.presence = defaulted
	f.absent = func(m *T) { *at(m) = def }
	return f
}

// OptionalList declares a sequence field omitted from the payload when
// empty. An absent key decodes to a nil slice.
func OptionalList[T, V any](name, key string, elem Codec[V], at func(*T) *[]V) Field[T] {
	c := List(elem)
	return Field[T]{
		name:     name,
		key:      key,
		typ:      "*" + c.Type(),
		presence: optional,
		encode: func(m *T) (wire.Value, bool, error) {
			if len(*at(m)) == 0 {
				return nil, false, nil
			}
			v, err := c.Encode(*at(m))
			return v, true, err
		},
		decode: func(m *T, v wire.Value) error {
			d, err := c.Decode(v)
			if err != nil {
				return err
			}
			*at(m) = d
			return nil
		},
	}
}

func (f Field[T]) info() FieldInfo {
	return FieldInfo{
		Name:       f.name,
		Key:        f.key,
		Type:       f.typ,
		Required:   f.presence == required,
		HasDefault: f.presence == defaulted,
	}
}

func itoa(i int) string { return strconv.Itoa(i) }

func missing(key string) error {
	return errors.MissingField.With("required key is absent").At(key)
}
