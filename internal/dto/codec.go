package dto

import (
	"encoding/hex"

	"nem2/internal/errors"
	"nem2/internal/wire"
)

// Codec converts one field type to and from its wire form.
type Codec[V any] interface {
	// Type describes V in the field-type table.
	Type() string
	Encode(V) (wire.Value, error)
	Decode(wire.Value) (V, error)
}

// Describer is implemented by enumerations that carry a human readable
// description of each value.
type Describer interface {
	Description() string
}

// Marshaler is implemented by models that can render themselves as a payload.
type Marshaler interface {
	ToWire() (wire.Map, error)
}

type stringCodec struct{}

// String is the Codec for plain strings.
func String() Codec[string] { return stringCodec{} }

func (stringCodec) Type() string                        { return "string" }
func (stringCodec) Encode(v string) (wire.Value, error) { return v, nil }
func (stringCodec) Decode(v wire.Value) (string, error) { return wire.ToString(v) }

type hexCodec struct{}

// Hex is the Codec for hex encoded byte strings (keys, hashes, signatures).
// The text is checked but kept verbatim so payloads round-trip exactly.
func Hex() Codec[string] { return hexCodec{} }

func (hexCodec) Type() string { return "hex" }

func (hexCodec) Encode(v string) (wire.Value, error) {
	if _, err := hex.DecodeString(v); err != nil {
		return nil, errors.Validation.WithCauseAndFormat(err, "invalid hex %q", v)
	}
	return v, nil
}

func (hexCodec) Decode(v wire.Value) (string, error) {
	s, err := wire.ToString(v)
	if err != nil {
		return "", err
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", errors.Format.WithCauseAndFormat(err, "invalid hex %q", s)
	}
	return s, nil
}

type boolCodec struct{}

// Bool is the Codec for booleans.
func Bool() Codec[bool] { return boolCodec{} }

func (boolCodec) Type() string                      { return "bool" }
func (boolCodec) Encode(v bool) (wire.Value, error) { return v, nil }
func (boolCodec) Decode(v wire.Value) (bool, error) { return wire.ToBool(v) }

type intCodec struct{}

// Int is the Codec for signed integers small enough for a JSON number.
func Int() Codec[int64] { return intCodec{} }

func (intCodec) Type() string                       { return "int" }
func (intCodec) Encode(v int64) (wire.Value, error) { return v, nil }
func (intCodec) Decode(v wire.Value) (int64, error) { return wire.ToInt(v) }

// Unsigned is the set of unsigned integer kinds that travel as plain numbers.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

type uintCodec[N Unsigned] struct{ name string }

// Uint returns the Codec for an unsigned kind of at most 32 bits.
func Uint[N Unsigned](name string) Codec[N] { return uintCodec[N]{name} }

func (c uintCodec[N]) Type() string                   { return c.name }
func (uintCodec[N]) Encode(v N) (wire.Value, error) { return uint32(v), nil }

func (c uintCodec[N]) Decode(v wire.Value) (N, error) {
	u, err := wire.ToUint(v)
	if err != nil {
		return 0, err
	}
	if u > uint64(^N(0)) {
		return 0, errors.Format.WithFormat("%d overflows %s", u, c.name)
	}
	return N(u), nil
}

type uint64Codec struct{}

// Uint64 is the Codec for 64-bit values, carried as [low32, high32].
func Uint64() Codec[uint64] { return uint64Codec{} }

func (uint64Codec) Type() string { return "uint64" }

func (uint64Codec) Encode(v uint64) (wire.Value, error) {
	return wire.EncodeUint64(v).Value(), nil
}

func (uint64Codec) Decode(v wire.Value) (uint64, error) { return wire.DecodeUint64(v) }

// Enumeration is the constraint satisfied by numeric protocol enums.
type Enumeration interface {
	~uint8 | ~uint16
	Describer
	Valid() bool
}

type enumCodec[E Enumeration] struct{ name string }

// Enum returns the Codec for a numeric enumeration. Decoding rejects values
// the enumeration does not define.
func Enum[E Enumeration](name string) Codec[E] { return enumCodec[E]{name} }

func (c enumCodec[E]) Type() string { return c.name }

func (c enumCodec[E]) Encode(v E) (wire.Value, error) {
	if !v.Valid() {
		return nil, errors.Validation.WithFormat("undefined %s %d", c.name, uint32(v))
	}
	return uint32(v), nil
}

func (c enumCodec[E]) Decode(v wire.Value) (E, error) {
	u, err := wire.ToUint(v)
	if err != nil {
		return 0, err
	}
	e := E(u)
	if u > uint64(^E(0)) || !e.Valid() {
		return 0, errors.Format.WithFormat("undefined %s %d", c.name, u)
	}
	return e, nil
}

type listCodec[V any] struct{ elem Codec[V] }

// List returns the Codec for an ordered sequence of elem. An empty wire
// sequence decodes to a nil slice.
func List[V any](elem Codec[V]) Codec[[]V] { return listCodec[V]{elem} }

func (c listCodec[V]) Type() string { return "[]" + c.elem.Type() }

func (c listCodec[V]) Encode(v []V) (wire.Value, error) {
	out := make(wire.List, len(v))
	for i := range v {
		e, err := c.elem.Encode(v[i])
		if err != nil {
			return nil, errors.AtField(err, itoa(i))
		}
		out[i] = e
	}
	return out, nil
}

func (c listCodec[V]) Decode(v wire.Value) ([]V, error) {
	l, err := wire.ToList(v)
	if err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, nil
	}
	out := make([]V, len(l))
	for i := range l {
		e, err := c.elem.Decode(l[i])
		if err != nil {
			return nil, errors.AtField(err, itoa(i))
		}
		out[i] = e
	}
	return out, nil
}

type idCodec[I ~uint64] struct{ name string }

// ID returns the Codec for a named 64-bit identifier type, carried like any
// other uint64.
func ID[I ~uint64](name string) Codec[I] { return idCodec[I]{name} }

func (c idCodec[I]) Type() string { return c.name }

func (idCodec[I]) Encode(v I) (wire.Value, error) {
	return wire.EncodeUint64(uint64(v)).Value(), nil
}

func (idCodec[I]) Decode(v wire.Value) (I, error) {
	u, err := wire.DecodeUint64(v)
	return I(u), err
}
