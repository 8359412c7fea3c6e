package wire

import (
	"encoding/json"
	"math"
	"strconv"

	"nem2/internal/errors"
)

// Value is any wire value.
type Value = any

// Map is a keyed wire object.
type Map = map[string]any

// List is an ordered wire sequence.
type List = []any

// ToUint coerces an integer-like wire value to uint64.
func ToUint(v Value) (uint64, error) {
	switch n := v.(type) {
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case int, int8, int16, int32, int64:
		i, _ := ToInt(n)
		if i < 0 {
			return 0, errors.Format.WithFormat("negative value %d", i)
		}
		return uint64(i), nil
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= 1<<64 {
			return 0, errors.Format.WithFormat("%v is not an unsigned integer", n)
		}
		return uint64(n), nil
	case json.Number:
		u, err := strconv.ParseUint(string(n), 10, 64)
		if err != nil {
			return 0, errors.Format.WithCauseAndFormat(err, "%q is not an unsigned integer", string(n))
		}
		return u, nil
	default:
		return 0, errors.Format.WithFormat("expected integer, got %T", v)
	}
}

// ToInt coerces an integer-like wire value to int64.
func ToInt(v Value) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint, uint8, uint16, uint32, uint64:
		u, _ := ToUint(n)
		if u > math.MaxInt64 {
			return 0, errors.Format.WithFormat("%d overflows int64", u)
		}
		return int64(u), nil
	case float64:
		if n != math.Trunc(n) || n < -(1<<63) || n >= 1<<63 {
			return 0, errors.Format.WithFormat("%v is not an integer", n)
		}
		return int64(n), nil
	case json.Number:
		i, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0, errors.Format.WithCauseAndFormat(err, "%q is not an integer", string(n))
		}
		return i, nil
	default:
		return 0, errors.Format.WithFormat("expected integer, got %T", v)
	}
}

// ToUint32 coerces v and checks it fits in 32 bits.
func ToUint32(v Value) (uint32, error) {
	u, err := ToUint(v)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, errors.Format.WithFormat("%d does not fit in 32 bits", u)
	}
	return uint32(u), nil
}

// ToString asserts v is a string.
func ToString(v Value) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.Format.WithFormat("expected string, got %T", v)
	}
	return s, nil
}

// ToBool asserts v is a bool.
func ToBool(v Value) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errors.Format.WithFormat("expected bool, got %T", v)
	}
	return b, nil
}

// ToMap asserts v is a keyed object. Maps with interface keys, as some
// decoders produce, are accepted when every key is a string.
func ToMap(v Value) (Map, error) {
	switch m := v.(type) {
	case Map:
		return m, nil
	case map[any]any:
		out := make(Map, len(m))
		for k, e := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, errors.Format.WithFormat("non-string key %v", k)
			}
			out[ks] = e
		}
		return out, nil
	default:
		return nil, errors.Format.WithFormat("expected object, got %T", v)
	}
}

// ToList asserts v is a sequence.
func ToList(v Value) (List, error) {
	switch l := v.(type) {
	case List:
		return l, nil
	case []Map:
		out := make(List, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, nil
	case []string:
		out := make(List, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, nil
	default:
		return nil, errors.Format.WithFormat("expected array, got %T", v)
	}
}
