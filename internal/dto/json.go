package dto

import (
	"bytes"
	"encoding/json"
	"io"

	"nem2/internal/errors"
	"nem2/internal/wire"
)

// DecodeJSON reads one JSON document as a wire value. Numbers are kept as
// json.Number so no precision is lost before the schema sees them.
func DecodeJSON(r io.Reader) (wire.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v wire.Value
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Format.Wrap(err)
	}
	return v, nil
}

// MarshalJSON renders v through its schema as JSON.
func MarshalJSON[T any](s *Schema[T], v T) ([]byte, error) {
	m, err := s.ToWire(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// UnmarshalJSON parses data and builds a T through its schema.
func UnmarshalJSON[T any](s *Schema[T], data []byte) (T, error) {
	v, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		var zero T
		return zero, err
	}
	return s.FromWire(v)
}
