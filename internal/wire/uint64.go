package wire

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"nem2/internal/errors"
)

// UInt64DTO is the wire form of a uint64: [low32, high32].
type UInt64DTO [2]uint32

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// EncodeUint64 splits v into its low and high 32-bit halves.
func EncodeUint64(v uint64) UInt64DTO {
	return UInt64DTO{uint32(v & 0xFFFFFFFF), uint32((v >> 32) & 0xFFFFFFFF)}
}

// EncodeBig encodes an arbitrary precision integer, failing with a Range
// error when it is negative or exceeds 2^64-1.
func EncodeBig(v *big.Int) (UInt64DTO, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(maxUint64) > 0 {
		return UInt64DTO{}, errors.Range.WithFormat("%v does not fit in 64 unsigned bits", v)
	}
	return EncodeUint64(v.Uint64()), nil
}

// DecodeUint64 joins a [low32, high32] pair. v may be a UInt64DTO, a
// [2]uint32, a []uint32 or a List of integers.
func DecodeUint64(v Value) (uint64, error) {
	switch p := v.(type) {
	case UInt64DTO:
		return p.Uint64(), nil
	case [2]uint32:
		return UInt64DTO(p).Uint64(), nil
	case []uint32:
		if len(p) != 2 {
			return 0, errors.Format.WithFormat("uint64 pair must have 2 components, got %d", len(p))
		}
		return UInt64DTO{p[0], p[1]}.Uint64(), nil
	case List:
		if len(p) != 2 {
			return 0, errors.Format.WithFormat("uint64 pair must have 2 components, got %d", len(p))
		}
		lo, err := ToUint32(p[0])
		if err != nil {
			return 0, errors.AtField(err, "0")
		}
		hi, err := ToUint32(p[1])
		if err != nil {
			return 0, errors.AtField(err, "1")
		}
		return UInt64DTO{lo, hi}.Uint64(), nil
	default:
		return 0, errors.Format.WithFormat("expected uint64 pair, got %T", v)
	}
}

// Uint64 joins the pair.
func (d UInt64DTO) Uint64() uint64 {
	return uint64(d[0]) | uint64(d[1])<<32
}

// Value returns the pair as a wire List.
func (d UInt64DTO) Value() List {
	return List{d[0], d[1]}
}

// String renders the pair as "[low, high]".
func (d UInt64DTO) String() string {
	return fmt.Sprintf("[%d, %d]", d[0], d[1])
}

// UnmarshalJSON accepts exactly two 32-bit components.
func (d *UInt64DTO) UnmarshalJSON(data []byte) error {
	var parts []json.Number
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Format.Wrap(err)
	}
	l := make(List, len(parts))
	for i := range parts {
		l[i] = parts[i]
	}
	v, err := DecodeUint64(l)
	if err != nil {
		return err
	}
	*d = EncodeUint64(v)
	return nil
}

// Uint64ToHex renders v as 16 upper-case hex digits, the form ids take in
// REST paths.
func Uint64ToHex(v uint64) string {
	return fmt.Sprintf("%016X", v)
}

// Uint64FromHex parses the output of Uint64ToHex.
func Uint64FromHex(s string) (uint64, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, errors.Format.WithFormat("hex id %q must have 1 to 16 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.Format.WithCauseAndFormat(err, "hex id %q", s)
	}
	return v, nil
}
