// Package wire defines the untyped payload representation exchanged with a
// node's REST API, and the 64-bit integer codec the protocol requires.
//
// # Values
//
// A wire value is one of: string, an integer (any Go integer kind, an
// integral float64 as produced by encoding/json, or a json.Number), bool,
// List, or Map. Payloads are built fresh per call and never shared.
//
// # 64-bit integers
//
// JSON numbers cannot carry a full unsigned 64-bit value, so the node sends
// every uint64 as a two element array [low32, high32]:
//
//	EncodeUint64(18446744073709551615) == UInt64DTO{4294967295, 4294967295}
//
// DecodeUint64 is the exact left inverse of EncodeUint64 and rejects pairs of
// the wrong arity with a Format error.
package wire
