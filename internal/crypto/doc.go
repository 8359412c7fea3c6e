// Package crypto exposes the primitives the toolkit consumes as capabilities.
//
// Contents
//
//   - Ed25519 key generation, seed expansion, signing and verification
//     (GenerateEd25519, Ed25519FromSeed, SignEd25519, VerifyEd25519)
//   - The hash family used for content hashing and address derivation
//     (Sum with SHA3_256, SHA3_512, Keccak256, Keccak512, RIPEMD160)
//   - The 64-bit identifier hash behind namespace and mosaic ids (IDHash)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Provider
//
// Callers that must not depend on a concrete algorithm take a Provider.
// Default implements it with the functions of this package.
//
// # Notes
//
// Key material uses the fixed-size array types from internal/domain to avoid
// accidental reallocations. Callers should treat private keys as sensitive
// and rely on Wipe when practical to reduce their lifetime in memory.
package crypto
