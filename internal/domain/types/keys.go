package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Ed25519Public is an account public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Hex returns the upper-case hex form the node uses for public keys.
func (p Ed25519Public) Hex() string { return strings.ToUpper(hex.EncodeToString(p[:])) }

// Ed25519Private is an expanded signing key (seed followed by public key).
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Seed returns the 32-byte seed accounts exchange as their private key.
func (k Ed25519Private) Seed() []byte { return k[:32] }

// KeyPair holds the signing keys of an account.
type KeyPair struct {
	Private Ed25519Private
	Public  Ed25519Public
}

// ParsePublicKey decodes a 64 hex digit public key.
func ParsePublicKey(s string) (Ed25519Public, error) {
	var out Ed25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("public key: %w", err)
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("public key: want %d bytes, got %d", len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Account is a key pair bound to its address on one network. Build it with
// the account package, which derives the address.
type Account struct {
	KeyPair
	Address Address
	Network NetworkType
}

// PublicAccount returns the shareable half of a.
func (a Account) PublicAccount() PublicAccount {
	return PublicAccount{PublicKey: a.Public, Address: a.Address}
}
