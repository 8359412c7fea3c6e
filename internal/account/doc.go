// Package account builds accounts from keys and derives their addresses.
//
// An address is the network byte, the RIPEMD-160 of the SHA3-256 of the
// public key, and a four byte SHA3-256 checksum, rendered in base32.
package account
