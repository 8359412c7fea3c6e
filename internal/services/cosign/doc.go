// Package cosign turns announced aggregate transactions into cosignatures.
//
// Only a transaction that holds network meta with a hash can be cosigned.
// Create enforces that before a request exists, and SignWith checks it again
// since requests are plain values. Signing covers the raw bytes of the hash
// and never touches the transaction it was given.
package cosign
