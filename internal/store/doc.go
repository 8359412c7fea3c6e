// Package store provides file-based persistence for local client state.
//
// It contains concrete implementations of the domain storage interfaces. All
// methods are concurrency-safe via internal locking and every write goes
// through a temp file and rename. Stored files typically live under the
// user's configured home directory.
//
// The package includes stores for:
//   - Accounts, with private key seeds sealed under a passphrase
//     (AccountFileStore)
//   - Aggregate transactions still waiting for cosignatures, kept as the
//     CBOR encoding of their wire payload (PendingFileStore)
package store
