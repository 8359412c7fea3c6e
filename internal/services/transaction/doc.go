// Package transaction announces transactions and cosignatures and reads
// their state back from the node.
//
// High-level flow for aggregate bonded transactions:
//   - Track: fetch a transaction by hash and, while it still misses
//     signatures, keep it in the pending store so cosigning can resume later.
//   - Cosign: build the cosignature with the cosign service, announce it, and
//     drop the transaction from the pending store once the node accepted it.
package transaction
