// Package account manages local accounts and reads their state from the node.
//
// It enforces the passphrase policy for stored keys, creates or imports
// accounts through the account store, and queries account info over the
// transport.
package account
