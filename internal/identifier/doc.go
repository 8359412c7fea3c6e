// Package identifier derives the protocol's 64-bit namespace and mosaic
// identifiers from hierarchical dotted names.
//
// Each segment's identifier is hashed together with its parent's identifier,
// so "a.b.c" and "x.b.c" share no identifiers even though they share a
// suffix. The hash itself is a crypto.Provider capability.
package identifier
