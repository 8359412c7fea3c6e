// Package app wires the client's dependencies.
//
// It loads Config from YAML, builds the concrete stores, node transport and
// high-level services from it, and exposes them via the Wire struct.
package app
