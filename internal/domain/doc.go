// Package domain defines the node's data models and the contracts between the
// client's services, transport and stores. It holds plain types and interfaces
// only.
package domain
