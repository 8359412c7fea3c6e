// Package nem2 is a client toolkit for a NEM2 catapult node's REST API.
//
// It maps the node's models to Go types through declarative DTO schemas,
// carries 64-bit integers as [low32, high32] pairs, derives namespace and
// mosaic ids from dotted names, and cosigns announced aggregate transactions.
//
// Most callers need only NewClient:
//
//	c, err := nem2.NewClient(nem2.DefaultConfig(home))
//	height, err := c.Chain.GetBlockchainHeight(ctx)
package nem2

import (
	"nem2/internal/app"
	"nem2/internal/domain"
	"nem2/internal/identifier"
	"nem2/internal/wire"
)

type (
	// Config configures a Client. See DefaultConfig and LoadConfig.
	Config = app.Config
	// Client bundles the services of one node connection.
	Client = app.Wire

	Account                      = domain.Account
	Address                      = domain.Address
	NetworkType                  = domain.NetworkType
	NamespaceID                  = domain.NamespaceID
	MosaicID                     = domain.MosaicID
	Transaction                  = domain.Transaction
	CosignatureSignedTransaction = domain.CosignatureSignedTransaction
	UInt64DTO                    = wire.UInt64DTO
)

// NewClient builds a client from cfg.
func NewClient(cfg Config) (*Client, error) { return app.NewWire(cfg) }

// DefaultConfig returns the configuration of a local test node with state
// kept under home.
func DefaultConfig(home string) Config { return app.DefaultConfig(home) }

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) { return app.LoadConfig(path) }

// EncodeUint64 splits v into its wire pair.
func EncodeUint64(v uint64) UInt64DTO { return wire.EncodeUint64(v) }

// DecodeUint64 joins a wire pair back into a uint64.
func DecodeUint64(v any) (uint64, error) { return wire.DecodeUint64(v) }

// NamespaceIDOf derives the id of a dotted namespace name.
func NamespaceIDOf(name string) (NamespaceID, error) {
	id, err := identifier.NamespaceID(name)
	return NamespaceID(id), err
}

// MosaicIDOf derives the id of a mosaic named "namespace:mosaic".
func MosaicIDOf(fullName string) (MosaicID, error) {
	id, err := identifier.MosaicID(fullName)
	return MosaicID(id), err
}
