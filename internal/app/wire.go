package app

import (
	"os"

	"github.com/rs/zerolog"

	"nem2/internal/crypto"
	"nem2/internal/domain"
	"nem2/internal/identifier"
	"nem2/internal/logging"
	accountsvc "nem2/internal/services/account"
	chainsvc "nem2/internal/services/chain"
	cosignsvc "nem2/internal/services/cosign"
	namespacesvc "nem2/internal/services/namespace"
	transactionsvc "nem2/internal/services/transaction"
	"nem2/internal/store"
	"nem2/internal/transport"
)

// Wire bundles all stores, services, and clients of one node connection.
type Wire struct {
	Network      domain.NetworkType
	Log          zerolog.Logger
	Transport    domain.Transport
	Deriver      *identifier.Deriver
	Accounts     *accountsvc.Service
	Namespaces   *namespacesvc.Service
	Transactions *transactionsvc.Service
	Chain        *chainsvc.Service
	Cosign       *cosignsvc.Service
	AccountStore domain.AccountStore
	PendingStore domain.PendingStore
}

// NewWire constructs the dependency graph from cfg, logging to stderr.
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, err
	}
	return NewWireWithLogger(cfg, log)
}

// NewWireWithLogger is NewWire with a caller supplied logger.
func NewWireWithLogger(cfg Config, log zerolog.Logger) (*Wire, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	network, err := cfg.NetworkType()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	// File-based stores
	accountStore := store.NewAccountFileStore(cfg.Home, cfg.ScryptParams())
	pendingStore := store.NewPendingFileStore(cfg.Home)

	// Node transport (uses provided HTTP client when set)
	tr := transport.NewHTTP(cfg.NodeURL, cfg.Timeout, log.With().Str("component", "transport").Logger())
	if cfg.HTTP != nil {
		tr.HTTP = cfg.HTTP
	}

	// High-level services
	deriver := identifier.New(crypto.Default)
	cosign := cosignsvc.New(crypto.Default, log.With().Str("component", "cosign").Logger())

	return &Wire{
		Network:      network,
		Log:          log,
		Transport:    tr,
		Deriver:      deriver,
		Accounts:     accountsvc.New(accountStore, tr, network, log.With().Str("component", "account").Logger()),
		Namespaces:   namespacesvc.New(tr, deriver, log.With().Str("component", "namespace").Logger()),
		Transactions: transactionsvc.New(tr, cosign, pendingStore, log.With().Str("component", "transaction").Logger()),
		Chain:        chainsvc.New(tr),
		Cosign:       cosign,
		AccountStore: accountStore,
		PendingStore: pendingStore,
	}, nil
}
