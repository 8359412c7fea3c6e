package interfaces

import domaintypes "nem2/internal/domain/types"

// PendingStore keeps transactions that still wait for cosignatures, keyed by
// their hash.
type PendingStore interface {
	SavePending(tx domaintypes.Transaction) error
	LoadPending(hash string) (domaintypes.Transaction, bool, error)
	ListPending() ([]domaintypes.Transaction, error)
	DeletePending(hash string) error
}
