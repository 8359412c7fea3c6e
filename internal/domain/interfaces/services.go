package interfaces

import (
	"context"

	domaintypes "nem2/internal/domain/types"
)

// AccountService reads account state from the node.
type AccountService interface {
	GetAccountInfo(ctx context.Context, address domaintypes.Address) (domaintypes.AccountInfo, error)
}

// NamespaceService resolves namespace names and ids.
type NamespaceService interface {
	GetNamespaceNames(
		ctx context.Context,
		ids []domaintypes.NamespaceID,
	) ([]domaintypes.NamespaceName, error)
	ResolveName(name string) (domaintypes.NamespaceID, error)
}

// TransactionService announces transactions and reads their state.
type TransactionService interface {
	Announce(
		ctx context.Context,
		tx domaintypes.SignedTransaction,
	) (domaintypes.TransactionAnnounceResponse, error)
	AnnounceCosignature(
		ctx context.Context,
		cosig domaintypes.CosignatureSignedTransaction,
	) (domaintypes.TransactionAnnounceResponse, error)
	GetTransaction(ctx context.Context, hash string) (domaintypes.Transaction, error)
	GetTransactionStatus(ctx context.Context, hash string) (domaintypes.TransactionStatus, error)
}

// ChainService reads chain and node state.
type ChainService interface {
	GetBlockchainHeight(ctx context.Context) (domaintypes.BlockchainHeight, error)
	GetBlockchainScore(ctx context.Context) (domaintypes.BlockchainScore, error)
	GetNodeTime(ctx context.Context) (domaintypes.NodeTime, error)
}

// CosignService cosigns announced aggregate transactions.
type CosignService interface {
	Create(tx domaintypes.Transaction) (domaintypes.CosignatureTransaction, error)
	SignWith(
		req domaintypes.CosignatureTransaction,
		acct domaintypes.Account,
	) (domaintypes.CosignatureSignedTransaction, error)
}
