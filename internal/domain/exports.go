package domain

import (
	interfaces "nem2/internal/domain/interfaces"
	types "nem2/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Ed25519Public                   = types.Ed25519Public
	Ed25519Private                  = types.Ed25519Private
	KeyPair                         = types.KeyPair
	Account                         = types.Account
	PublicAccount                   = types.PublicAccount
	Address                         = types.Address
	NetworkType                     = types.NetworkType
	TransactionType                 = types.TransactionType
	MessageType                     = types.MessageType
	NamespaceID                     = types.NamespaceID
	MosaicID                        = types.MosaicID
	Mosaic                          = types.Mosaic
	AccountInfo                     = types.AccountInfo
	NamespaceName                   = types.NamespaceName
	TransactionInfo                 = types.TransactionInfo
	TransactionBody                 = types.TransactionBody
	Message                         = types.Message
	Transaction                     = types.Transaction
	TransactionStatus               = types.TransactionStatus
	TransactionAnnounceResponse     = types.TransactionAnnounceResponse
	SignedTransaction               = types.SignedTransaction
	CosignatureTransaction          = types.CosignatureTransaction
	CosignatureSignedTransaction    = types.CosignatureSignedTransaction
	AggregateTransactionCosignature = types.AggregateTransactionCosignature
	BlockchainHeight                = types.BlockchainHeight
	BlockchainScore                 = types.BlockchainScore
	NodeTime                        = types.NodeTime
)

// Constants re-exported for the same reason.
const (
	MainNet   = types.MainNet
	TestNet   = types.TestNet
	Mijin     = types.Mijin
	MijinTest = types.MijinTest

	TransferTransaction          = types.TransferTransaction
	AggregateCompleteTransaction = types.AggregateCompleteTransaction
	AggregateBondedTransaction   = types.AggregateBondedTransaction

	PlainMessage = types.PlainMessage
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Transport          = interfaces.Transport
	AccountService     = interfaces.AccountService
	NamespaceService   = interfaces.NamespaceService
	TransactionService = interfaces.TransactionService
	ChainService       = interfaces.ChainService
	CosignService      = interfaces.CosignService
	AccountStore       = interfaces.AccountStore
	PendingStore       = interfaces.PendingStore
)
