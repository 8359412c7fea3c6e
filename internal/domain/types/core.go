package types

import (
	"fmt"

	"nem2/internal/wire"
)

// NetworkType identifies the network an address or transaction belongs to.
type NetworkType uint8

const (
	MainNet   NetworkType = 0x68
	TestNet   NetworkType = 0x98
	Mijin     NetworkType = 0x60
	MijinTest NetworkType = 0x90
)

var networkNames = map[NetworkType]string{
	MainNet:   "MAIN_NET",
	TestNet:   "TEST_NET",
	Mijin:     "MIJIN",
	MijinTest: "MIJIN_TEST",
}

var networkDescriptions = map[NetworkType]string{
	MainNet:   "Main network",
	TestNet:   "Test network",
	Mijin:     "Mijin private network",
	MijinTest: "Mijin private test network",
}

// Valid reports whether n is a known network.
func (n NetworkType) Valid() bool { _, ok := networkNames[n]; return ok }

// String returns the network's identifier name.
func (n NetworkType) String() string {
	if s, ok := networkNames[n]; ok {
		return s
	}
	return fmt.Sprintf("NetworkType(%#x)", uint8(n))
}

// Description returns a human readable network name.
func (n NetworkType) Description() string {
	if s, ok := networkDescriptions[n]; ok {
		return s
	}
	return "Unknown network"
}

// ParseNetworkType is the inverse of NetworkType.String.
func ParseNetworkType(s string) (NetworkType, error) {
	for n, name := range networkNames {
		if name == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown network type %q", s)
}

// TransactionType identifies the kind of a transaction.
type TransactionType uint16

const (
	TransferTransaction           TransactionType = 0x4154
	RegisterNamespaceTransaction  TransactionType = 0x414E
	AddressAliasTransaction       TransactionType = 0x424E
	MosaicAliasTransaction        TransactionType = 0x434E
	MosaicDefinitionTransaction   TransactionType = 0x414D
	MosaicSupplyChangeTransaction TransactionType = 0x424D
	ModifyMultisigTransaction     TransactionType = 0x4155
	AggregateCompleteTransaction  TransactionType = 0x4141
	AggregateBondedTransaction    TransactionType = 0x4241
	LockTransaction               TransactionType = 0x4148
	SecretLockTransaction         TransactionType = 0x4152
	SecretProofTransaction        TransactionType = 0x4252
)

var transactionDescriptions = map[TransactionType]string{
	TransferTransaction:           "Transfer",
	RegisterNamespaceTransaction:  "Register namespace",
	AddressAliasTransaction:       "Address alias",
	MosaicAliasTransaction:        "Mosaic alias",
	MosaicDefinitionTransaction:   "Mosaic definition",
	MosaicSupplyChangeTransaction: "Mosaic supply change",
	ModifyMultisigTransaction:     "Modify multisig account",
	AggregateCompleteTransaction:  "Aggregate complete",
	AggregateBondedTransaction:    "Aggregate bonded",
	LockTransaction:               "Hash lock",
	SecretLockTransaction:         "Secret lock",
	SecretProofTransaction:        "Secret proof",
}

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool { _, ok := transactionDescriptions[t]; return ok }

// Description returns a human readable name of t.
func (t TransactionType) Description() string {
	if s, ok := transactionDescriptions[t]; ok {
		return s
	}
	return "Unknown transaction"
}

// IsAggregate reports whether t bundles inner transactions.
func (t TransactionType) IsAggregate() bool {
	return t == AggregateCompleteTransaction || t == AggregateBondedTransaction
}

func (t TransactionType) String() string { return fmt.Sprintf("%s (%#04x)", t.Description(), uint16(t)) }

// MessageType identifies how a transfer message payload is encoded.
type MessageType uint8

const (
	PlainMessage  MessageType = 0
	SecureMessage MessageType = 1
)

// Valid reports whether m is a known message type.
func (m MessageType) Valid() bool { return m == PlainMessage || m == SecureMessage }

// Description returns a human readable name of m.
func (m MessageType) Description() string {
	switch m {
	case PlainMessage:
		return "Plain message"
	case SecureMessage:
		return "Secure message"
	}
	return "Unknown message"
}

// NamespaceID is the 64-bit identifier of a namespace.
type NamespaceID uint64

// Hex returns the id as the REST API writes it in paths and bodies.
func (id NamespaceID) Hex() string { return wire.Uint64ToHex(uint64(id)) }

func (id NamespaceID) String() string { return id.Hex() }

// MosaicID is the 64-bit identifier of a mosaic.
type MosaicID uint64

// Hex returns the id as the REST API writes it in paths and bodies.
func (id MosaicID) Hex() string { return wire.Uint64ToHex(uint64(id)) }

func (id MosaicID) String() string { return id.Hex() }
