package types

import (
	"nem2/internal/dto"
	"nem2/internal/wire"
)

// CosignatureTransaction is a request to cosign an announced transaction.
// It is only built by the cosign service, which checks the transaction has a
// hash.
type CosignatureTransaction struct {
	Transaction Transaction
}

// Hash returns the hash of the transaction to cosign.
func (c CosignatureTransaction) Hash() string { return c.Transaction.Hash() }

// CosignatureSignedTransaction is the payload of PUT /transaction/cosignature.
type CosignatureSignedTransaction struct {
	ParentHash string
	Signature  string
	Signer     string
}

// CosignatureSignedTransactionSchema maps CosignatureSignedTransaction to its wire object.
var CosignatureSignedTransactionSchema = dto.NewSchema("CosignatureSignedTransaction",
	dto.Required("ParentHash", "parentHash", dto.Hex(), func(c *CosignatureSignedTransaction) *string { return &c.ParentHash }),
	dto.Required("Signature", "signature", dto.Hex(), func(c *CosignatureSignedTransaction) *string { return &c.Signature }),
	dto.Required("Signer", "signer", dto.Hex(), func(c *CosignatureSignedTransaction) *string { return &c.Signer }),
).Closed()

// ToWire encodes CosignatureSignedTransaction with CosignatureSignedTransactionSchema.
func (c CosignatureSignedTransaction) ToWire() (wire.Map, error) {
	return CosignatureSignedTransactionSchema.ToWire(c)
}

// CosignatureSignedTransactionFromWire decodes and validates a CosignatureSignedTransaction payload.
func CosignatureSignedTransactionFromWire(v wire.Value) (CosignatureSignedTransaction, error) {
	return CosignatureSignedTransactionSchema.FromWire(v)
}
