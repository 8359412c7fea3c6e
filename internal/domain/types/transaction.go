package types

import (
	"strings"

	"nem2/internal/dto"
	"nem2/internal/wire"
)

// TransactionInfo is the meta the network attaches to an announced
// transaction.
type TransactionInfo struct {
	Height              uint64
	Index               uint32
	ID                  string
	Hash                *string
	MerkleComponentHash *string
	AggregateHash       *string
	AggregateID         *string
}

// TransactionInfoSchema maps TransactionInfo to its wire object.
var TransactionInfoSchema = dto.NewSchema("TransactionInfo",
	dto.Required("Height", "height", dto.Uint64(), func(i *TransactionInfo) *uint64 { return &i.Height }),
	dto.Default("Index", "index", dto.Uint[uint32]("uint32"), func(i *TransactionInfo) *uint32 { return &i.Index }, 0),
	dto.Required("ID", "id", dto.String(), func(i *TransactionInfo) *string { return &i.ID }),
	dto.Optional("Hash", "hash", dto.Hex(), func(i *TransactionInfo) **string { return &i.Hash }),
	dto.Optional("MerkleComponentHash", "merkleComponentHash", dto.Hex(), func(i *TransactionInfo) **string { return &i.MerkleComponentHash }),
	dto.Optional("AggregateHash", "aggregateHash", dto.Hex(), func(i *TransactionInfo) **string { return &i.AggregateHash }),
	dto.Optional("AggregateID", "aggregateId", dto.String(), func(i *TransactionInfo) **string { return &i.AggregateID }),
)

// ToWire encodes TransactionInfo with TransactionInfoSchema.
func (i TransactionInfo) ToWire() (wire.Map, error) { return TransactionInfoSchema.ToWire(i) }

// TransactionInfoFromWire decodes and validates a TransactionInfo payload.
func TransactionInfoFromWire(v wire.Value) (TransactionInfo, error) {
	return TransactionInfoSchema.FromWire(v)
}

// HashValue returns the canonical hash, or "" when the network has not set one.
func (i *TransactionInfo) HashValue() string {
	if i == nil || i.Hash == nil {
		return ""
	}
	return *i.Hash
}

// Message is the optional text attached to a transfer.
type Message struct {
	Type    MessageType
	Payload string
}

// MessageSchema maps Message to its wire object.
var MessageSchema = dto.NewSchema("Message",
	dto.Required("Type", "type", dto.Enum[MessageType]("MessageType"), func(m *Message) *MessageType { return &m.Type }),
	dto.Required("Payload", "payload", dto.Hex(), func(m *Message) *string { return &m.Payload }),
)

// AggregateTransactionCosignature is a cosignature already attached to an
// aggregate transaction.
type AggregateTransactionCosignature struct {
	Signature string
	Signer    string
}

// AggregateTransactionCosignatureSchema maps AggregateTransactionCosignature to its wire object.
var AggregateTransactionCosignatureSchema = dto.NewSchema("AggregateTransactionCosignature",
	dto.Required("Signature", "signature", dto.Hex(), func(c *AggregateTransactionCosignature) *string { return &c.Signature }),
	dto.Required("Signer", "signer", dto.Hex(), func(c *AggregateTransactionCosignature) *string { return &c.Signer }),
)

// TransactionBody holds the signed fields common to every transaction plus
// the optional transfer and aggregate fields.
type TransactionBody struct {
	Signature    string
	Signer       string
	Version      uint16
	Type         TransactionType
	MaxFee       uint64
	Deadline     uint64
	Recipient    *Address
	Mosaics      []Mosaic
	Message      *Message
	Cosignatures []AggregateTransactionCosignature
}

// TransactionBodySchema maps TransactionBody to its wire object.
var TransactionBodySchema = dto.NewSchema("TransactionBody",
	dto.Required("Signature", "signature", dto.Hex(), func(t *TransactionBody) *string { return &t.Signature }),
	dto.Required("Signer", "signer", dto.Hex(), func(t *TransactionBody) *string { return &t.Signer }),
	dto.Required("Version", "version", dto.Uint[uint16]("uint16"), func(t *TransactionBody) *uint16 { return &t.Version }),
	dto.Required("Type", "type", dto.Enum[TransactionType]("TransactionType"), func(t *TransactionBody) *TransactionType { return &t.Type }),
	dto.Default("MaxFee", "maxFee", dto.Uint64(), func(t *TransactionBody) *uint64 { return &t.MaxFee }, 0),
	dto.Required("Deadline", "deadline", dto.Uint64(), func(t *TransactionBody) *uint64 { return &t.Deadline }),
	dto.Optional("Recipient", "recipient", AddressCodec(), func(t *TransactionBody) **Address { return &t.Recipient }),
	dto.OptionalList("Mosaics", "mosaics", dto.Codec[Mosaic](MosaicSchema), func(t *TransactionBody) *[]Mosaic { return &t.Mosaics }),
	dto.Optional("Message", "message", dto.Codec[Message](MessageSchema), func(t *TransactionBody) **Message { return &t.Message }),
	dto.OptionalList("Cosignatures", "cosignatures", dto.Codec[AggregateTransactionCosignature](AggregateTransactionCosignatureSchema),
		func(t *TransactionBody) *[]AggregateTransactionCosignature { return &t.Cosignatures }),
)

// NetworkType returns the network encoded in the high byte of the version.
func (t TransactionBody) NetworkType() NetworkType { return NetworkType(t.Version >> 8) }

// State is the position of a transaction in its lifecycle.
type State uint8

const (
	Unannounced State = iota
	Announced
	Confirmed
)

func (s State) String() string {
	switch s {
	case Unannounced:
		return "unannounced"
	case Announced:
		return "announced"
	case Confirmed:
		return "confirmed"
	}
	return "unknown"
}

// Transaction is a transaction body together with the network meta, which is
// nil until the transaction has been announced.
type Transaction struct {
	Meta        *TransactionInfo
	Transaction TransactionBody
}

// TransactionSchema maps Transaction to its wire object.
var TransactionSchema = dto.NewSchema("Transaction",
	dto.Optional("Meta", "meta", dto.Codec[TransactionInfo](TransactionInfoSchema), func(t *Transaction) **TransactionInfo { return &t.Meta }),
	dto.Required("Transaction", "transaction", dto.Codec[TransactionBody](TransactionBodySchema), func(t *Transaction) *TransactionBody { return &t.Transaction }),
)

// ToWire encodes Transaction with TransactionSchema.
func (t Transaction) ToWire() (wire.Map, error) { return TransactionSchema.ToWire(t) }

// TransactionFromWire decodes and validates a Transaction payload.
func TransactionFromWire(v wire.Value) (Transaction, error) { return TransactionSchema.FromWire(v) }

// State reports where t is in its lifecycle.
func (t Transaction) State() State {
	switch {
	case t.Meta == nil:
		return Unannounced
	case t.Meta.Height == 0:
		return Announced
	default:
		return Confirmed
	}
}

// Lifecycle predicates. An unconfirmed transaction is announced but has no
// block height yet.
func (t Transaction) IsUnannounced() bool { return t.Meta == nil }
func (t Transaction) IsAnnounced() bool   { return t.Meta != nil }
func (t Transaction) IsUnconfirmed() bool { return t.Meta != nil && t.Meta.Height == 0 }
func (t Transaction) IsConfirmed() bool   { return t.Meta != nil && t.Meta.Height > 0 }

// Hash returns the network assigned hash, or "" before announcement.
func (t Transaction) Hash() string { return t.Meta.HashValue() }

// HasMissingSignatures reports whether an unconfirmed aggregate still waits
// for cosignatures: its hash differs from the merkle component hash. The
// aggregate hash is compared only as a fallback, when the node sent no
// merkle component hash. Unannounced and confirmed transactions (height > 0)
// never report missing signatures, and neither does one with no reference
// hash at all.
func (t Transaction) HasMissingSignatures() bool {
	if !t.IsUnconfirmed() || t.Meta.Hash == nil {
		return false
	}
	ref := t.Meta.MerkleComponentHash
	if ref == nil {
		ref = t.Meta.AggregateHash
	}
	if ref == nil {
		return false
	}
	return !strings.EqualFold(*t.Meta.Hash, *ref)
}

// TransactionStatus is the response of GET /transaction/{hash}/status.
type TransactionStatus struct {
	Group    string
	Status   string
	Hash     string
	Deadline uint64
	Height   uint64
}

// TransactionStatusSchema maps TransactionStatus to its wire object.
var TransactionStatusSchema = dto.NewSchema("TransactionStatus",
	dto.Required("Group", "group", dto.String(), func(s *TransactionStatus) *string { return &s.Group }),
	dto.Required("Status", "status", dto.String(), func(s *TransactionStatus) *string { return &s.Status }),
	dto.Required("Hash", "hash", dto.Hex(), func(s *TransactionStatus) *string { return &s.Hash }),
	dto.Default("Deadline", "deadline", dto.Uint64(), func(s *TransactionStatus) *uint64 { return &s.Deadline }, 0),
	dto.Default("Height", "height", dto.Uint64(), func(s *TransactionStatus) *uint64 { return &s.Height }, 0),
)

// ToWire encodes TransactionStatus with TransactionStatusSchema.
func (s TransactionStatus) ToWire() (wire.Map, error) { return TransactionStatusSchema.ToWire(s) }

// TransactionStatusFromWire decodes and validates a TransactionStatus payload.
func TransactionStatusFromWire(v wire.Value) (TransactionStatus, error) {
	return TransactionStatusSchema.FromWire(v)
}

// IsSuccess reports whether the node accepted the transaction.
func (s TransactionStatus) IsSuccess() bool { return s.Status == "Success" }

// TransactionAnnounceResponse is the node's reply to an announce call.
type TransactionAnnounceResponse struct {
	Message string
}

// TransactionAnnounceResponseSchema maps TransactionAnnounceResponse to its wire object.
var TransactionAnnounceResponseSchema = dto.NewSchema("TransactionAnnounceResponse",
	dto.Required("Message", "message", dto.String(), func(r *TransactionAnnounceResponse) *string { return &r.Message }),
)

// ToWire encodes TransactionAnnounceResponse with TransactionAnnounceResponseSchema.
func (r TransactionAnnounceResponse) ToWire() (wire.Map, error) {
	return TransactionAnnounceResponseSchema.ToWire(r)
}

// TransactionAnnounceResponseFromWire decodes and validates a TransactionAnnounceResponse payload.
func TransactionAnnounceResponseFromWire(v wire.Value) (TransactionAnnounceResponse, error) {
	return TransactionAnnounceResponseSchema.FromWire(v)
}

// SignedTransaction is a serialized and signed transaction ready to announce.
type SignedTransaction struct {
	Payload     string
	Hash        string
	Signer      string
	Type        TransactionType
	NetworkType NetworkType
}

// SignedTransactionSchema describes the announce body. Only "payload" goes
// to the node; the other keys let callers persist the transaction.
var SignedTransactionSchema = dto.NewSchema("SignedTransaction",
	dto.Required("Payload", "payload", dto.Hex(), func(s *SignedTransaction) *string { return &s.Payload }),
	dto.Required("Hash", "hash", dto.Hex(), func(s *SignedTransaction) *string { return &s.Hash }),
	dto.Required("Signer", "signer", dto.Hex(), func(s *SignedTransaction) *string { return &s.Signer }),
	dto.Required("Type", "type", dto.Enum[TransactionType]("TransactionType"), func(s *SignedTransaction) *TransactionType { return &s.Type }),
	dto.Required("NetworkType", "networkType", dto.Enum[NetworkType]("NetworkType"), func(s *SignedTransaction) *NetworkType { return &s.NetworkType }),
)

// ToWire encodes SignedTransaction with SignedTransactionSchema.
func (s SignedTransaction) ToWire() (wire.Map, error) { return SignedTransactionSchema.ToWire(s) }

// SignedTransactionFromWire decodes and validates a SignedTransaction payload.
func SignedTransactionFromWire(v wire.Value) (SignedTransaction, error) {
	return SignedTransactionSchema.FromWire(v)
}
