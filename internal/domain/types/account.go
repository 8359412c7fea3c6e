package types

import (
	"encoding/base32"
	"strings"

	"nem2/internal/dto"
	"nem2/internal/errors"
	"nem2/internal/wire"
)

// AddressLength is the length of an encoded address: 25 raw bytes in base32.
const AddressLength = 40

// RawAddressLength is the decoded size of an address: network byte,
// ripemd160 digest and a 4 byte checksum.
const RawAddressLength = 25

// Address is the base32 form of an account address, without dashes.
type Address string

// ParseAddress normalises s (upper case, dashes stripped) and checks its shape.
// The checksum is verified by the account package, which owns the hashing.
func ParseAddress(s string) (Address, error) {
	a := Address(strings.ToUpper(strings.ReplaceAll(s, "-", "")))
	if _, err := a.Raw(); err != nil {
		return "", err
	}
	return a, nil
}

// Raw decodes the address to its 25 byte form.
func (a Address) Raw() ([]byte, error) {
	if len(a) != AddressLength {
		return nil, errors.Validation.WithFormat("address %q: want %d characters, got %d", string(a), AddressLength, len(a))
	}
	b, err := base32.StdEncoding.DecodeString(string(a))
	if err != nil {
		return nil, errors.Validation.WithCauseAndFormat(err, "address %q", string(a))
	}
	return b, nil
}

// NetworkType returns the network encoded in the first address byte.
func (a Address) NetworkType() (NetworkType, error) {
	raw, err := a.Raw()
	if err != nil {
		return 0, err
	}
	n := NetworkType(raw[0])
	if !n.Valid() {
		return 0, errors.Validation.WithFormat("address %q: unknown network %#x", string(a), raw[0])
	}
	return n, nil
}

// Pretty returns the address split into dash separated groups of six.
func (a Address) Pretty() string {
	var b strings.Builder
	for i := 0; i < len(a); i += 6 {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(string(a[i:min(i+6, len(a))]))
	}
	return b.String()
}

func (a Address) String() string { return string(a) }

type addressCodec struct{}

// AddressCodec carries an Address as its plain base32 text.
func AddressCodec() dto.Codec[Address] { return addressCodec{} }

func (addressCodec) Type() string { return "address" }

func (addressCodec) Encode(a Address) (wire.Value, error) {
	if _, err := a.Raw(); err != nil {
		return nil, err
	}
	return string(a), nil
}

func (addressCodec) Decode(v wire.Value) (Address, error) {
	s, err := wire.ToString(v)
	if err != nil {
		return "", err
	}
	a, err := ParseAddress(s)
	if err != nil {
		return "", errors.Format.Wrap(err)
	}
	return a, nil
}

// Mosaic is an amount of one mosaic held or transferred.
type Mosaic struct {
	ID     MosaicID
	Amount uint64
}

// MosaicSchema maps Mosaic to {"id", "amount"}.
var MosaicSchema = dto.NewSchema("Mosaic",
	dto.Required("ID", "id", dto.ID[MosaicID]("MosaicId"), func(m *Mosaic) *MosaicID { return &m.ID }),
	dto.Required("Amount", "amount", dto.Uint64(), func(m *Mosaic) *uint64 { return &m.Amount }),
)

// ToWire renders m as a payload.
func (m Mosaic) ToWire() (wire.Map, error) { return MosaicSchema.ToWire(m) }

// MosaicFromWire builds a Mosaic from a payload.
func MosaicFromWire(v wire.Value) (Mosaic, error) { return MosaicSchema.FromWire(v) }

// AccountState is the account object the node reports.
type AccountState struct {
	Address          Address
	AddressHeight    uint64
	PublicKey        string
	PublicKeyHeight  uint64
	Mosaics          []Mosaic
	Importance       uint64
	ImportanceHeight uint64
}

// AccountStateSchema maps AccountState to the node's account object.
var AccountStateSchema = dto.NewSchema("AccountState",
	dto.Required("Address", "address", AddressCodec(), func(a *AccountState) *Address { return &a.Address }),
	dto.Required("AddressHeight", "addressHeight", dto.Uint64(), func(a *AccountState) *uint64 { return &a.AddressHeight }),
	dto.Required("PublicKey", "publicKey", dto.Hex(), func(a *AccountState) *string { return &a.PublicKey }),
	dto.Required("PublicKeyHeight", "publicKeyHeight", dto.Uint64(), func(a *AccountState) *uint64 { return &a.PublicKeyHeight }),
	dto.Required("Mosaics", "mosaics", dto.List[Mosaic](MosaicSchema), func(a *AccountState) *[]Mosaic { return &a.Mosaics }),
	dto.Default("Importance", "importance", dto.Uint64(), func(a *AccountState) *uint64 { return &a.Importance }, 0),
	dto.Default("ImportanceHeight", "importanceHeight", dto.Uint64(), func(a *AccountState) *uint64 { return &a.ImportanceHeight }, 0),
)

// AccountInfo is the response of GET /account/{address}.
type AccountInfo struct {
	Meta    EmptyMetadata
	Account AccountState
}

// AccountInfoSchema maps AccountInfo to {"meta", "account"}.
var AccountInfoSchema = dto.NewSchema("AccountInfo",
	dto.Required("Meta", "meta", dto.Codec[EmptyMetadata](EmptyMetadataSchema), func(a *AccountInfo) *EmptyMetadata { return &a.Meta }),
	dto.Required("Account", "account", dto.Codec[AccountState](AccountStateSchema), func(a *AccountInfo) *AccountState { return &a.Account }),
)

// ToWire renders a as a payload.
func (a AccountInfo) ToWire() (wire.Map, error) { return AccountInfoSchema.ToWire(a) }

// AccountInfoFromWire builds an AccountInfo from a payload.
func AccountInfoFromWire(v wire.Value) (AccountInfo, error) { return AccountInfoSchema.FromWire(v) }

// PublicAccount pairs a public key with its address.
type PublicAccount struct {
	PublicKey Ed25519Public
	Address   Address
}
