package account

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"fmt"

	"nem2/internal/crypto"
	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
	"nem2/internal/errors"
)

const checksumLength = 4

// Generate creates an account with a fresh key pair on network.
func Generate(network domain.NetworkType) (domain.Account, error) {
	priv, pub, err := crypto.GenerateEd25519()
	if err != nil {
		return domain.Account{}, fmt.Errorf("generate key pair: %w", err)
	}
	return build(network, priv, pub)
}

// FromSeed rebuilds an account from its 32-byte private key seed.
func FromSeed(network domain.NetworkType, seed []byte) (domain.Account, error) {
	priv, pub, err := crypto.Ed25519FromSeed(seed)
	if err != nil {
		return domain.Account{}, errors.Validation.Wrap(err)
	}
	return build(network, priv, pub)
}

// FromPrivateKey rebuilds an account from the hex form of its private key seed.
func FromPrivateKey(network domain.NetworkType, privateKey string) (domain.Account, error) {
	seed, err := hex.DecodeString(privateKey)
	if err != nil {
		return domain.Account{}, errors.Validation.WithCauseAndFormat(err, "private key")
	}
	defer crypto.Wipe(seed)
	return FromSeed(network, seed)
}

func build(network domain.NetworkType, priv domain.Ed25519Private, pub domain.Ed25519Public) (domain.Account, error) {
	addr, err := NewAddress(network, pub)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		KeyPair: domain.KeyPair{Private: priv, Public: pub},
		Address: addr,
		Network: network,
	}, nil
}

// NewPublicAccount pairs a hex public key with its address on network.
func NewPublicAccount(network domain.NetworkType, publicKey string) (domain.PublicAccount, error) {
	pub, err := domaintypes.ParsePublicKey(publicKey)
	if err != nil {
		return domain.PublicAccount{}, errors.Validation.Wrap(err)
	}
	addr, err := NewAddress(network, pub)
	if err != nil {
		return domain.PublicAccount{}, err
	}
	return domain.PublicAccount{PublicKey: pub, Address: addr}, nil
}

// NewAddress derives the address of pub on network: the network byte, the
// ripemd160 of the sha3-256 of the key, and a 4 byte sha3-256 checksum of
// both, in base32.
func NewAddress(network domain.NetworkType, pub domain.Ed25519Public) (domain.Address, error) {
	if !network.Valid() {
		return "", errors.Validation.WithFormat("unknown network %#x", uint8(network))
	}
	keyHash, err := crypto.Sum(crypto.SHA3_256, pub[:])
	if err != nil {
		return "", err
	}
	body, err := crypto.Sum(crypto.RIPEMD160, keyHash)
	if err != nil {
		return "", err
	}
	raw := append([]byte{byte(network)}, body...)
	sum, err := crypto.Sum(crypto.SHA3_256, raw)
	if err != nil {
		return "", err
	}
	raw = append(raw, sum[:checksumLength]...)
	return domain.Address(base32.StdEncoding.EncodeToString(raw)), nil
}

// ValidateAddress checks the shape, network byte and checksum of a.
func ValidateAddress(a domain.Address) error {
	if _, err := a.NetworkType(); err != nil {
		return err
	}
	raw, err := a.Raw()
	if err != nil {
		return err
	}
	body := raw[:len(raw)-checksumLength]
	sum, err := crypto.Sum(crypto.SHA3_256, body)
	if err != nil {
		return err
	}
	if !bytes.Equal(sum[:checksumLength], raw[len(body):]) {
		return errors.Validation.WithFormat("address %s: checksum mismatch", a)
	}
	return nil
}

// IsOwnedBy reports whether pub derives to a on a's network.
func IsOwnedBy(a domain.Address, pub domain.Ed25519Public) bool {
	n, err := a.NetworkType()
	if err != nil {
		return false
	}
	want, err := NewAddress(n, pub)
	return err == nil && want == a
}
