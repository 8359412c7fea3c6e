package account_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nem2/internal/account"
	"nem2/internal/domain"
	"nem2/internal/errors"
)

func TestAddressShape(t *testing.T) {
	for _, n := range []domain.NetworkType{domain.MainNet, domain.TestNet, domain.Mijin, domain.MijinTest} {
		acct, err := account.Generate(n)
		require.NoError(t, err)

		assert.Len(t, string(acct.Address), 40)
		got, err := acct.Address.NetworkType()
		require.NoError(t, err)
		assert.Equal(t, n, got)
		assert.NoError(t, account.ValidateAddress(acct.Address))
		assert.True(t, account.IsOwnedBy(acct.Address, acct.Public))
	}
}

func TestAddressLeadingLetter(t *testing.T) {
	acct, err := account.Generate(domain.MijinTest)
	require.NoError(t, err)
	assert.Equal(t, byte('S'), acct.Address[0])

	acct, err = account.Generate(domain.MainNet)
	require.NoError(t, err)
	assert.Equal(t, byte('N'), acct.Address[0])
}

func TestFromSeedIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x2a}, 32)
	a, err := account.FromSeed(domain.TestNet, seed)
	require.NoError(t, err)
	b, err := account.FromPrivateKey(domain.TestNet, "2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a2a")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, seed, a.Private.Seed())

	pub, err := account.NewPublicAccount(domain.TestNet, a.Public.Hex())
	require.NoError(t, err)
	assert.Equal(t, a.PublicAccount(), pub)
}

func TestFromSeedRejectsBadInput(t *testing.T) {
	_, err := account.FromSeed(domain.TestNet, []byte{1, 2, 3})
	assert.ErrorIs(t, err, errors.Validation)

	_, err = account.FromPrivateKey(domain.TestNet, "zz")
	assert.ErrorIs(t, err, errors.Validation)

	_, err = account.Generate(domain.NetworkType(0x01))
	assert.ErrorIs(t, err, errors.Validation)
}

func TestValidateAddressDetectsCorruption(t *testing.T) {
	acct, err := account.Generate(domain.MijinTest)
	require.NoError(t, err)

	raw := []byte(acct.Address)
	i := len(raw) / 2
	if raw[i] == 'A' {
		raw[i] = 'B'
	} else {
		raw[i] = 'A'
	}
	err = account.ValidateAddress(domain.Address(raw))
	assert.ErrorIs(t, err, errors.Validation)

	other, err := account.Generate(domain.MijinTest)
	require.NoError(t, err)
	assert.False(t, account.IsOwnedBy(acct.Address, other.Public))
}
