package account_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	acct "nem2/internal/account"
	"nem2/internal/domain"
	"nem2/internal/errors"
	"nem2/internal/services/account"
	"nem2/internal/store"
	"nem2/internal/wire"
)

const goodPass = "Correct-Horse-9"

type fakeTransport struct {
	method, path string
	reply        wire.Value
}

func (f *fakeTransport) Do(_ context.Context, method, path string, _ wire.Value) (wire.Value, error) {
	f.method, f.path = method, path
	return f.reply, nil
}

func newService(t *testing.T, tr domain.Transport) *account.Service {
	t.Helper()
	st := store.NewAccountFileStore(t.TempDir(), store.ScryptParams{N: 1 << 10, R: 8, P: 1})
	return account.New(st, tr, domain.MijinTest, zerolog.Nop())
}

func TestGenerateAccount_WeakPassphrase(t *testing.T) {
	svc := newService(t, &fakeTransport{})
	for _, pass := range []string{"short", "alllowercase-123", "NoDigitsHere!!", "NoSymbols12345"} {
		_, err := svc.GenerateAccount(pass, "alice")
		assert.ErrorIs(t, err, account.ErrWeakPassphrase, pass)
	}
}

func TestGenerateAndLoad(t *testing.T) {
	svc := newService(t, &fakeTransport{})
	a, err := svc.GenerateAccount(goodPass, "alice")
	require.NoError(t, err)

	got, err := svc.LoadAccount(goodPass, "alice")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	names, err := svc.ListAccounts()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names)
}

func TestImportAccount(t *testing.T) {
	svc := newService(t, &fakeTransport{})
	key := "0101010101010101010101010101010101010101010101010101010101010101"
	a, err := svc.ImportAccount(goodPass, "imported", key)
	require.NoError(t, err)
	assert.Equal(t, domain.MijinTest, a.Network)

	_, err = svc.ImportAccount(goodPass, "bad", "xyz")
	assert.ErrorIs(t, err, errors.Validation)
}

func TestGetAccountInfo(t *testing.T) {
	owner, err := acct.Generate(domain.MijinTest)
	require.NoError(t, err)

	tr := &fakeTransport{reply: wire.Map{
		"meta": wire.Map{},
		"account": wire.Map{
			"address":         string(owner.Address),
			"addressHeight":   wire.List{uint32(1), uint32(0)},
			"publicKey":       owner.Public.Hex(),
			"publicKeyHeight": wire.List{uint32(2), uint32(0)},
			"mosaics":         wire.List{},
		},
	}}
	svc := newService(t, tr)

	info, err := svc.GetAccountInfo(context.Background(), owner.Address)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, tr.method)
	assert.Equal(t, "/account/"+string(owner.Address), tr.path)
	assert.Equal(t, owner.Address, info.Account.Address)
	assert.Nil(t, info.Account.Mosaics)
}

func TestGetAccountInfo_InvalidAddress(t *testing.T) {
	tr := &fakeTransport{}
	svc := newService(t, tr)
	_, err := svc.GetAccountInfo(context.Background(), "SHORT")
	assert.ErrorIs(t, err, errors.Validation)
	assert.Empty(t, tr.path)
}

func TestGetAccountInfo_MissingField(t *testing.T) {
	owner, err := acct.Generate(domain.MijinTest)
	require.NoError(t, err)
	svc := newService(t, &fakeTransport{reply: wire.Map{"meta": wire.Map{}}})
	_, err = svc.GetAccountInfo(context.Background(), owner.Address)
	assert.ErrorIs(t, err, errors.MissingField)
}
