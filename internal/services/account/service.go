package account

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"unicode"

	"github.com/rs/zerolog"

	acct "nem2/internal/account"
	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages local accounts and reads account state from the node.
type Service struct {
	store     domain.AccountStore
	transport domain.Transport
	network   domain.NetworkType
	log       zerolog.Logger
}

// New returns an account service for network.
func New(
	store domain.AccountStore,
	transport domain.Transport,
	network domain.NetworkType,
	log zerolog.Logger,
) *Service {
	return &Service{store: store, transport: transport, network: network, log: log}
}

// GenerateAccount creates a new account, saves it under name sealed with the
// passphrase, and returns it.
func (s *Service) GenerateAccount(passphrase, name string) (domain.Account, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Account{}, ErrWeakPassphrase
	}
	a, err := acct.Generate(s.network)
	if err != nil {
		return domain.Account{}, err
	}
	if err := s.store.SaveAccount(passphrase, name, a); err != nil {
		return domain.Account{}, err
	}
	s.log.Info().Str("name", name).Str("address", a.Address.Pretty()).Msg("account created")
	return a, nil
}

// ImportAccount saves an existing private key under name.
func (s *Service) ImportAccount(passphrase, name, privateKey string) (domain.Account, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Account{}, ErrWeakPassphrase
	}
	a, err := acct.FromPrivateKey(s.network, privateKey)
	if err != nil {
		return domain.Account{}, err
	}
	if err := s.store.SaveAccount(passphrase, name, a); err != nil {
		return domain.Account{}, err
	}
	s.log.Info().Str("name", name).Str("address", a.Address.Pretty()).Msg("account imported")
	return a, nil
}

// LoadAccount decrypts and returns the account stored under name.
func (s *Service) LoadAccount(passphrase, name string) (domain.Account, error) {
	return s.store.LoadAccount(passphrase, name)
}

// ListAccounts returns the names of the stored accounts.
func (s *Service) ListAccounts() ([]string, error) { return s.store.ListAccounts() }

// GetAccountInfo fetches the node's view of address.
func (s *Service) GetAccountInfo(ctx context.Context, address domain.Address) (domain.AccountInfo, error) {
	if err := acct.ValidateAddress(address); err != nil {
		return domain.AccountInfo{}, err
	}
	v, err := s.transport.Do(ctx, http.MethodGet, "/account/"+url.PathEscape(string(address)), nil)
	if err != nil {
		return domain.AccountInfo{}, err
	}
	info, err := domaintypes.AccountInfoFromWire(v)
	if err != nil {
		return domain.AccountInfo{}, fmt.Errorf("account %s: %w", address, err)
	}
	return info, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
