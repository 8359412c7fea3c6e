package interfaces

import domaintypes "nem2/internal/domain/types"

// AccountStore persists named accounts, keeping private keys sealed under a
// passphrase.
type AccountStore interface {
	SaveAccount(passphrase, name string, acct domaintypes.Account) error
	LoadAccount(passphrase, name string) (domaintypes.Account, error)
	ListAccounts() ([]string, error)
}
