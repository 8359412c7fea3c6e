package store

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"nem2/internal/account"
	"nem2/internal/crypto"
	"nem2/internal/domain"
)

const accountsFile = "accounts.json"

// accountRecord is one named account on disk. Only the seed is secret; the
// public fields let accounts be listed and checked without the passphrase.
type accountRecord struct {
	Address   domain.Address     `json:"address"`
	Network   domain.NetworkType `json:"network"`
	PublicKey string             `json:"public_key"`
	Seed      blob               `json:"seed"`
}

// AccountFileStore persists named accounts to disk, each private key sealed
// under the passphrase it was saved with.
type AccountFileStore struct {
	dir    string
	params ScryptParams
	mu     sync.Mutex
}

// NewAccountFileStore returns an AccountFileStore rooted at dir.
func NewAccountFileStore(dir string, params ScryptParams) *AccountFileStore {
	return &AccountFileStore{dir: dir, params: params}
}

// SaveAccount stores or replaces the account under name.
func (s *AccountFileStore) SaveAccount(passphrase, name string, acct domain.Account) error {
	if name == "" {
		return fmt.Errorf("account name must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := seal(passphrase, acct.Private.Seed(), []byte(acct.Address), s.params)
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, accountsFile)
	records := make(map[string]accountRecord)
	if err := readJSON(path, &records); err != nil {
		return err
	}
	records[name] = accountRecord{
		Address:   acct.Address,
		Network:   acct.Network,
		PublicKey: acct.Public.Hex(),
		Seed:      sealed,
	}
	return writeJSON(path, records, 0o600)
}

// LoadAccount unseals and rebuilds the account stored under name.
func (s *AccountFileStore) LoadAccount(passphrase, name string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make(map[string]accountRecord)
	if err := readJSON(filepath.Join(s.dir, accountsFile), &records); err != nil {
		return domain.Account{}, err
	}
	rec, ok := records[name]
	if !ok {
		return domain.Account{}, fmt.Errorf("account %q not found", name)
	}

	seed, err := open(passphrase, rec.Seed, []byte(rec.Address))
	if err != nil {
		return domain.Account{}, err
	}
	defer crypto.Wipe(seed)

	acct, err := account.FromSeed(rec.Network, seed)
	if err != nil {
		return domain.Account{}, err
	}
	if acct.Address != rec.Address || acct.Public.Hex() != rec.PublicKey {
		crypto.WipePrivateKey(&acct.Private)
		return domain.Account{}, fmt.Errorf("account %q: stored key does not match %s", name, rec.Address)
	}
	return acct, nil
}

// ListAccounts returns the stored account names in order.
func (s *AccountFileStore) ListAccounts() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make(map[string]accountRecord)
	if err := readJSON(filepath.Join(s.dir, accountsFile), &records); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// PublicKey returns the public key stored for name without unsealing it.
func (s *AccountFileStore) PublicKey(name string) (domain.Ed25519Public, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make(map[string]accountRecord)
	if err := readJSON(filepath.Join(s.dir, accountsFile), &records); err != nil {
		return domain.Ed25519Public{}, false, err
	}
	rec, ok := records[name]
	if !ok {
		return domain.Ed25519Public{}, false, nil
	}
	var pub domain.Ed25519Public
	b, err := hex.DecodeString(rec.PublicKey)
	if err != nil || len(b) != len(pub) {
		return domain.Ed25519Public{}, false, fmt.Errorf("account %q: malformed public key", name)
	}
	copy(pub[:], b)
	return pub, true, nil
}

// Compile-time assertion that AccountFileStore implements domain.AccountStore.
var _ domain.AccountStore = (*AccountFileStore)(nil)
