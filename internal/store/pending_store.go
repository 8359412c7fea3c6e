package store

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
	"nem2/internal/wire"
)

const (
	pendingDir = "pending"
	pendingExt = ".cbor"
)

// PendingFileStore keeps one CBOR file per transaction awaiting cosignatures,
// named after its hash.
type PendingFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPendingFileStore returns a PendingFileStore rooted at dir.
func NewPendingFileStore(dir string) *PendingFileStore {
	return &PendingFileStore{dir: filepath.Join(dir, pendingDir)}
}

// SavePending stores tx under its hash, replacing any earlier copy.
func (s *PendingFileStore) SavePending(tx domain.Transaction) error {
	path, err := s.path(tx.Hash())
	if err != nil {
		return err
	}
	payload, err := tx.ToWire()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeCBOR(path, payload, 0o600)
}

// LoadPending returns the transaction stored under hash.
func (s *PendingFileStore) LoadPending(hash string) (domain.Transaction, bool, error) {
	path, err := s.path(hash)
	if err != nil {
		return domain.Transaction{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil || b == nil {
		return domain.Transaction{}, false, err
	}
	tx, err := decodePending(b)
	if err != nil {
		return domain.Transaction{}, false, fmt.Errorf("pending %s: %w", hash, err)
	}
	return tx, true, nil
}

// ListPending returns every stored transaction ordered by hash.
func (s *PendingFileStore) ListPending() ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), pendingExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]domain.Transaction, 0, len(names))
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		tx, err := decodePending(b)
		if err != nil {
			return nil, fmt.Errorf("pending %s: %w", strings.TrimSuffix(name, pendingExt), err)
		}
		out = append(out, tx)
	}
	return out, nil
}

// DeletePending removes the transaction stored under hash. Removing an
// absent hash is not an error.
func (s *PendingFileStore) DeletePending(hash string) error {
	path, err := s.path(hash)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *PendingFileStore) path(hash string) (string, error) {
	if hash == "" {
		return "", fmt.Errorf("pending transaction has no hash")
	}
	if _, err := hex.DecodeString(hash); err != nil {
		return "", fmt.Errorf("pending transaction hash %q: %w", hash, err)
	}
	return filepath.Join(s.dir, strings.ToUpper(hash)+pendingExt), nil
}

func decodePending(b []byte) (domain.Transaction, error) {
	var payload wire.Value
	if err := cborDec.Unmarshal(b, &payload); err != nil {
		return domain.Transaction{}, err
	}
	return domaintypes.TransactionFromWire(payload)
}

// Compile-time assertion that PendingFileStore implements domain.PendingStore.
var _ domain.PendingStore = (*PendingFileStore)(nil)
