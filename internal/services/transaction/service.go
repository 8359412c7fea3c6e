package transaction

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
	"nem2/internal/wire"
)

// Service talks to the node's transaction endpoints.
type Service struct {
	transport domain.Transport
	cosigner  domain.CosignService
	pending   domain.PendingStore
	log       zerolog.Logger
}

// New returns a transaction service. pending may be nil when cosigning
// never needs to resume across runs.
func New(
	transport domain.Transport,
	cosigner domain.CosignService,
	pending domain.PendingStore,
	log zerolog.Logger,
) *Service {
	return &Service{transport: transport, cosigner: cosigner, pending: pending, log: log}
}

// Announce sends a signed transaction to the network.
func (s *Service) Announce(
	ctx context.Context,
	tx domain.SignedTransaction,
) (domain.TransactionAnnounceResponse, error) {
	if _, err := tx.ToWire(); err != nil {
		return domain.TransactionAnnounceResponse{}, err
	}
	return s.announce(ctx, "/transaction", wire.Map{"payload": tx.Payload}, tx.Hash)
}

// AnnounceCosignature sends a cosignature for an aggregate bonded transaction.
func (s *Service) AnnounceCosignature(
	ctx context.Context,
	cosig domain.CosignatureSignedTransaction,
) (domain.TransactionAnnounceResponse, error) {
	body, err := cosig.ToWire()
	if err != nil {
		return domain.TransactionAnnounceResponse{}, err
	}
	return s.announce(ctx, "/transaction/cosignature", body, cosig.ParentHash)
}

func (s *Service) announce(
	ctx context.Context,
	path string,
	body wire.Map,
	hash string,
) (domain.TransactionAnnounceResponse, error) {
	v, err := s.transport.Do(ctx, http.MethodPut, path, body)
	if err != nil {
		return domain.TransactionAnnounceResponse{}, err
	}
	resp, err := domaintypes.TransactionAnnounceResponseFromWire(v)
	if err != nil {
		return domain.TransactionAnnounceResponse{}, fmt.Errorf("announce %s: %w", hash, err)
	}
	s.log.Info().Str("hash", hash).Str("path", path).Msg(resp.Message)
	return resp, nil
}

// GetTransaction fetches a transaction by hash or id.
func (s *Service) GetTransaction(ctx context.Context, hash string) (domain.Transaction, error) {
	v, err := s.transport.Do(ctx, http.MethodGet, "/transaction/"+url.PathEscape(hash), nil)
	if err != nil {
		return domain.Transaction{}, err
	}
	tx, err := domaintypes.TransactionFromWire(v)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", hash, err)
	}
	return tx, nil
}

// GetTransactionStatus fetches the processing status of a transaction.
func (s *Service) GetTransactionStatus(ctx context.Context, hash string) (domain.TransactionStatus, error) {
	v, err := s.transport.Do(ctx, http.MethodGet, "/transaction/"+url.PathEscape(hash)+"/status", nil)
	if err != nil {
		return domain.TransactionStatus{}, err
	}
	st, err := domaintypes.TransactionStatusFromWire(v)
	if err != nil {
		return domain.TransactionStatus{}, fmt.Errorf("transaction %s status: %w", hash, err)
	}
	return st, nil
}

// Track fetches the transaction and stores it as pending while it still
// misses signatures. It reports whether the transaction is pending.
func (s *Service) Track(ctx context.Context, hash string) (domain.Transaction, bool, error) {
	tx, err := s.GetTransaction(ctx, hash)
	if err != nil {
		return domain.Transaction{}, false, err
	}
	if !tx.HasMissingSignatures() {
		return tx, false, nil
	}
	if s.pending != nil {
		if err := s.pending.SavePending(tx); err != nil {
			return domain.Transaction{}, false, err
		}
	}
	return tx, true, nil
}

// Cosign signs the transaction with acct and announces the cosignature. The
// transaction is dropped from the pending store once the node accepted it.
func (s *Service) Cosign(
	ctx context.Context,
	tx domain.Transaction,
	acct domain.Account,
) (domain.CosignatureSignedTransaction, error) {
	req, err := s.cosigner.Create(tx)
	if err != nil {
		return domain.CosignatureSignedTransaction{}, err
	}
	cosig, err := s.cosigner.SignWith(req, acct)
	if err != nil {
		return domain.CosignatureSignedTransaction{}, err
	}
	if _, err := s.AnnounceCosignature(ctx, cosig); err != nil {
		return domain.CosignatureSignedTransaction{}, err
	}
	if s.pending != nil {
		if err := s.pending.DeletePending(cosig.ParentHash); err != nil {
			return cosig, err
		}
	}
	return cosig, nil
}

// CosignPending cosigns every stored pending transaction with acct and
// returns the cosignatures announced. It stops at the first failure.
func (s *Service) CosignPending(ctx context.Context, acct domain.Account) ([]domain.CosignatureSignedTransaction, error) {
	if s.pending == nil {
		return nil, nil
	}
	txs, err := s.pending.ListPending()
	if err != nil {
		return nil, err
	}
	var out []domain.CosignatureSignedTransaction
	for _, tx := range txs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		cosig, err := s.Cosign(ctx, tx, acct)
		if err != nil {
			return out, fmt.Errorf("cosign %s: %w", tx.Hash(), err)
		}
		out = append(out, cosig)
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.TransactionService.
var _ domain.TransactionService = (*Service)(nil)
