package cosign

import (
	"encoding/hex"

	"github.com/rs/zerolog"

	"nem2/internal/crypto"
	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
	"nem2/internal/errors"
)

// Service creates and signs cosignatures with a crypto provider.
type Service struct {
	provider crypto.Provider
	log      zerolog.Logger
}

// New returns a cosign service. A nil provider selects crypto.Default.
func New(p crypto.Provider, log zerolog.Logger) *Service {
	if p == nil {
		p = crypto.Default
	}
	return &Service{provider: p, log: log}
}

// Create wraps an announced transaction in a cosignature request.
func (s *Service) Create(tx domain.Transaction) (domain.CosignatureTransaction, error) {
	if tx.IsUnannounced() {
		return domain.CosignatureTransaction{}, errors.State.With("transaction has not been announced")
	}
	if tx.Hash() == "" {
		return domain.CosignatureTransaction{}, errors.State.With("transaction meta carries no hash")
	}
	return domain.CosignatureTransaction{Transaction: tx}, nil
}

// SignWith signs the hash of req's transaction with acct and returns the
// cosignature to announce.
func (s *Service) SignWith(
	req domain.CosignatureTransaction,
	acct domain.Account,
) (domain.CosignatureSignedTransaction, error) {
	tx := req.Transaction
	if tx.Meta == nil {
		return domain.CosignatureSignedTransaction{}, errors.State.With("transaction has not been announced")
	}
	hash := tx.Meta.HashValue()
	if hash == "" {
		return domain.CosignatureSignedTransaction{}, errors.State.With("transaction meta carries no hash")
	}
	msg, err := hex.DecodeString(hash)
	if err != nil {
		return domain.CosignatureSignedTransaction{}, errors.Format.WithCauseAndFormat(err, "transaction hash %q", hash)
	}

	sig := s.provider.Sign(acct.Private, msg)
	s.log.Debug().
		Str("hash", hash).
		Str("signer", crypto.Fingerprint(acct.Public.Slice())).
		Msg("cosigned transaction")

	return domain.CosignatureSignedTransaction{
		ParentHash: hash,
		Signature:  hex.EncodeToString(sig),
		Signer:     hex.EncodeToString(acct.Public.Slice()),
	}, nil
}

// Verify checks that c is a valid signature by its signer over its parent hash.
func (s *Service) Verify(c domain.CosignatureSignedTransaction) error {
	pub, err := domaintypes.ParsePublicKey(c.Signer)
	if err != nil {
		return errors.Format.Wrap(err)
	}
	msg, err := hex.DecodeString(c.ParentHash)
	if err != nil {
		return errors.Format.WithCauseAndFormat(err, "parent hash")
	}
	sig, err := hex.DecodeString(c.Signature)
	if err != nil {
		return errors.Format.WithCauseAndFormat(err, "signature")
	}
	if !s.provider.Verify(pub, msg, sig) {
		return errors.Validation.With("cosignature does not verify")
	}
	return nil
}

// Compile-time assertion that Service implements domain.CosignService.
var _ domain.CosignService = (*Service)(nil)
