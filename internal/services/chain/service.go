package chain

import (
	"context"
	"fmt"
	"net/http"

	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
)

// Service reads chain state from the node.
type Service struct {
	transport domain.Transport
}

// New returns a chain service.
func New(transport domain.Transport) *Service { return &Service{transport: transport} }

// GetBlockchainHeight returns the height of the node's chain.
func (s *Service) GetBlockchainHeight(ctx context.Context) (domain.BlockchainHeight, error) {
	v, err := s.transport.Do(ctx, http.MethodGet, "/chain/height", nil)
	if err != nil {
		return domain.BlockchainHeight{}, err
	}
	h, err := domaintypes.BlockchainHeightFromWire(v)
	if err != nil {
		return domain.BlockchainHeight{}, fmt.Errorf("chain height: %w", err)
	}
	return h, nil
}

// GetBlockchainScore returns the score of the node's chain.
func (s *Service) GetBlockchainScore(ctx context.Context) (domain.BlockchainScore, error) {
	v, err := s.transport.Do(ctx, http.MethodGet, "/chain/score", nil)
	if err != nil {
		return domain.BlockchainScore{}, err
	}
	sc, err := domaintypes.BlockchainScoreFromWire(v)
	if err != nil {
		return domain.BlockchainScore{}, fmt.Errorf("chain score: %w", err)
	}
	return sc, nil
}

// GetNodeTime returns the node's clock.
func (s *Service) GetNodeTime(ctx context.Context) (domain.NodeTime, error) {
	v, err := s.transport.Do(ctx, http.MethodGet, "/node/time", nil)
	if err != nil {
		return domain.NodeTime{}, err
	}
	t, err := domaintypes.NodeTimeFromWire(v)
	if err != nil {
		return domain.NodeTime{}, fmt.Errorf("node time: %w", err)
	}
	return t, nil
}

var _ domain.ChainService = (*Service)(nil)
