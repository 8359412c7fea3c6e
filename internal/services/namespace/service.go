package namespace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"nem2/internal/domain"
	domaintypes "nem2/internal/domain/types"
	"nem2/internal/identifier"
	"nem2/internal/wire"
)

// Service resolves namespaces locally through the deriver and remotely
// through the node.
type Service struct {
	transport domain.Transport
	deriver   *identifier.Deriver
	log       zerolog.Logger
}

// New returns a namespace service. A nil deriver uses the default provider.
func New(transport domain.Transport, deriver *identifier.Deriver, log zerolog.Logger) *Service {
	if deriver == nil {
		deriver = identifier.New(nil)
	}
	return &Service{transport: transport, deriver: deriver, log: log}
}

// ResolveName returns the id of the namespace name without asking the node.
func (s *Service) ResolveName(name string) (domain.NamespaceID, error) {
	id, err := s.deriver.NamespaceID(name)
	if err != nil {
		return 0, err
	}
	return domain.NamespaceID(id), nil
}

// ResolveMosaic returns the id of a mosaic given as "namespace:mosaic".
func (s *Service) ResolveMosaic(fullName string) (domain.MosaicID, error) {
	id, err := s.deriver.MosaicID(fullName)
	if err != nil {
		return 0, err
	}
	return domain.MosaicID(id), nil
}

// GetNamespaceNames asks the node for the names of ids.
func (s *Service) GetNamespaceNames(
	ctx context.Context,
	ids []domain.NamespaceID,
) ([]domain.NamespaceName, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	hexIDs := make(wire.List, len(ids))
	for i, id := range ids {
		hexIDs[i] = id.Hex()
	}
	v, err := s.transport.Do(ctx, http.MethodPost, "/namespace/names", wire.Map{"namespaceIds": hexIDs})
	if err != nil {
		return nil, err
	}
	names, err := domaintypes.NamespaceNamesFromWire(v)
	if err != nil {
		return nil, fmt.Errorf("namespace names: %w", err)
	}
	s.log.Debug().Int("requested", len(ids)).Int("resolved", len(names)).Msg("namespace names")
	return names, nil
}

// FullName joins the names the node returned for a namespace and its
// ancestors into the dotted name of leaf.
func FullName(names []domain.NamespaceName, leaf domain.NamespaceID) (string, error) {
	byID := make(map[domain.NamespaceID]domain.NamespaceName, len(names))
	for _, n := range names {
		byID[n.NamespaceID] = n
	}
	var full string
	id := leaf
	for depth := 0; depth < identifier.MaxDepth; depth++ {
		n, ok := byID[id]
		if !ok {
			return "", fmt.Errorf("namespace %s: name not in response", id)
		}
		if full == "" {
			full = n.Name
		} else {
			full = n.Name + "." + full
		}
		if n.ParentID == nil {
			return full, nil
		}
		id = *n.ParentID
	}
	return "", fmt.Errorf("namespace %s: deeper than %d levels", leaf, identifier.MaxDepth)
}

// Compile-time assertion that Service implements domain.NamespaceService.
var _ domain.NamespaceService = (*Service)(nil)
