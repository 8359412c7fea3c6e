package types

import (
	"nem2/internal/dto"
	"nem2/internal/wire"
)

// NamespaceName is one entry of the POST /namespace/names response.
type NamespaceName struct {
	NamespaceID NamespaceID
	Name        string
	ParentID    *NamespaceID
}

// NamespaceNameSchema maps NamespaceName. Root namespaces omit "parentId".
var NamespaceNameSchema = dto.NewSchema("NamespaceName",
	dto.Required("NamespaceID", "namespaceId", dto.ID[NamespaceID]("NamespaceId"), func(n *NamespaceName) *NamespaceID { return &n.NamespaceID }),
	dto.Required("Name", "name", dto.String(), func(n *NamespaceName) *string { return &n.Name }),
	dto.Optional("ParentID", "parentId", dto.ID[NamespaceID]("NamespaceId"), func(n *NamespaceName) **NamespaceID { return &n.ParentID }),
)

// ToWire encodes NamespaceName with NamespaceNameSchema.
func (n NamespaceName) ToWire() (wire.Map, error) { return NamespaceNameSchema.ToWire(n) }

// NamespaceNameFromWire decodes and validates a NamespaceName payload.
func NamespaceNameFromWire(v wire.Value) (NamespaceName, error) {
	return NamespaceNameSchema.FromWire(v)
}

// NamespaceNamesFromWire decodes the list the node returns for a names query.
func NamespaceNamesFromWire(v wire.Value) ([]NamespaceName, error) {
	return dto.List[NamespaceName](NamespaceNameSchema).Decode(v)
}
