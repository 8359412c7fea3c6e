package types

import (
	"nem2/internal/dto"
	"nem2/internal/wire"
)

// EmptyMetadata is the meta object of responses that carry none. Its schema
// is closed, so a node that starts sending fields is noticed.
type EmptyMetadata struct{}

// EmptyMetadataSchema maps EmptyMetadata to its wire object.
var EmptyMetadataSchema = dto.NewSchema[EmptyMetadata]("EmptyMetadata").Closed()

// ToWire encodes EmptyMetadata with EmptyMetadataSchema.
func (m EmptyMetadata) ToWire() (wire.Map, error) { return EmptyMetadataSchema.ToWire(m) }

// EmptyMetadataFromWire decodes and validates an EmptyMetadata payload.
func EmptyMetadataFromWire(v wire.Value) (EmptyMetadata, error) {
	return EmptyMetadataSchema.FromWire(v)
}
