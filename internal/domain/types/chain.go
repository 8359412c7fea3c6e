package types

import (
	"math/big"

	"nem2/internal/dto"
	"nem2/internal/wire"
)

// BlockchainHeight is the response of GET /chain/height.
type BlockchainHeight struct {
	Height uint64
}

// BlockchainHeightSchema maps BlockchainHeight to its wire object.
var BlockchainHeightSchema = dto.NewSchema("BlockchainHeight",
	dto.Required("Height", "height", dto.Uint64(), func(h *BlockchainHeight) *uint64 { return &h.Height }),
)

// ToWire encodes BlockchainHeight with BlockchainHeightSchema.
func (h BlockchainHeight) ToWire() (wire.Map, error) { return BlockchainHeightSchema.ToWire(h) }

// BlockchainHeightFromWire decodes and validates a BlockchainHeight payload.
func BlockchainHeightFromWire(v wire.Value) (BlockchainHeight, error) {
	return BlockchainHeightSchema.FromWire(v)
}

// BlockchainScore is the response of GET /chain/score. The score is a 128-bit
// value split into two 64-bit halves.
type BlockchainScore struct {
	High uint64
	Low  uint64
}

// BlockchainScoreSchema maps BlockchainScore to its wire object.
var BlockchainScoreSchema = dto.NewSchema("BlockchainScore",
	dto.Required("High", "scoreHigh", dto.Uint64(), func(s *BlockchainScore) *uint64 { return &s.High }),
	dto.Required("Low", "scoreLow", dto.Uint64(), func(s *BlockchainScore) *uint64 { return &s.Low }),
)

// Int returns the full 128-bit score.
func (s BlockchainScore) Int() *big.Int {
	v := new(big.Int).SetUint64(s.High)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(s.Low))
}

// ToWire encodes BlockchainScore with BlockchainScoreSchema.
func (s BlockchainScore) ToWire() (wire.Map, error) { return BlockchainScoreSchema.ToWire(s) }

// BlockchainScoreFromWire decodes and validates a BlockchainScore payload.
func BlockchainScoreFromWire(v wire.Value) (BlockchainScore, error) {
	return BlockchainScoreSchema.FromWire(v)
}

// CommunicationTimestamps are node clock readings in milliseconds since the
// network epoch.
type CommunicationTimestamps struct {
	SendTimestamp    uint64
	ReceiveTimestamp uint64
}

// CommunicationTimestampsSchema maps CommunicationTimestamps to its wire object.
var CommunicationTimestampsSchema = dto.NewSchema("CommunicationTimestamps",
	dto.Required("SendTimestamp", "sendTimestamp", dto.Uint64(), func(c *CommunicationTimestamps) *uint64 { return &c.SendTimestamp }),
	dto.Required("ReceiveTimestamp", "receiveTimestamp", dto.Uint64(), func(c *CommunicationTimestamps) *uint64 { return &c.ReceiveTimestamp }),
)

// NodeTime is the response of GET /node/time.
type NodeTime struct {
	CommunicationTimestamps CommunicationTimestamps
}

// NodeTimeSchema maps NodeTime to its wire object.
var NodeTimeSchema = dto.NewSchema("NodeTime",
	dto.Required("CommunicationTimestamps", "communicationTimestamps", dto.Codec[CommunicationTimestamps](CommunicationTimestampsSchema),
		func(n *NodeTime) *CommunicationTimestamps { return &n.CommunicationTimestamps }),
)

// ToWire encodes NodeTime with NodeTimeSchema.
func (n NodeTime) ToWire() (wire.Map, error) { return NodeTimeSchema.ToWire(n) }

// NodeTimeFromWire decodes and validates a NodeTime payload.
func NodeTimeFromWire(v wire.Value) (NodeTime, error) { return NodeTimeSchema.FromWire(v) }
