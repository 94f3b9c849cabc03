package rpc

import (
	"context"

	"github.com/shopspring/decimal"
)

// Client captures every chain query the gateway performs.
// Lookups that can legitimately miss (proposals, proposal results) return nil with a nil error.
type Client interface {
	ProposalCounter(ctx context.Context) (uint64, error)
	ProposalByID(ctx context.Context, id uint64) (*Proposal, error)
	ProposalResult(ctx context.Context, id uint64) (*ProposalResult, error)
	CurrentEpoch(ctx context.Context) (Epoch, error)
	GovParams(ctx context.Context) (*GovParams, error)
	EpochDuration(ctx context.Context) (*EpochDuration, error)
	PosParams(ctx context.Context) (*PosParams, error)
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
	Status(ctx context.Context) (*NodeStatus, error)
	LatestBlock(ctx context.Context) (*BlockResult, error)
	BlockAtHeight(ctx context.Context, height uint64) (*BlockResult, error)
	ValidatorsAtHeight(ctx context.Context, height uint64) (*ValidatorSet, error)
}

var _ Client = (*HTTPClient)(nil)
