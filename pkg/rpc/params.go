package rpc

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrentEpoch returns the epoch of the last committed block.
func (c *HTTPClient) CurrentEpoch(ctx context.Context) (Epoch, error) {
	var resp epochResponse
	if err := c.get(ctx, epochPath, nil, &resp); err != nil {
		return 0, fmt.Errorf("fetch epoch: %w", err)
	}
	return resp.Epoch, nil
}

// EpochDuration returns the protocol's epoch duration parameters.
func (c *HTTPClient) EpochDuration(ctx context.Context) (*EpochDuration, error) {
	var d EpochDuration
	if err := c.get(ctx, epochDurationPath, nil, &d); err != nil {
		return nil, fmt.Errorf("fetch epoch duration: %w", err)
	}
	return &d, nil
}

// PosParams returns the proof-of-stake parameters.
func (c *HTTPClient) PosParams(ctx context.Context) (*PosParams, error) {
	var p PosParams
	if err := c.get(ctx, posParamsPath, nil, &p); err != nil {
		return nil, fmt.Errorf("fetch pos params: %w", err)
	}
	return &p, nil
}

// TotalSupply returns the native token's total supply in base units.
func (c *HTTPClient) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	var resp supplyResponse
	if err := c.get(ctx, totalSupplyPath, nil, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("fetch total supply: %w", err)
	}
	return resp.Amount, nil
}
