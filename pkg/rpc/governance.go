package rpc

import (
	"context"
	"fmt"
)

// ProposalCounter returns the exclusive upper bound of the proposal id space.
func (c *HTTPClient) ProposalCounter(ctx context.Context) (uint64, error) {
	var resp counterResponse
	if err := c.get(ctx, govCounterPath, nil, &resp); err != nil {
		return 0, fmt.Errorf("fetch proposal counter: %w", err)
	}
	return resp.Counter, nil
}

// ProposalByID returns the native proposal record, or nil when the id has no record.
// Both a 404 and a JSON null body mean "no record".
func (c *HTTPClient) ProposalByID(ctx context.Context, id uint64) (*Proposal, error) {
	var p *Proposal
	if err := c.get(ctx, proposalPath(id), nil, &p); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch proposal %d: %w", id, err)
	}
	return p, nil
}

// ProposalResult returns the tally of a closed proposal, or nil when none is stored.
func (c *HTTPClient) ProposalResult(ctx context.Context, id uint64) (*ProposalResult, error) {
	var r *ProposalResult
	if err := c.get(ctx, proposalResultPath(id), nil, &r); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch proposal result %d: %w", id, err)
	}
	return r, nil
}

// GovParams returns the current governance parameters.
func (c *HTTPClient) GovParams(ctx context.Context) (*GovParams, error) {
	var params GovParams
	if err := c.get(ctx, govParamsPath, nil, &params); err != nil {
		return nil, fmt.Errorf("fetch governance params: %w", err)
	}
	return &params, nil
}
