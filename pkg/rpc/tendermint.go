package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// callTendermint performs a URI-style Tendermint RPC call and unwraps the JSON-RPC envelope.
func (c *HTTPClient) callTendermint(ctx context.Context, path string, query url.Values, out any) error {
	var env rpcEnvelope
	if err := c.get(ctx, path, query, &env); err != nil {
		return err
	}
	if env.Error != nil {
		return env.Error
	}
	if len(env.Result) == 0 {
		return fmt.Errorf("empty result from %s", path)
	}
	return json.Unmarshal(env.Result, out)
}

// Status returns the node's identity and sync state.
func (c *HTTPClient) Status(ctx context.Context) (*NodeStatus, error) {
	var st NodeStatus
	if err := c.callTendermint(ctx, statusPath, nil, &st); err != nil {
		return nil, fmt.Errorf("fetch node status: %w", err)
	}
	return &st, nil
}

// LatestBlock returns the most recent committed block.
func (c *HTTPClient) LatestBlock(ctx context.Context) (*BlockResult, error) {
	return c.BlockAtHeight(ctx, 0)
}

// BlockAtHeight returns the block at height (0 = latest).
func (c *HTTPClient) BlockAtHeight(ctx context.Context, height uint64) (*BlockResult, error) {
	var q url.Values
	if height > 0 {
		q = url.Values{}
		q.Set("height", strconv.FormatUint(height, 10))
	}
	var b BlockResult
	if err := c.callTendermint(ctx, blockPath, q, &b); err != nil {
		return nil, fmt.Errorf("fetch block at height %d: %w", height, err)
	}
	return &b, nil
}

// ValidatorsAtHeight returns the consensus validator set at height (0 = latest).
// Only the first page of 100 validators is requested.
func (c *HTTPClient) ValidatorsAtHeight(ctx context.Context, height uint64) (*ValidatorSet, error) {
	q := url.Values{}
	q.Set("per_page", "100")
	if height > 0 {
		q.Set("height", strconv.FormatUint(height, 10))
	}
	var vs ValidatorSet
	if err := c.callTendermint(ctx, validatorsPath, q, &vs); err != nil {
		return nil, fmt.Errorf("fetch validators at height %d: %w", height, err)
	}
	return &vs, nil
}
