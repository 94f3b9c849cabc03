package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/app/gateway/monitor"
	"github.com/vknowable/namada-ping-middleware/app/gateway/types"
	"github.com/vknowable/namada-ping-middleware/pkg/governance"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

var errUpstream = errors.New("upstream unavailable")

// fakeRPC is an in-memory rpc.Client.
type fakeRPC struct {
	counter   uint64
	epoch     rpc.Epoch
	proposals map[uint64]*rpc.Proposal
	results   map[uint64]*rpc.ProposalResult
	failOn    map[uint64]error
	statusErr error

	statusCalls     atomic.Int64
	validatorsCalls atomic.Int64
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		proposals: map[uint64]*rpc.Proposal{},
		results:   map[uint64]*rpc.ProposalResult{},
		failOn:    map[uint64]error{},
	}
}

func (f *fakeRPC) ProposalCounter(ctx context.Context) (uint64, error) { return f.counter, nil }

func (f *fakeRPC) ProposalByID(ctx context.Context, id uint64) (*rpc.Proposal, error) {
	if err := f.failOn[id]; err != nil {
		return nil, err
	}
	return f.proposals[id], nil
}

func (f *fakeRPC) ProposalResult(ctx context.Context, id uint64) (*rpc.ProposalResult, error) {
	return f.results[id], nil
}

func (f *fakeRPC) CurrentEpoch(ctx context.Context) (rpc.Epoch, error) { return f.epoch, nil }

func (f *fakeRPC) GovParams(ctx context.Context) (*rpc.GovParams, error) {
	return &rpc.GovParams{MinProposalFund: decimal.NewFromInt(500_000_000), MinProposalVotingPeriod: 3}, nil
}

func (f *fakeRPC) EpochDuration(ctx context.Context) (*rpc.EpochDuration, error) {
	return &rpc.EpochDuration{MinNumOfBlocks: 4, MinDuration: 100}, nil
}

func (f *fakeRPC) PosParams(ctx context.Context) (*rpc.PosParams, error) {
	return &rpc.PosParams{
		BlockProposerReward: decimal.RequireFromString("0.125"),
		BlockVoteReward:     decimal.RequireFromString("0.1"),
	}, nil
}

func (f *fakeRPC) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	return decimal.NewFromInt(1_000_000_000_000), nil
}

func (f *fakeRPC) Status(ctx context.Context) (*rpc.NodeStatus, error) {
	f.statusCalls.Add(1)
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &rpc.NodeStatus{
		NodeInfo: rpc.NodeInfo{
			ProtocolVersion: rpc.ProtocolVersion{P2P: "8", Block: "11", App: "0"},
			ID:              "b5f0",
			Network:         "internal-devnet",
			Version:         "0.37.2",
			Moniker:         "node0",
		},
		SyncInfo: rpc.SyncInfo{LatestBlockHeight: "4321"},
	}, nil
}

func (f *fakeRPC) LatestBlock(ctx context.Context) (*rpc.BlockResult, error) {
	return f.BlockAtHeight(ctx, 0)
}

func (f *fakeRPC) BlockAtHeight(ctx context.Context, height uint64) (*rpc.BlockResult, error) {
	return &rpc.BlockResult{
		BlockID: json.RawMessage(`{"hash":"AA"}`),
		Block:   json.RawMessage(`{"header":{"chain_id":"internal-devnet"}}`),
	}, nil
}

func (f *fakeRPC) ValidatorsAtHeight(ctx context.Context, height uint64) (*rpc.ValidatorSet, error) {
	f.validatorsCalls.Add(1)
	return &rpc.ValidatorSet{
		BlockHeight: "42",
		Validators: []rpc.Validator{{
			Address:          "AB12",
			PubKey:           rpc.PubKey{Type: "tendermint/PubKeyEd25519", Value: "key="},
			VotingPower:      "1000",
			ProposerPriority: "-5",
		}},
		Count: "1",
		Total: "1",
	}, nil
}

var _ rpc.Client = (*fakeRPC)(nil)

// memCache is an in-memory types.Cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (m *memCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, _ := json.Marshal(v)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = raw
}

func (m *memCache) Health(ctx context.Context) error { return nil }
func (m *memCache) Close() error                     { return nil }

func newTestApp(t *testing.T, chain *fakeRPC) *types.App {
	t.Helper()
	pool := governance.NewPool(4)
	t.Cleanup(pool.StopAndWait)

	return &types.App{
		RPC:     chain,
		Pool:    pool,
		Gov:     governance.NewService(chain, pool, zap.NewNop()),
		Monitor: monitor.New(chain, zap.NewNop(), ""),
		Logger:  zap.NewNop(),
	}
}

func serve(t *testing.T, app *types.App) *httptest.Server {
	t.Helper()
	router, err := NewController(app).NewRouter()
	require.NoError(t, err)

	server := httptest.NewServer(WithCORS(router))
	t.Cleanup(server.Close)
	return server
}

// newTestServer serves a fresh app over chain. A nil cache disables caching.
func newTestServer(t *testing.T, chain *fakeRPC, cache *memCache) *httptest.Server {
	t.Helper()
	app := newTestApp(t, chain)
	if cache != nil {
		app.Cache = cache
	}
	return serve(t, app)
}

func get(t *testing.T, server *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func (f *fakeRPC) withProposal(id uint64, start, end rpc.Epoch) *fakeRPC {
	f.proposals[id] = &rpc.Proposal{
		ID:               id,
		Type:             "default",
		Content:          map[string]string{"title": "Raise slots", "details": "More validators"},
		VotingStartEpoch: start,
		VotingEndEpoch:   end,
	}
	if id >= f.counter {
		f.counter = id + 1
	}
	return f
}
