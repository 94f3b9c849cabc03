package governance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"

	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

var errTransport = errors.New("connection refused")

// fakeChain is an in-memory ChainQuerier. Maps are only read once a test starts.
type fakeChain struct {
	counter   uint64
	epoch     rpc.Epoch
	params    rpc.GovParams
	duration  rpc.EpochDuration
	proposals map[uint64]*rpc.Proposal
	results   map[uint64]*rpc.ProposalResult
	failOn    map[uint64]error
	// block, when set, is called before each proposal lookup.
	block func(ctx context.Context, id uint64) error

	proposalCalls atomic.Int64
	paramsCalls   atomic.Int64
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		params: rpc.GovParams{
			MinProposalFund:         decimal.NewFromInt(500_000_000),
			MinProposalVotingPeriod: 3,
		},
		duration:  rpc.EpochDuration{MinNumOfBlocks: 10, MinDuration: 60},
		proposals: map[uint64]*rpc.Proposal{},
		results:   map[uint64]*rpc.ProposalResult{},
		failOn:    map[uint64]error{},
	}
}

func (f *fakeChain) withProposal(id uint64, start, end rpc.Epoch) *fakeChain {
	f.proposals[id] = &rpc.Proposal{
		ID:               id,
		Type:             "default",
		Content:          map[string]string{"title": "Proposal", "details": "Details"},
		VotingStartEpoch: start,
		VotingEndEpoch:   end,
	}
	if id >= f.counter {
		f.counter = id + 1
	}
	return f
}

func (f *fakeChain) withResult(id uint64, outcome rpc.TallyOutcome, yay, nay int64) *fakeChain {
	f.results[id] = &rpc.ProposalResult{
		Result:        outcome,
		TotalYayPower: decimal.NewFromInt(yay),
		TotalNayPower: decimal.NewFromInt(nay),
	}
	return f
}

func (f *fakeChain) ProposalCounter(ctx context.Context) (uint64, error) {
	return f.counter, ctx.Err()
}

func (f *fakeChain) ProposalByID(ctx context.Context, id uint64) (*rpc.Proposal, error) {
	f.proposalCalls.Add(1)
	if f.block != nil {
		if err := f.block(ctx, id); err != nil {
			return nil, err
		}
	}
	if err := f.failOn[id]; err != nil {
		return nil, err
	}
	p, ok := f.proposals[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeChain) ProposalResult(ctx context.Context, id uint64) (*rpc.ProposalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, ok := f.results[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeChain) CurrentEpoch(ctx context.Context) (rpc.Epoch, error) {
	return f.epoch, ctx.Err()
}

func (f *fakeChain) GovParams(ctx context.Context) (*rpc.GovParams, error) {
	f.paramsCalls.Add(1)
	p := f.params
	return &p, ctx.Err()
}

func (f *fakeChain) EpochDuration(ctx context.Context) (*rpc.EpochDuration, error) {
	d := f.duration
	return &d, ctx.Err()
}

func newTestPool(t *testing.T, size int) pond.Pool {
	t.Helper()
	pool := NewPool(size)
	t.Cleanup(pool.StopAndWait)
	return pool
}
