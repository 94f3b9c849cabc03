package governance

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// ChainQuerier is the subset of rpc.Client the governance engine reads from.
type ChainQuerier interface {
	ProposalCounter(ctx context.Context) (uint64, error)
	ProposalByID(ctx context.Context, id uint64) (*rpc.Proposal, error)
	ProposalResult(ctx context.Context, id uint64) (*rpc.ProposalResult, error)
	CurrentEpoch(ctx context.Context) (rpc.Epoch, error)
	GovParams(ctx context.Context) (*rpc.GovParams, error)
	EpochDuration(ctx context.Context) (*rpc.EpochDuration, error)
}

// Bundle is a resolved proposal record and, when one is stored, its tally.
type Bundle struct {
	Proposal rpc.Proposal
	Result   *rpc.ProposalResult
}

// Fetcher resolves proposal ids concurrently on a shared worker pool.
type Fetcher struct {
	client ChainQuerier
	pool   pond.Pool
}

func NewFetcher(client ChainQuerier, pool pond.Pool) *Fetcher {
	return &Fetcher{client: client, pool: pool}
}

// FetchAll resolves every id and returns the bundles in input order.
// Ids without a record are nil in the output. The first failing id cancels
// the remaining fetches and its error is returned alone; no partial results
// are ever returned.
func (f *Fetcher) FetchAll(ctx context.Context, ids []uint64) ([]*Bundle, error) {
	out := make([]*Bundle, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	group := f.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	for i, id := range ids {
		group.SubmitErr(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			bundle, err := f.fetchOne(groupCtx, id)
			if err != nil {
				fail(err)
				return err
			}
			out[i] = bundle
			return nil
		})
	}

	waitErr := group.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if waitErr != nil {
		return nil, waitErr
	}
	return out, nil
}

// fetchOne reads the record for id and, if present, its tally.
func (f *Fetcher) fetchOne(ctx context.Context, id uint64) (*Bundle, error) {
	proposal, err := f.client.ProposalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, nil
	}

	result, err := f.client.ProposalResult(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Bundle{Proposal: *proposal, Result: result}, nil
}

// Parallelism sizes the fetch pool: four workers per CPU, capped at 64,
// unless override is positive.
func Parallelism(override int) int {
	if override > 0 {
		if override > 512 {
			return 512
		}
		return override
	}

	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	parallelism := n * 4
	if parallelism > 64 {
		parallelism = 64
	}
	return parallelism
}

// NewPool builds the shared worker pool used for proposal fetches.
func NewPool(parallelism int) pond.Pool {
	if parallelism < 1 {
		parallelism = 1
	}
	return pond.NewPool(parallelism, pond.WithQueueSize(parallelism*256))
}

func wrapFetch(what string, err error) error {
	return fmt.Errorf("fetch %s: %w", what, err)
}
