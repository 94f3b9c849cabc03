package governance

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// Service answers the Cosmos gov queries. It keeps no state between calls:
// every request reads the counter, epoch and parameters afresh.
type Service struct {
	client  ChainQuerier
	pool    pond.Pool
	fetcher *Fetcher
	logger  *zap.Logger
}

func NewService(client ChainQuerier, pool pond.Pool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		pool:    pool,
		fetcher: NewFetcher(client, pool),
		logger:  logger,
	}
}

// snapshot is the chain state shared by every record of one request.
type snapshot struct {
	counter uint64
	epoch   rpc.Epoch
	params  *rpc.GovParams
}

// ListProposals resolves every proposal below the counter, translates and
// filters them. Missing records are skipped; any fetch failure fails the call.
func (s *Service) ListProposals(ctx context.Context, status *cosmos.ProposalStatus) (*cosmos.ProposalsResponse, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ids := Enumerate(snap.counter)
	bundles, err := s.fetcher.FetchAll(ctx, ids)
	if err != nil {
		return nil, wrapFetch("proposals", err)
	}

	records := make([]Record, 0, len(bundles))
	for _, b := range bundles {
		if b == nil {
			continue
		}
		records = append(records, Classify(*b, snap.epoch))
	}
	filtered := Filter(records, status)

	s.logger.Debug("listed proposals",
		zap.Uint64("counter", snap.counter),
		zap.Uint64("epoch", uint64(snap.epoch)),
		zap.Int("resolved", len(records)),
		zap.Int("returned", len(filtered)),
	)

	resp := AssembleList(filtered, *snap.params)
	return &resp, nil
}

// GetProposal returns a single proposal, or a null proposal when the id has no record.
func (s *Service) GetProposal(ctx context.Context, id uint64) (*cosmos.ProposalResponse, error) {
	var (
		epoch     rpc.Epoch
		params    *rpc.GovParams
		bundle    *Bundle
		epochErr  error
		paramsErr error
		bundleErr error
	)

	group := s.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(func() {
		epoch, epochErr = s.client.CurrentEpoch(groupCtx)
	})
	group.Submit(func() {
		params, paramsErr = s.client.GovParams(groupCtx)
	})
	group.Submit(func() {
		bundle, bundleErr = s.fetcher.fetchOne(groupCtx, id)
	})
	waitErr := group.Wait()

	switch {
	case epochErr != nil:
		return nil, epochErr
	case paramsErr != nil:
		return nil, paramsErr
	case bundleErr != nil:
		return nil, wrapFetch("proposal", bundleErr)
	case waitErr != nil:
		return nil, s.groupErr(ctx, waitErr)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}

	if bundle == nil {
		resp := AssembleProposal(nil, *params)
		return &resp, nil
	}
	record := Classify(*bundle, epoch)
	resp := AssembleProposal(&record, *params)
	return &resp, nil
}

// GetProposalTally returns the stored tally of a proposal. Absence of either
// the record or the tally is reported as an ErrNotFound-class error.
func (s *Service) GetProposalTally(ctx context.Context, id uint64) (*cosmos.TallyResponse, error) {
	bundle, err := s.fetcher.fetchOne(ctx, id)
	if err != nil {
		return nil, wrapFetch("proposal tally", err)
	}
	resp, err := AssembleTally(bundle)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DepositParams answers /params/deposit.
func (s *Service) DepositParams(ctx context.Context) (*cosmos.ParamsGovResponse, error) {
	params, err := s.client.GovParams(ctx)
	if err != nil {
		return nil, err
	}
	resp := DepositParams(*params)
	return &resp, nil
}

// VotingParams answers /params/voting.
func (s *Service) VotingParams(ctx context.Context) (*cosmos.ParamsGovResponse, error) {
	var (
		params    *rpc.GovParams
		dur       *rpc.EpochDuration
		paramsErr error
		durErr    error
	)

	group := s.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(func() {
		params, paramsErr = s.client.GovParams(groupCtx)
	})
	group.Submit(func() {
		dur, durErr = s.client.EpochDuration(groupCtx)
	})
	waitErr := group.Wait()

	switch {
	case paramsErr != nil:
		return nil, paramsErr
	case durErr != nil:
		return nil, durErr
	case waitErr != nil:
		return nil, s.groupErr(ctx, waitErr)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}

	resp := VotingParams(*params, *dur)
	return &resp, nil
}

// TallyParams answers /params/tallying.
func (s *Service) TallyParams() *cosmos.ParamsGovResponse {
	resp := TallyParams()
	return &resp
}

// snapshot reads the proposal counter, epoch and governance parameters in parallel.
func (s *Service) snapshot(ctx context.Context) (*snapshot, error) {
	var (
		snap       snapshot
		counterErr error
		epochErr   error
		paramsErr  error
	)

	group := s.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(func() {
		snap.counter, counterErr = s.client.ProposalCounter(groupCtx)
	})
	group.Submit(func() {
		snap.epoch, epochErr = s.client.CurrentEpoch(groupCtx)
	})
	group.Submit(func() {
		snap.params, paramsErr = s.client.GovParams(groupCtx)
	})
	waitErr := group.Wait()

	switch {
	case counterErr != nil:
		return nil, counterErr
	case epochErr != nil:
		return nil, epochErr
	case paramsErr != nil:
		return nil, paramsErr
	case waitErr != nil:
		return nil, s.groupErr(ctx, waitErr)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}
	return &snap, nil
}

// groupErr reports why a group of plain tasks stopped early. The request
// context's own error wins over pond's group errors.
func (s *Service) groupErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		s.logger.Warn("parallel fetch encountered error", zap.Error(err))
	}
	return err
}
