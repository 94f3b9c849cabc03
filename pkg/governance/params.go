package governance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

var (
	tallyQuorum        = decimal.Zero
	tallyThreshold     = decimal.RequireFromString("0.67")
	tallyVetoThreshold = decimal.NewFromInt(1)
)

// DepositParams reports the minimum proposal fund as the minimum deposit.
// The chain has no deposit period.
func DepositParams(params rpc.GovParams) cosmos.ParamsGovResponse {
	resp := cosmos.DefaultParamsGov()
	resp.DepositParams.MinDeposit = []cosmos.DenomAmount{cosmos.NamAmount(params.MinProposalFund)}
	return resp
}

// VotingParams reports the shortest voting period the chain allows: the
// minimum number of voting epochs times the minimum epoch duration.
func VotingParams(params rpc.GovParams, epoch rpc.EpochDuration) cosmos.ParamsGovResponse {
	resp := cosmos.DefaultParamsGov()
	period := time.Duration(epoch.MinDuration) * time.Second * time.Duration(params.MinProposalVotingPeriod)
	resp.VotingParams.VotingPeriod = cosmos.SuffixedDur(period)
	return resp
}

// TallyParams are fixed; quorum and thresholds depend on the proposal type on chain.
func TallyParams() cosmos.ParamsGovResponse {
	resp := cosmos.DefaultParamsGov()
	resp.TallyParams = cosmos.TallyParams{
		Quorum:        cosmos.FormatDec(tallyQuorum),
		Threshold:     cosmos.FormatDec(tallyThreshold),
		VetoThreshold: cosmos.FormatDec(tallyVetoThreshold),
	}
	return resp
}
