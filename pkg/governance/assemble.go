package governance

import (
	"strconv"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// AssembleList builds the list payload. Every record carries the same deposit,
// the chain-wide minimum proposal fund.
func AssembleList(records []Record, params rpc.GovParams) cosmos.ProposalsResponse {
	deposit := cosmos.NamAmount(params.MinProposalFund)
	proposals := make([]cosmos.Proposal, 0, len(records))
	for _, r := range records {
		proposals = append(proposals, toCosmos(r, deposit))
	}
	return cosmos.ProposalsResponse{
		Proposals:  proposals,
		Pagination: cosmos.SinglePage(len(proposals)),
	}
}

// AssembleProposal builds the single proposal payload; a nil record yields
// {"proposal": null}.
func AssembleProposal(record *Record, params rpc.GovParams) cosmos.ProposalResponse {
	if record == nil {
		return cosmos.ProposalResponse{}
	}
	p := toCosmos(*record, cosmos.NamAmount(params.MinProposalFund))
	return cosmos.ProposalResponse{Proposal: &p}
}

// AssembleTally builds the tally payload. Unlike the list path, a missing
// record or a missing tally is an error here.
func AssembleTally(bundle *Bundle) (cosmos.TallyResponse, error) {
	if bundle == nil {
		return cosmos.TallyResponse{}, ErrProposalNotFound
	}
	if bundle.Result == nil {
		return cosmos.TallyResponse{}, ErrTallyNotFound
	}
	return cosmos.TallyResponse{Tally: tallyOf(bundle.Result)}, nil
}

func tallyOf(result *rpc.ProposalResult) cosmos.FinalTallyInfo {
	tally := cosmos.EmptyTally()
	if result == nil {
		return tally
	}
	tally.Yes = cosmos.FormatNative(result.TotalYayPower)
	tally.No = cosmos.FormatNative(result.TotalNayPower)
	return tally
}

// toCosmos converts a record. Epochs are reported where Cosmos expects
// timestamps since the chain keeps no wall-clock time for proposals.
func toCosmos(r Record, deposit cosmos.DenomAmount) cosmos.Proposal {
	p := r.Proposal
	start := strconv.FormatUint(uint64(p.VotingStartEpoch), 10)
	return cosmos.Proposal{
		ProposalID: strconv.FormatUint(p.ID, 10),
		Content: cosmos.ProposalContent{
			Type:        p.Type,
			Title:       p.Content["title"],
			Description: p.Content["details"],
		},
		Status:           r.Status,
		FinalTallyResult: tallyOf(r.Result),
		SubmitTime:       cosmos.DefaultTimestamp,
		DepositEndTime:   start,
		TotalDeposit:     []cosmos.DenomAmount{deposit},
		VotingStartTime:  start,
		VotingEndTime:    strconv.FormatUint(uint64(p.VotingEndEpoch), 10),
	}
}
