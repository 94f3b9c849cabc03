package governance

import (
	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// Phase is the native lifecycle phase of a proposal at a given epoch.
type Phase int

const (
	PhasePending Phase = iota
	PhaseOngoing
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseOngoing:
		return "ongoing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DerivePhase classifies p against the current epoch.
func DerivePhase(p rpc.Proposal, epoch rpc.Epoch) Phase {
	switch {
	case epoch < p.VotingStartEpoch:
		return PhasePending
	case epoch < p.VotingEndEpoch:
		return PhaseOngoing
	default:
		return PhaseEnded
	}
}

// FailedDefault is the status given to every phase/tally combination without
// a dedicated mapping, most notably an ended proposal with no stored tally.
const FailedDefault = cosmos.StatusFailed

// Translate maps a lifecycle phase and optional tally to a Cosmos status.
func Translate(phase Phase, tally *rpc.ProposalResult) cosmos.ProposalStatus {
	switch phase {
	case PhasePending:
		return cosmos.StatusDepositPeriod
	case PhaseOngoing:
		return cosmos.StatusVotingPeriod
	case PhaseEnded:
		if tally == nil {
			return FailedDefault
		}
		switch tally.Result {
		case rpc.TallyPassed:
			return cosmos.StatusPassed
		case rpc.TallyRejected:
			return cosmos.StatusRejected
		}
	}
	return FailedDefault
}

// Record is a resolved proposal together with its translated status.
type Record struct {
	Bundle
	Status cosmos.ProposalStatus
}

// Classify translates a bundle at the given epoch.
func Classify(b Bundle, epoch rpc.Epoch) Record {
	return Record{
		Bundle: b,
		Status: Translate(DerivePhase(b.Proposal, epoch), b.Result),
	}
}
