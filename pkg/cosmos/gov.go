package cosmos

// ProposalContent is the legacy v1beta1 proposal content. Recipient and Amount
// are only set for community spend proposals, which the chain does not have.
type ProposalContent struct {
	Type        string        `json:"@type"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Recipient   *string       `json:"recipient"`
	Amount      []DenomAmount `json:"amount"`
}

type FinalTallyInfo struct {
	Yes        string `json:"yes"`
	Abstain    string `json:"abstain"`
	No         string `json:"no"`
	NoWithVeto string `json:"no_with_veto"`
}

// EmptyTally is a tally with every option at zero.
func EmptyTally() FinalTallyInfo {
	return FinalTallyInfo{Yes: "0", Abstain: "0", No: "0", NoWithVeto: "0"}
}

type Proposal struct {
	ProposalID       string          `json:"proposal_id"`
	Content          ProposalContent `json:"content"`
	Status           ProposalStatus  `json:"status"`
	FinalTallyResult FinalTallyInfo  `json:"final_tally_result"`
	SubmitTime       string          `json:"submit_time"`
	DepositEndTime   string          `json:"deposit_end_time"`
	TotalDeposit     []DenomAmount   `json:"total_deposit"`
	VotingStartTime  string          `json:"voting_start_time"`
	VotingEndTime    string          `json:"voting_end_time"`
}

type ProposalsResponse struct {
	Proposals  []Proposal      `json:"proposals"`
	Pagination *PaginationInfo `json:"pagination"`
}

type ProposalResponse struct {
	Proposal *Proposal `json:"proposal"`
}

type TallyResponse struct {
	Tally FinalTallyInfo `json:"tally"`
}

type VotingParams struct {
	VotingPeriod SuffixedDur `json:"voting_period"`
}

type DepositParams struct {
	MinDeposit       []DenomAmount `json:"min_deposit"`
	MaxDepositPeriod string        `json:"max_deposit_period"`
}

type TallyParams struct {
	Quorum        string `json:"quorum"`
	Threshold     string `json:"threshold"`
	VetoThreshold string `json:"veto_threshold"`
}

// ParamsGovResponse always carries all three parameter groups; the endpoint
// that was queried decides which one is populated.
type ParamsGovResponse struct {
	VotingParams  VotingParams  `json:"voting_params"`
	DepositParams DepositParams `json:"deposit_params"`
	TallyParams   TallyParams   `json:"tally_params"`
}

// DefaultParamsGov returns zeroed parameter groups.
func DefaultParamsGov() ParamsGovResponse {
	zero := FormatDec(decimalZero)
	return ParamsGovResponse{
		DepositParams: DepositParams{MinDeposit: []DenomAmount{}, MaxDepositPeriod: "0s"},
		TallyParams:   TallyParams{Quorum: zero, Threshold: zero, VetoThreshold: zero},
	}
}
