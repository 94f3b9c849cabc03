package rpc

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Epoch is the chain's logical time unit.
type Epoch uint64

// Proposal is the native governance proposal record.
type Proposal struct {
	ID               uint64            `json:"id"`
	Type             string            `json:"type"`
	Author           string            `json:"author"`
	Content          map[string]string `json:"content"` // title, abstract, motivation, details, ...
	VotingStartEpoch Epoch             `json:"voting_start_epoch"`
	VotingEndEpoch   Epoch             `json:"voting_end_epoch"`
	ActivationEpoch  Epoch             `json:"activation_epoch"`
}

// TallyOutcome is the native verdict of a closed proposal.
type TallyOutcome string

const (
	TallyPassed   TallyOutcome = "passed"
	TallyRejected TallyOutcome = "rejected"
)

// ProposalResult is the tally of a proposal whose voting window has closed.
type ProposalResult struct {
	Result           TallyOutcome    `json:"result"`
	TallyType        string          `json:"tally_type"`
	TotalVotingPower decimal.Decimal `json:"total_voting_power"`
	TotalYayPower    decimal.Decimal `json:"total_yay_power"`
	TotalNayPower    decimal.Decimal `json:"total_nay_power"`
}

// GovParams are the chain-wide governance parameters. Token amounts are in base units.
type GovParams struct {
	MinProposalFund         decimal.Decimal `json:"min_proposal_fund"`
	MaxProposalCodeSize     uint64          `json:"max_proposal_code_size"`
	MinProposalVotingPeriod uint64          `json:"min_proposal_voting_period"` // epochs
	MaxProposalPeriod       uint64          `json:"max_proposal_period"`        // epochs
	MaxProposalContentSize  uint64          `json:"max_proposal_content_size"`
	MinProposalGraceEpochs  uint64          `json:"min_proposal_grace_epochs"`
}

// EpochDuration bounds how long an epoch lasts.
type EpochDuration struct {
	MinNumOfBlocks uint64 `json:"min_num_of_blocks"`
	MinDuration    uint64 `json:"min_duration"` // seconds
}

// PosParams carries the proof-of-stake reward parameters the gateway exposes.
type PosParams struct {
	MaxValidatorSlots   uint64          `json:"max_validator_slots"`
	BlockProposerReward decimal.Decimal `json:"block_proposer_reward"`
	BlockVoteReward     decimal.Decimal `json:"block_vote_reward"`
	UnbondingLen        uint64          `json:"unbonding_len"`
}

type counterResponse struct {
	Counter uint64 `json:"counter"`
}

type epochResponse struct {
	Epoch Epoch `json:"epoch"`
}

type supplyResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// --- Tendermint RPC

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// RPCError is the JSON-RPC error object returned by Tendermint.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *RPCError) Error() string {
	if e.Data != "" {
		return e.Message + ": " + e.Data
	}
	return e.Message
}

// NodeStatus is the /status result.
type NodeStatus struct {
	NodeInfo NodeInfo `json:"node_info"`
	SyncInfo SyncInfo `json:"sync_info"`
}

type ProtocolVersion struct {
	P2P   string `json:"p2p"`
	Block string `json:"block"`
	App   string `json:"app"`
}

type NodeInfo struct {
	ProtocolVersion ProtocolVersion `json:"protocol_version"`
	ID              string          `json:"id"`
	ListenAddr      string          `json:"listen_addr"`
	Network         string          `json:"network"`
	Version         string          `json:"version"`
	Channels        string          `json:"channels"`
	Moniker         string          `json:"moniker"`
	Other           NodeOtherInfo   `json:"other"`
}

type NodeOtherInfo struct {
	TxIndex    string `json:"tx_index"`
	RPCAddress string `json:"rpc_address"`
}

type SyncInfo struct {
	LatestBlockHash   string    `json:"latest_block_hash"`
	LatestBlockHeight string    `json:"latest_block_height"`
	LatestBlockTime   time.Time `json:"latest_block_time"`
	CatchingUp        bool      `json:"catching_up"`
}

// BlockResult is the /block result. The block itself is passed through untouched.
type BlockResult struct {
	BlockID json.RawMessage `json:"block_id"`
	Block   json.RawMessage `json:"block"`
}

type PubKey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Validator struct {
	Address          string `json:"address"`
	PubKey           PubKey `json:"pub_key"`
	VotingPower      string `json:"voting_power"`
	ProposerPriority string `json:"proposer_priority"`
}

// ValidatorSet is the /validators result.
type ValidatorSet struct {
	BlockHeight string      `json:"block_height"`
	Validators  []Validator `json:"validators"`
	Count       string      `json:"count"`
	Total       string      `json:"total"`
}
