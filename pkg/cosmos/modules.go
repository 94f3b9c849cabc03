package cosmos

import "github.com/shopspring/decimal"

var decimalZero = decimal.Zero

// bank

type SupplyResponse struct {
	Supply     []DenomAmount   `json:"supply"`
	Pagination *PaginationInfo `json:"pagination"`
}

type SupplyDenomResponse struct {
	Amount DenomAmount `json:"amount"`
}

// mint

type InflationResponse struct {
	Inflation string `json:"inflation"`
}

// distribution

type CommunityPoolResponse struct {
	Pool []DenomAmount `json:"pool"`
}

type DistributionParams struct {
	CommunityTax        string `json:"community_tax"`
	BaseProposerReward  string `json:"base_proposer_reward"`
	BonusProposerReward string `json:"bonus_proposer_reward"`
	WithdrawAddrEnabled bool   `json:"withdraw_addr_enabled"`
}

type DistributionParamsResponse struct {
	Params DistributionParams `json:"params"`
}

// slashing

type SlashingParams struct {
	SignedBlocksWindow      string `json:"signed_blocks_window"`
	MinSignedPerWindow      string `json:"min_signed_per_window"`
	DowntimeJailDuration    string `json:"downtime_jail_duration"`
	SlashFractionDoubleSign string `json:"slash_fraction_double_sign"`
	SlashFractionDowntime   string `json:"slash_fraction_downtime"`
}

type SlashingParamsResponse struct {
	Params SlashingParams `json:"params"`
}

type SigningInfo struct {
	Address             string `json:"address"`
	StartHeight         string `json:"start_height"`
	IndexOffset         string `json:"index_offset"`
	JailedUntil         string `json:"jailed_until"`
	Tombstoned          bool   `json:"tombstoned"`
	MissedBlocksCounter string `json:"missed_blocks_counter"`
}

type SigningInfosResponse struct {
	Info       []SigningInfo   `json:"info"`
	Pagination *PaginationInfo `json:"pagination"`
}

// staking

type StakingPool struct {
	NotBondedTokens string `json:"not_bonded_tokens"`
	BondedTokens    string `json:"bonded_tokens"`
}

type StakingPoolResponse struct {
	Pool StakingPool `json:"pool"`
}

type StakingParamsResponse struct {
	UnbondingTime             string `json:"unbonding_time"`
	MaxValidators             uint32 `json:"max_validators"`
	MaxEntries                uint32 `json:"max_entries"`
	HistoricalEntries         uint32 `json:"historical_entries"`
	BondDenom                 string `json:"bond_denom"`
	ValidatorBondFactor       string `json:"validator_bond_factor"`
	GlobalLiquidStakingCap    string `json:"global_liquid_staking_cap"`
	ValidatorLiquidStakingCap string `json:"validator_liquid_staking_cap"`
}

type ConsensusKey struct {
	Type string `json:"@type"`
	Key  string `json:"key"`
}

type ValidatorDescription struct {
	Moniker         string `json:"moniker"`
	Identity        string `json:"identity"`
	Website         string `json:"website"`
	SecurityContact string `json:"security_contact"`
	Details         string `json:"details"`
}

type CommissionRates struct {
	Rate          string `json:"rate"`
	MaxRate       string `json:"max_rate"`
	MaxChangeRate string `json:"max_change_rate"`
}

type Commission struct {
	CommissionRates CommissionRates `json:"commission_rates"`
	UpdateTime      string          `json:"update_time"`
}

type StakingValidator struct {
	OperatorAddress         string               `json:"operator_address"`
	ConsensusPubkey         ConsensusKey         `json:"consensus_pubkey"`
	Jailed                  bool                 `json:"jailed"`
	Status                  string               `json:"status"`
	Tokens                  string               `json:"tokens"`
	DelegatorShares         string               `json:"delegator_shares"`
	Description             ValidatorDescription `json:"description"`
	UnbondingHeight         string               `json:"unbonding_height"`
	UnbondingTime           string               `json:"unbonding_time"`
	Commission              Commission           `json:"commission"`
	MinSelfDelegation       string               `json:"min_self_delegation"`
	UnbondingOnHoldRefCount string               `json:"unbonding_on_hold_ref_count"`
	UnbondingIDs            []string             `json:"unbonding_ids"`
	ValidatorBondShares     string               `json:"validator_bond_shares"`
	LiquidShares            string               `json:"liquid_shares"`
}

type StakingValidatorsResponse struct {
	Validators []StakingValidator `json:"validators"`
	Pagination *PaginationInfo    `json:"pagination"`
}
