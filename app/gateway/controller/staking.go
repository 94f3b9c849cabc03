package controller

import (
	"net/http"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
)

var (
	stakingPool = cosmos.StakingPoolResponse{
		Pool: cosmos.StakingPool{NotBondedTokens: "1000", BondedTokens: "100"},
	}

	stakingParams = cosmos.StakingParamsResponse{
		UnbondingTime:             "100s",
		MaxValidators:             100,
		MaxEntries:                7,
		HistoricalEntries:         1000,
		BondDenom:                 cosmos.NativeDenom,
		ValidatorBondFactor:       "100",
		GlobalLiquidStakingCap:    "0.25000",
		ValidatorLiquidStakingCap: "1.000",
	}

	// TODO: build this from the consensus validator set once the chain exposes per-validator metadata.
	stakingValidators = []cosmos.StakingValidator{{
		OperatorAddress: "tnam2323.",
		ConsensusPubkey: cosmos.ConsensusKey{Type: "placeholder", Key: "placeholder"},
		Jailed:          false,
		Status:          "BOND_STATUS_BONDED",
		Tokens:          "1000",
		DelegatorShares: "10000",
		Description: cosmos.ValidatorDescription{
			Moniker: "TestVal",
			Details: "A test validator",
		},
		UnbondingHeight: "50000",
		UnbondingTime:   "2023-09-30T06:17:37.572905825Z",
		Commission: cosmos.Commission{
			CommissionRates: cosmos.CommissionRates{
				Rate:          "0.05000",
				MaxRate:       "0.20000",
				MaxChangeRate: "0.010000",
			},
			UpdateTime: "2023-09-30T06:17:37.572905825Z",
		},
		MinSelfDelegation:       "1",
		UnbondingOnHoldRefCount: "0",
		UnbondingIDs:            []string{},
		ValidatorBondShares:     "500000",
		LiquidShares:            "4141341414.000000",
	}}
)

func (c *Controller) HandleStakingPool(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stakingPool)
}

func (c *Controller) HandleStakingParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stakingParams)
}

func (c *Controller) HandleStakingValidators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cosmos.StakingValidatorsResponse{
		Validators: stakingValidators,
		Pagination: cosmos.SinglePage(len(stakingValidators)),
	})
}
