package rpc

import "fmt"

// Native ledger queries are served as JSON by the node's query service.
// Tendermint routes are the standard URI-over-HTTP RPC.

const (
	// Governance queries
	govCounterPath = "/v1/gov/counter"
	govParamsPath  = "/v1/gov/params"

	// Proof-of-stake queries
	epochPath         = "/v1/pos/epoch"
	posParamsPath     = "/v1/pos/params"
	epochDurationPath = "/v1/params/epoch-duration"

	// Token queries
	totalSupplyPath = "/v1/token/native/total-supply"

	// Tendermint RPC
	statusPath     = "/status"
	blockPath      = "/block"
	validatorsPath = "/validators"
)

func proposalPath(id uint64) string {
	return fmt.Sprintf("/v1/gov/proposals/%d", id)
}

func proposalResultPath(id uint64) string {
	return fmt.Sprintf("/v1/gov/proposals/%d/result", id)
}
