package controller

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

func govChain() *fakeRPC {
	chain := newFakeRPC().
		withProposal(0, 20, 30).
		withProposal(2, 1, 4).
		withProposal(3, 5, 15)
	chain.epoch = 10
	chain.results[2] = &rpc.ProposalResult{
		Result:        rpc.TallyPassed,
		TotalYayPower: decimal.NewFromInt(7_000_000),
		TotalNayPower: decimal.NewFromInt(1_000_000),
	}
	return chain
}

func TestHandleProposals(t *testing.T) {
	server := newTestServer(t, govChain(), nil)

	code, body := get(t, server, "/cosmos/gov/v1beta1/proposals")

	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{
		"proposals": [
			{
				"proposal_id": "0",
				"content": {"@type": "default", "title": "Raise slots", "description": "More validators", "recipient": null, "amount": null},
				"status": "PROPOSAL_STATUS_DEPOSIT_PERIOD",
				"final_tally_result": {"yes": "0", "abstain": "0", "no": "0", "no_with_veto": "0"},
				"submit_time": "1970-01-01T00:00:00Z",
				"deposit_end_time": "20",
				"total_deposit": [{"denom": "nam", "amount": "500"}],
				"voting_start_time": "20",
				"voting_end_time": "30"
			},
			{
				"proposal_id": "2",
				"content": {"@type": "default", "title": "Raise slots", "description": "More validators", "recipient": null, "amount": null},
				"status": "PROPOSAL_STATUS_PASSED",
				"final_tally_result": {"yes": "7", "abstain": "0", "no": "1", "no_with_veto": "0"},
				"submit_time": "1970-01-01T00:00:00Z",
				"deposit_end_time": "1",
				"total_deposit": [{"denom": "nam", "amount": "500"}],
				"voting_start_time": "1",
				"voting_end_time": "4"
			},
			{
				"proposal_id": "3",
				"content": {"@type": "default", "title": "Raise slots", "description": "More validators", "recipient": null, "amount": null},
				"status": "PROPOSAL_STATUS_VOTING_PERIOD",
				"final_tally_result": {"yes": "0", "abstain": "0", "no": "0", "no_with_veto": "0"},
				"submit_time": "1970-01-01T00:00:00Z",
				"deposit_end_time": "5",
				"total_deposit": [{"denom": "nam", "amount": "500"}],
				"voting_start_time": "5",
				"voting_end_time": "15"
			}
		],
		"pagination": {"next_key": null, "total": "3"}
	}`, body)
}

func TestHandleProposals_ByteIdentical(t *testing.T) {
	server := newTestServer(t, govChain(), nil)

	_, first := get(t, server, "/cosmos/gov/v1beta1/proposals")
	_, second := get(t, server, "/cosmos/gov/v1beta1/proposals")

	assert.Equal(t, first, second)
}

func TestHandleProposals_StatusFilter(t *testing.T) {
	server := newTestServer(t, govChain(), nil)

	for _, q := range []string{"2", "PROPOSAL_STATUS_VOTING_PERIOD"} {
		code, body := get(t, server, "/cosmos/gov/v1beta1/proposals?proposal_status="+q)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `"proposal_id":"3"`)
		assert.NotContains(t, body, `"proposal_id":"0"`)
		assert.Contains(t, body, `"total":"1"`)
	}

	code, body := get(t, server, "/cosmos/gov/v1beta1/proposals?proposal_status=0")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"total":"3"`)

	code, body = get(t, server, "/cosmos/gov/v1beta1/proposals?proposal_status=9")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, `"code":400`)
}

func TestHandleProposals_UpstreamError(t *testing.T) {
	chain := govChain()
	chain.failOn[2] = errUpstream
	server := newTestServer(t, chain, nil)

	code, body := get(t, server, "/cosmos/gov/v1beta1/proposals")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "upstream unavailable")
	assert.Contains(t, body, `"message":"An error occurred"`)
	assert.NotContains(t, body, "proposal_id")
}

func TestHandleProposal(t *testing.T) {
	server := newTestServer(t, govChain(), nil)

	code, body := get(t, server, "/cosmos/gov/v1beta1/proposals/2")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"status":"PROPOSAL_STATUS_PASSED"`)

	code, body = get(t, server, "/cosmos/gov/v1beta1/proposals/1")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"proposal":null}`, body)

	code, _ = get(t, server, "/cosmos/gov/v1beta1/proposals/abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHandleProposalTally(t *testing.T) {
	chain := govChain().withProposal(4, 1, 2)
	server := newTestServer(t, chain, nil)

	code, body := get(t, server, "/cosmos/gov/v1beta1/proposals/2/tally")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"tally":{"yes":"7","abstain":"0","no":"1","no_with_veto":"0"}}`, body)

	// Ended without a stored tally: listed as failed, but the tally query is a 404.
	code, body = get(t, server, "/cosmos/gov/v1beta1/proposals/4/tally")
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"error":"proposal result not found","code":404,"message":null,"details":[{"type_url":"","value":""}]}`, body)

	_, body = get(t, server, "/cosmos/gov/v1beta1/proposals/4")
	assert.Contains(t, body, `"status":"PROPOSAL_STATUS_FAILED"`)

	code, _ = get(t, server, "/cosmos/gov/v1beta1/proposals/1/tally")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHandleGovParams(t *testing.T) {
	server := newTestServer(t, govChain(), nil)

	_, body := get(t, server, "/cosmos/gov/v1beta1/params/deposit")
	assert.Contains(t, body, `"min_deposit":[{"denom":"nam","amount":"500"}]`)
	assert.Contains(t, body, `"max_deposit_period":"0s"`)

	_, body = get(t, server, "/cosmos/gov/v1beta1/params/voting")
	assert.Contains(t, body, `"voting_period":"300s"`)

	_, body = get(t, server, "/cosmos/gov/v1beta1/params/tallying")
	assert.Contains(t, body, `"threshold":"0.670000000000000000"`)
	assert.Contains(t, body, `"veto_threshold":"1.000000000000000000"`)
}
