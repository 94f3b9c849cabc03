package controller

import (
	"net/http"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
)

// HandleProposals serves GET /cosmos/gov/v1beta1/proposals[?proposal_status=].
// Pagination parameters are accepted but ignored: everything comes back in one page.
func (c *Controller) HandleProposals(w http.ResponseWriter, r *http.Request) {
	status, err := cosmos.ParseProposalStatus(r.URL.Query().Get("proposal_status"))
	if err != nil {
		c.writeError(w, r, badRequest("%v", err))
		return
	}

	resp, err := c.App.Gov.ListProposals(r.Context(), status)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleProposal serves GET /cosmos/gov/v1beta1/proposals/{id}.
func (c *Controller) HandleProposal(w http.ResponseWriter, r *http.Request) {
	id, err := uintVar(r, "id")
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	resp, err := c.App.Gov.GetProposal(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleProposalTally serves GET /cosmos/gov/v1beta1/proposals/{id}/tally.
func (c *Controller) HandleProposalTally(w http.ResponseWriter, r *http.Request) {
	id, err := uintVar(r, "id")
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	resp, err := c.App.Gov.GetProposalTally(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleParamsDeposit serves GET /cosmos/gov/v1beta1/params/deposit.
func (c *Controller) HandleParamsDeposit(w http.ResponseWriter, r *http.Request) {
	resp, err := c.App.Gov.DepositParams(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleParamsVoting serves GET /cosmos/gov/v1beta1/params/voting.
func (c *Controller) HandleParamsVoting(w http.ResponseWriter, r *http.Request) {
	resp, err := c.App.Gov.VotingParams(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleParamsTallying serves GET /cosmos/gov/v1beta1/params/tallying.
func (c *Controller) HandleParamsTallying(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.App.Gov.TallyParams())
}
