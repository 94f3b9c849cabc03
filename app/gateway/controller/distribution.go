package controller

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
)

func (c *Controller) HandleCommunityPool(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cosmos.CommunityPoolResponse{
		Pool: []cosmos.DenomAmount{cosmos.NamAmount(decimal.Zero)},
	})
}

// HandleDistributionParams maps the PoS reward parameters onto the distribution
// module: the vote reward is the base proposer reward and the proposer reward
// is the bonus.
func (c *Controller) HandleDistributionParams(w http.ResponseWriter, r *http.Request) {
	params, err := c.App.RPC.PosParams(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cosmos.DistributionParamsResponse{
		Params: cosmos.DistributionParams{
			CommunityTax:        cosmos.FormatDec(decimal.Zero),
			BaseProposerReward:  cosmos.FormatDec(params.BlockVoteReward),
			BonusProposerReward: cosmos.FormatDec(params.BlockProposerReward),
			WithdrawAddrEnabled: true,
		},
	})
}
