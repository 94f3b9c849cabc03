package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
)

// HandleSupply serves the native token's total supply; it is the only denom.
func (c *Controller) HandleSupply(w http.ResponseWriter, r *http.Request) {
	total, err := c.App.RPC.TotalSupply(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cosmos.SupplyResponse{
		Supply:     []cosmos.DenomAmount{cosmos.NamAmount(total)},
		Pagination: cosmos.SinglePage(1),
	})
}

func (c *Controller) HandleSupplyDenom(w http.ResponseWriter, r *http.Request) {
	denom := mux.Vars(r)["denom"]
	if denom != cosmos.NativeDenom {
		c.writeError(w, r, badRequest("unknown denom %q", denom))
		return
	}

	total, err := c.App.RPC.TotalSupply(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cosmos.SupplyDenomResponse{Amount: cosmos.NamAmount(total)})
}
