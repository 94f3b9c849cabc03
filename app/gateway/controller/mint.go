package controller

import (
	"net/http"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
)

// inflation is reported as a constant; the chain has no single inflation rate.
const inflation = "0.1200000"

func (c *Controller) HandleInflation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cosmos.InflationResponse{Inflation: inflation})
}
