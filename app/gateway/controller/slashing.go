package controller

import (
	"net/http"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
)

// Slashing has no Cosmos-shaped equivalent on chain; both endpoints are fixed.
var (
	slashingParams = cosmos.SlashingParamsResponse{
		Params: cosmos.SlashingParams{
			SignedBlocksWindow:      "1000",
			MinSignedPerWindow:      "0.0500000",
			DowntimeJailDuration:    "600s",
			SlashFractionDoubleSign: "0.050000000000000",
			SlashFractionDowntime:   "0.00010000",
		},
	}

	signingInfos = []cosmos.SigningInfo{{
		Address:             "tnam1234",
		StartHeight:         "0",
		IndexOffset:         "23414",
		JailedUntil:         cosmos.DefaultTimestamp,
		Tombstoned:          false,
		MissedBlocksCounter: "2",
	}}
)

func (c *Controller) HandleSlashingParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, slashingParams)
}

func (c *Controller) HandleSigningInfos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cosmos.SigningInfosResponse{
		Info:       signingInfos,
		Pagination: cosmos.SinglePage(len(signingInfos)),
	})
}
