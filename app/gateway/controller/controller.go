package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/app/gateway/types"
)

type Controller struct {
	App *types.App
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App: app,
	}
}

// NewRouter returns a new router with every Cosmos REST route the gateway serves.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(c.logRequests)

	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods("GET")

	// gov
	r.HandleFunc("/cosmos/gov/v1beta1/params/deposit", c.HandleParamsDeposit).Methods("GET")
	r.HandleFunc("/cosmos/gov/v1beta1/params/voting", c.HandleParamsVoting).Methods("GET")
	r.HandleFunc("/cosmos/gov/v1beta1/params/tallying", c.HandleParamsTallying).Methods("GET")
	r.HandleFunc("/cosmos/gov/v1beta1/proposals", c.HandleProposals).Methods("GET")
	r.HandleFunc("/cosmos/gov/v1beta1/proposals/{id}", c.HandleProposal).Methods("GET")
	r.HandleFunc("/cosmos/gov/v1beta1/proposals/{id}/tally", c.HandleProposalTally).Methods("GET")

	// bank
	r.HandleFunc("/cosmos/bank/v1beta1/supply", c.HandleSupply).Methods("GET")
	r.HandleFunc("/cosmos/bank/v1beta1/supply/{denom}", c.HandleSupplyDenom).Methods("GET")

	// distribution
	r.HandleFunc("/cosmos/distribution/v1beta1/community_pool", c.HandleCommunityPool).Methods("GET")
	r.HandleFunc("/cosmos/distribution/v1beta1/params", c.HandleDistributionParams).Methods("GET")

	// mint
	r.HandleFunc("/cosmos/mint/v1beta1/inflation", c.HandleInflation).Methods("GET")

	// slashing
	r.HandleFunc("/cosmos/slashing/v1beta1/params", c.HandleSlashingParams).Methods("GET")
	r.HandleFunc("/cosmos/slashing/v1beta1/signing_infos", c.HandleSigningInfos).Methods("GET")

	// staking
	r.HandleFunc("/cosmos/staking/v1beta1/params", c.HandleStakingParams).Methods("GET")
	r.HandleFunc("/cosmos/staking/v1beta1/pool", c.HandleStakingPool).Methods("GET")
	r.HandleFunc("/cosmos/staking/v1beta1/validators", c.HandleStakingValidators).Methods("GET")

	// tendermint
	r.HandleFunc("/cosmos/base/tendermint/v1beta1/blocks/latest", c.HandleLatestBlock).Methods("GET")
	r.HandleFunc("/cosmos/base/tendermint/v1beta1/blocks/{height:[0-9]+}", c.HandleBlock).Methods("GET")
	r.HandleFunc("/cosmos/base/tendermint/v1beta1/node_info", c.HandleNodeInfo).Methods("GET")
	r.HandleFunc("/cosmos/base/tendermint/v1beta1/validatorsets/latest", c.HandleLatestValidatorSet).Methods("GET")
	r.HandleFunc("/cosmos/base/tendermint/v1beta1/validatorsets/{height:[0-9]+}", c.HandleValidatorSet).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(c.handleNotImplemented)

	return r, nil
}

// WithCORS allows cross-origin GET requests from any origin.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Accept, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)

		// Fast-path the preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// logRequests logs every request at debug level.
func (c *Controller) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.App.Logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
