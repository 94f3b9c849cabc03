package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/pkg/cosmos"
	"github.com/vknowable/namada-ping-middleware/pkg/redis"
	"github.com/vknowable/namada-ping-middleware/pkg/rpc"
)

// Cache lifetimes: a validator set at a fixed height never changes.
const (
	nodeInfoTTL     = 0 // client default
	validatorSetTTL = -1
)

// pubKeyTypes maps Tendermint amino key names to Cosmos Any type URLs.
var pubKeyTypes = map[string]string{
	"tendermint/PubKeyEd25519":   "/cosmos.crypto.ed25519.PubKey",
	"tendermint/PubKeySecp256k1": "/cosmos.crypto.secp256k1.PubKey",
}

func (c *Controller) HandleLatestBlock(w http.ResponseWriter, r *http.Request) {
	block, err := c.App.RPC.LatestBlock(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cosmos.BlockResponse{BlockID: block.BlockID, Block: block.Block})
}

func (c *Controller) HandleBlock(w http.ResponseWriter, r *http.Request) {
	height, err := uintVar(r, "height")
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	block, err := c.App.RPC.BlockAtHeight(r.Context(), height)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cosmos.BlockResponse{BlockID: block.BlockID, Block: block.Block})
}

func (c *Controller) HandleNodeInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := redis.Key("node_info")

	var resp cosmos.NodeInfoResponse
	if c.cacheGet(ctx, key, &resp) {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	status, err := c.App.RPC.Status(ctx)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	info := status.NodeInfo
	resp = cosmos.NodeInfoResponse{
		DefaultNodeInfo: cosmos.DefaultNodeInfo{
			ProtocolVersion: cosmos.ProtocolVersion(info.ProtocolVersion),
			DefaultNodeID:   info.ID,
			ListenAddr:      info.ListenAddr,
			Network:         info.Network,
			Version:         info.Version,
			Channels:        info.Channels,
			Moniker:         info.Moniker,
			Other:           cosmos.NodeOtherInfo(info.Other),
		},
		ApplicationVersion: cosmos.NewApplicationVersion(),
	}
	c.cacheSet(ctx, key, resp, nodeInfoTTL)
	writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleLatestValidatorSet(w http.ResponseWriter, r *http.Request) {
	set, err := c.App.RPC.ValidatorsAtHeight(r.Context(), 0)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toValidatorSets(set))
}

func (c *Controller) HandleValidatorSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	height, err := uintVar(r, "height")
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if height == 0 {
		c.HandleLatestValidatorSet(w, r)
		return
	}

	key := redis.Key("validatorsets", strconv.FormatUint(height, 10))
	var resp cosmos.ValidatorSetsResponse
	if c.cacheGet(ctx, key, &resp) {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	set, err := c.App.RPC.ValidatorsAtHeight(ctx, height)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	resp = toValidatorSets(set)
	c.cacheSet(ctx, key, resp, validatorSetTTL)
	writeJSON(w, http.StatusOK, resp)
}

func toValidatorSets(set *rpc.ValidatorSet) cosmos.ValidatorSetsResponse {
	validators := make([]cosmos.ValidatorSetEntry, 0, len(set.Validators))
	for _, v := range set.Validators {
		keyType, ok := pubKeyTypes[v.PubKey.Type]
		if !ok {
			keyType = v.PubKey.Type
		}
		validators = append(validators, cosmos.ValidatorSetEntry{
			Address:          v.Address,
			PubKey:           cosmos.ConsensusKey{Type: keyType, Key: v.PubKey.Value},
			VotingPower:      v.VotingPower,
			ProposerPriority: v.ProposerPriority,
		})
	}

	total := set.Total
	if total == "" {
		total = strconv.Itoa(len(validators))
	}
	return cosmos.ValidatorSetsResponse{
		BlockHeight: set.BlockHeight,
		Validators:  validators,
		Pagination:  &cosmos.PaginationInfo{Total: &total},
	}
}

// cacheGet reports a hit; a disabled or failing cache is a miss.
func (c *Controller) cacheGet(ctx context.Context, key string, out any) bool {
	if c.App.Cache == nil {
		return false
	}
	hit, err := c.App.Cache.GetJSON(ctx, key, out)
	if err != nil {
		c.App.Logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (c *Controller) cacheSet(ctx context.Context, key string, v any, ttl time.Duration) {
	if c.App.Cache == nil {
		return
	}
	c.App.Cache.SetJSON(ctx, key, v, ttl)
}
