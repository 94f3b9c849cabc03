package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleBlocks(t *testing.T) {
	server := newTestServer(t, newFakeRPC(), nil)

	code, body := get(t, server, "/cosmos/base/tendermint/v1beta1/blocks/latest")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"block_id":{"hash":"AA"},"block":{"header":{"chain_id":"internal-devnet"}}}`, body)

	code, _ = get(t, server, "/cosmos/base/tendermint/v1beta1/blocks/12")
	assert.Equal(t, http.StatusOK, code)
}

func TestHandleNodeInfo_Cached(t *testing.T) {
	chain := newFakeRPC()
	cache := newMemCache()
	server := newTestServer(t, chain, cache)

	code, first := get(t, server, "/cosmos/base/tendermint/v1beta1/node_info")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, first, `"default_node_id":"b5f0"`)
	assert.Contains(t, first, `"network":"internal-devnet"`)
	assert.Contains(t, first, `"app_name":"namadan"`)

	_, second := get(t, server, "/cosmos/base/tendermint/v1beta1/node_info")
	assert.JSONEq(t, first, second)
	assert.Equal(t, int64(1), chain.statusCalls.Load())
}

func TestHandleNodeInfo_Error(t *testing.T) {
	chain := newFakeRPC()
	chain.statusErr = errUpstream
	server := newTestServer(t, chain, nil)

	code, body := get(t, server, "/cosmos/base/tendermint/v1beta1/node_info")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, body, "upstream unavailable")
}

func TestHandleValidatorSets(t *testing.T) {
	chain := newFakeRPC()
	server := newTestServer(t, chain, newMemCache())

	code, body := get(t, server, "/cosmos/base/tendermint/v1beta1/validatorsets/latest")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{
		"block_height":"42",
		"validators":[{"address":"AB12","pub_key":{"@type":"/cosmos.crypto.ed25519.PubKey","key":"key="},"voting_power":"1000","proposer_priority":"-5"}],
		"pagination":{"next_key":null,"total":"1"}
	}`, body)

	// A fixed height is served from cache on repeat.
	_, first := get(t, server, "/cosmos/base/tendermint/v1beta1/validatorsets/42")
	_, second := get(t, server, "/cosmos/base/tendermint/v1beta1/validatorsets/42")
	assert.JSONEq(t, first, second)
	assert.Equal(t, int64(2), chain.validatorsCalls.Load())
}

func TestHandleHealth(t *testing.T) {
	chain := newFakeRPC()
	server := newTestServer(t, chain, newMemCache())

	code, body := get(t, server, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body, `"status":"starting"`)
}

func TestHandleHealth_AfterProbe(t *testing.T) {
	chain := newFakeRPC()
	app := newTestApp(t, chain)
	app.Monitor.Probe(context.Background())
	server := serve(t, app)

	code, body := get(t, server, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"latest_height":"4321"`)
	assert.Contains(t, body, `"redis":"disabled"`)

	chain.statusErr = errors.New("dial tcp: connection refused")
	app.Monitor.Probe(context.Background())

	code, body = get(t, server, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, body, `"status":"errored"`)
	assert.Contains(t, body, "connection refused")
}
