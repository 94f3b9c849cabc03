package cosmos

import "encoding/json"

// BlockResponse passes the node's block through untouched.
type BlockResponse struct {
	BlockID json.RawMessage `json:"block_id"`
	Block   json.RawMessage `json:"block"`
}

type ProtocolVersion struct {
	P2P   string `json:"p2p"`
	Block string `json:"block"`
	App   string `json:"app"`
}

type NodeOtherInfo struct {
	TxIndex    string `json:"tx_index"`
	RPCAddress string `json:"rpc_address"`
}

type DefaultNodeInfo struct {
	ProtocolVersion ProtocolVersion `json:"protocol_version"`
	DefaultNodeID   string          `json:"default_node_id"`
	ListenAddr      string          `json:"listen_addr"`
	Network         string          `json:"network"`
	Version         string          `json:"version"`
	Channels        string          `json:"channels"`
	Moniker         string          `json:"moniker"`
	Other           NodeOtherInfo   `json:"other"`
}

type BuildDep struct {
	Path    string  `json:"path"`
	Version string  `json:"version"`
	Sum     *string `json:"sum"`
}

type ApplicationVersion struct {
	Name      string     `json:"name"`
	AppName   string     `json:"app_name"`
	Version   string     `json:"version"`
	GitCommit string     `json:"git_commit"`
	BuildTags *string    `json:"build_tags"`
	GoVersion *string    `json:"go_version"`
	BuildDeps []BuildDep `json:"build_deps"`
}

// NewApplicationVersion describes the node software. The chain does not expose
// build metadata, so everything past the names is a placeholder.
func NewApplicationVersion() ApplicationVersion {
	placeholder := "placeholder"
	return ApplicationVersion{
		Name:      "namada",
		AppName:   "namadan",
		Version:   placeholder,
		GitCommit: placeholder,
		BuildTags: &placeholder,
		GoVersion: &placeholder,
	}
}

type NodeInfoResponse struct {
	DefaultNodeInfo    DefaultNodeInfo    `json:"default_node_info"`
	ApplicationVersion ApplicationVersion `json:"application_version"`
}

type ValidatorSetEntry struct {
	Address          string       `json:"address"`
	PubKey           ConsensusKey `json:"pub_key"`
	VotingPower      string       `json:"voting_power"`
	ProposerPriority string       `json:"proposer_priority"`
}

type ValidatorSetsResponse struct {
	BlockHeight string              `json:"block_height"`
	Validators  []ValidatorSetEntry `json:"validators"`
	Pagination  *PaginationInfo     `json:"pagination"`
}
