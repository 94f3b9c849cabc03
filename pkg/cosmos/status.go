package cosmos

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ProposalStatus is the closed set of proposal statuses of the Cosmos gov module.
type ProposalStatus uint32

const (
	StatusUnspecified   ProposalStatus = 0
	StatusDepositPeriod ProposalStatus = 1
	StatusVotingPeriod  ProposalStatus = 2
	StatusPassed        ProposalStatus = 3
	StatusRejected      ProposalStatus = 4
	StatusFailed        ProposalStatus = 5
)

var statusNames = map[ProposalStatus]string{
	StatusUnspecified:   "PROPOSAL_STATUS_UNSPECIFIED",
	StatusDepositPeriod: "PROPOSAL_STATUS_DEPOSIT_PERIOD",
	StatusVotingPeriod:  "PROPOSAL_STATUS_VOTING_PERIOD",
	StatusPassed:        "PROPOSAL_STATUS_PASSED",
	StatusRejected:      "PROPOSAL_STATUS_REJECTED",
	StatusFailed:        "PROPOSAL_STATUS_FAILED",
}

func (s ProposalStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PROPOSAL_STATUS(%d)", uint32(s))
}

// Valid reports whether s is one of the five concrete statuses.
func (s ProposalStatus) Valid() bool {
	return s >= StatusDepositPeriod && s <= StatusFailed
}

// MarshalJSON encodes the status by name, the way the Cosmos REST gateway does.
func (s ProposalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseProposalStatus accepts either the numeric value ("2") or the enum name
// ("PROPOSAL_STATUS_VOTING_PERIOD", case-insensitive).
// Empty input, 0 and PROPOSAL_STATUS_UNSPECIFIED yield nil, meaning "no filter".
func ParseProposalStatus(raw string) (*ProposalStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var status ProposalStatus
	if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
		status = ProposalStatus(n)
	} else {
		found := false
		upper := strings.ToUpper(raw)
		for s, name := range statusNames {
			if name == upper {
				status, found = s, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown proposal status %q", raw)
		}
	}

	// 0 is the proto default, so it reads as "no filter" rather than matching nothing.
	if status == StatusUnspecified {
		return nil, nil
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown proposal status %q", raw)
	}
	return &status, nil
}
