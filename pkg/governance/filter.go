package governance

import "github.com/vknowable/namada-ping-middleware/pkg/cosmos"

// Filter keeps the records whose status equals requested, preserving order.
// A nil requested status keeps everything.
func Filter(records []Record, requested *cosmos.ProposalStatus) []Record {
	if requested == nil {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Status == *requested {
			out = append(out, r)
		}
	}
	return out
}
