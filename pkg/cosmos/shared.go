package cosmos

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NativeDenom is the denomination reported for every native token amount.
const NativeDenom = "nam"

// nativeDecimals is the number of decimal places of the native token's base unit.
const nativeDecimals = 6

// DefaultTimestamp stands in for times the chain does not record.
const DefaultTimestamp = "1970-01-01T00:00:00Z"

type DenomAmount struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// NamAmount converts a base-unit amount into a whole-token DenomAmount.
func NamAmount(base decimal.Decimal) DenomAmount {
	return DenomAmount{Denom: NativeDenom, Amount: FormatNative(base)}
}

// FormatNative renders a base-unit amount in whole tokens.
func FormatNative(base decimal.Decimal) string {
	return base.Shift(-nativeDecimals).String()
}

// FormatDec renders a ratio with the 18 decimal places of a Cosmos sdk.Dec.
func FormatDec(d decimal.Decimal) string {
	return d.StringFixed(18)
}

type PaginationInfo struct {
	NextKey *string `json:"next_key"`
	Total   *string `json:"total"`
}

// SinglePage describes an unpaginated result of n items.
func SinglePage(n int) *PaginationInfo {
	total := fmt.Sprintf("%d", n)
	return &PaginationInfo{Total: &total}
}

// SuffixedDur encodes a duration as whole seconds with an "s" suffix ("600s").
type SuffixedDur time.Duration

func (d SuffixedDur) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%ds", int64(time.Duration(d)/time.Second)))
}

// ErrDetails mirrors google.protobuf.Any as it appears in Cosmos error bodies.
type ErrDetails struct {
	TypeURL string `json:"type_url"`
	Value   string `json:"value"`
}

// ApiError is the error body returned to clients.
type ApiError struct {
	Error   string       `json:"error"`
	Code    int          `json:"code"`
	Message *string      `json:"message"`
	Details []ErrDetails `json:"details"`
}

// NewApiError builds an error body with a single blank detail entry.
func NewApiError(code int, err, message string) ApiError {
	e := ApiError{
		Error:   err,
		Code:    code,
		Details: []ErrDetails{{}},
	}
	if message != "" {
		e.Message = &message
	}
	return e
}
