package domain

import (
	"time"
)

type SwapType string

const (
	SwapExactInput  SwapType = "EXACT_INPUT"
	SwapExactOutput SwapType = "EXACT_OUTPUT"
)

// Chain-side routing values for deposit/refund/recipient. Fixed by policy:
// deposit and refund on the origin chain, recipient on the destination chain.
const (
	SideOriginChain      = "ORIGIN_CHAIN"
	SideDestinationChain = "DESTINATION_CHAIN"
)

// ErrorCode tags every failure the quote pipeline can hand back to callers.
type ErrorCode string

const (
	CodeAuthError          ErrorCode = "AUTH_ERROR"
	CodeInvalidRequest     ErrorCode = "INVALID_REQUEST"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeUnknownError       ErrorCode = "UNKNOWN_ERROR"
	CodeStatusError        ErrorCode = "STATUS_ERROR"
	CodeSubmitError        ErrorCode = "SUBMIT_ERROR"
)

// SwapStatus is the execution state machine for a deposit address:
// PENDING -> PROCESSING -> COMPLETE | FAILED | REFUNDED.
type SwapStatus string

const (
	SwapPending    SwapStatus = "PENDING"
	SwapProcessing SwapStatus = "PROCESSING"
	SwapComplete   SwapStatus = "COMPLETE"
	SwapFailed     SwapStatus = "FAILED"
	SwapRefunded   SwapStatus = "REFUNDED"
)

// Terminal reports whether no further transitions can happen. REFUNDED is
// terminal with partial success: funds came back, the swap did not happen.
func (s SwapStatus) Terminal() bool {
	switch s {
	case SwapComplete, SwapFailed, SwapRefunded:
		return true
	}
	return false
}

// QuoteRequest is the outbound quote request. Optional routing addresses are
// pointers so that absent values can be stripped from the wire payload while
// explicitly-set empty strings survive.
type QuoteRequest struct {
	Dry               bool
	SwapType          SwapType
	SlippageTolerance int // basis points
	OriginAsset       string
	DepositType       string
	DestinationAsset  string
	Amount            string // integer base units
	RefundTo          *string
	RefundType        string
	Recipient         *string
	RecipientType     string
	Deadline          string // ISO-8601
}

// Payload renders the wire shape. Nil optionals are omitted; false booleans
// and empty strings are kept, per the quoting service's contract.
func (r *QuoteRequest) Payload() map[string]any {
	p := map[string]any{
		"dry":               r.Dry,
		"swapType":          string(r.SwapType),
		"slippageTolerance": r.SlippageTolerance,
		"originAsset":       r.OriginAsset,
		"depositType":       r.DepositType,
		"destinationAsset":  r.DestinationAsset,
		"amount":            r.Amount,
		"refundType":        r.RefundType,
		"recipientType":     r.RecipientType,
		"deadline":          r.Deadline,
	}
	if r.RefundTo != nil {
		p["refundTo"] = *r.RefundTo
	}
	if r.Recipient != nil {
		p["recipient"] = *r.Recipient
	}
	return p
}

// IssuedQuote records a successfully priced quote.
type IssuedQuote struct {
	ID               string
	CorrelationID    string
	DepositAddress   string
	OriginAsset      string // chain-qualified
	DestinationAsset string // chain-qualified
	AmountIn         string // base units
	AmountOut        string // base units
	SwapType         SwapType
	TemplateUsed     string
	Deadline         time.Time
	CreatedAt        time.Time
}

// Swap is a tracked execution keyed by deposit address.
type Swap struct {
	DepositAddress   string
	CorrelationID    string
	Status           SwapStatus
	OriginAsset      string
	DestinationAsset string
	AmountIn         string
	DepositTxHash    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
