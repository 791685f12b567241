package usecase

import (
	"fmt"
	"time"

	"github.com/veralabs/intentswap/src/swap/domain"
)

// notAvailable is what every absent display field collapses to. The UI relies
// on fields always being present, so nothing is ever omitted.
const notAvailable = "N/A"

// DisplayQuote is the flattened, display-ready view of a quote outcome.
type DisplayQuote struct {
	Success        bool             `json:"success"`
	Error          string           `json:"error,omitempty"`
	Code           domain.ErrorCode `json:"code,omitempty"`
	AmountIn       string           `json:"amount_in"`
	AmountInUsd    string           `json:"amount_in_usd"`
	AmountOut      string           `json:"amount_out"`
	AmountOutUsd   string           `json:"amount_out_usd"`
	MinAmountOut   string           `json:"min_amount_out"`
	DepositAddress string           `json:"deposit_address"`
	Deadline       string           `json:"deadline"`
	TimeEstimate   string           `json:"time_estimate"`
	Slippage       string           `json:"slippage"`
	SwapType       string           `json:"swap_type"`
	CorrelationID  string           `json:"correlation_id"`
}

// FormatQuoteForDisplay reshapes a quote outcome into display-ready fields.
// Failures pass through unchanged, with a default message when absent.
func FormatQuoteForDisplay(outcome *QuoteOutcome) DisplayQuote {
	if outcome == nil || !outcome.Success {
		d := DisplayQuote{Error: "Quote request failed", Code: domain.CodeUnknownError}
		if outcome != nil {
			if outcome.Error != "" {
				d.Error = outcome.Error
			}
			if outcome.Code != "" {
				d.Code = outcome.Code
			}
		}
		return d
	}

	q := outcome.Quote.Quote
	echo := outcome.Quote.QuoteRequest

	d := DisplayQuote{
		Success:        true,
		AmountIn:       orNA(q.AmountInFormatted),
		AmountInUsd:    orNA(q.AmountInUsd),
		AmountOut:      orNA(q.AmountOutFormatted),
		AmountOutUsd:   orNA(q.AmountOutUsd),
		MinAmountOut:   orNA(q.MinAmountOut),
		DepositAddress: orNA(q.DepositAddress),
		Deadline:       humanDeadline(q.Deadline),
		TimeEstimate:   notAvailable,
		Slippage:       notAvailable,
		SwapType:       orNA(echo.SwapType),
		CorrelationID:  orNA(outcome.Quote.CorrelationID),
	}
	if q.TimeEstimate > 0 {
		d.TimeEstimate = fmt.Sprintf("%ds", q.TimeEstimate)
	}
	if echo.SlippageTolerance > 0 {
		d.Slippage = fmt.Sprintf("%.2f%%", float64(echo.SlippageTolerance)/100)
	}
	return d
}

// humanDeadline renders an ISO-8601 deadline for people. Unparseable input
// falls back to the raw string rather than failing.
func humanDeadline(raw string) string {
	if raw == "" {
		return notAvailable
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format("Jan 2, 2006 15:04 UTC")
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
