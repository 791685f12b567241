package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TemplateName string

const (
	TemplateBuy    TemplateName = "BUY"
	TemplateSwap   TemplateName = "SWAP"
	TemplateInvest TemplateName = "INVEST"
	TemplateTrade  TemplateName = "TRADE"
)

// ErrInvalidTradeData signals a contract violation by the caller: trade data
// must come out of the detector (or pass Validate) before it is used.
var ErrInvalidTradeData = errors.New("invalid trade data provided")

// TradeData is the structured form of a parsed trade sentence.
// OriginAsset is the token being spent, DestinationAsset the token acquired.
type TradeData struct {
	Amount           decimal.Decimal `json:"amount"`
	OriginAsset      string          `json:"origin_asset"`
	DestinationAsset string          `json:"destination_asset"`
	TemplateUsed     TemplateName    `json:"template_used"`
}

// Validate checks the invariants every detected trade must satisfy.
func (d *TradeData) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: no trade data", ErrInvalidTradeData)
	}
	if !d.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTradeData)
	}
	if d.OriginAsset == "" || d.DestinationAsset == "" {
		return fmt.Errorf("%w: both assets are required", ErrInvalidTradeData)
	}
	if strings.EqualFold(d.OriginAsset, d.DestinationAsset) {
		return fmt.Errorf("%w: origin and destination assets must differ", ErrInvalidTradeData)
	}
	return nil
}

// TradeIntentResult is the sole output contract of detection. A negative
// result carries no data and is never an error.
type TradeIntentResult struct {
	IsTradeIntent bool       `json:"is_trade_intent"`
	Data          *TradeData `json:"data,omitempty"`
}
