// Package http provides HTTP handlers for trade-intent detection
//
// Schemes: http
// Host: localhost:8080
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	"github.com/shopspring/decimal"
	"github.com/veralabs/intentswap/src/intent/domain"
)

// TradeDataDto is the structured form of a detected trade
// swagger:model TradeDataDto
type TradeDataDto struct {
	Amount           decimal.Decimal `json:"amount" example:"50"`
	OriginAsset      string          `json:"origin_asset" example:"ETH"`
	DestinationAsset string          `json:"destination_asset" example:"DAI"`
	TemplateUsed     string          `json:"template_used" example:"SWAP"`
}

func TradeDataDtoFromDomain(d *domain.TradeData) *TradeDataDto {
	if d == nil {
		return nil
	}
	return &TradeDataDto{
		Amount:           d.Amount,
		OriginAsset:      d.OriginAsset,
		DestinationAsset: d.DestinationAsset,
		TemplateUsed:     string(d.TemplateUsed),
	}
}

// DetectIntentRequestBody is the payload for detection
// swagger:model DetectIntentRequestBody
type DetectIntentRequestBody struct {
	Message string `json:"message" example:"swap 50 eth for dai"`
}

// DetectIntentResponseBody is the detection result
// swagger:model DetectIntentResponseBody
type DetectIntentResponseBody struct {
	IsTradeIntent bool          `json:"is_trade_intent"`
	Data          *TradeDataDto `json:"data,omitempty"`
}

// HintResponseBody is the loose-match pre-filter result
// swagger:model HintResponseBody
type HintResponseBody struct {
	MightBeTrade bool `json:"might_be_trade"`
}

// AssistantMessageRequestBody is the combined pipeline payload
// swagger:model AssistantMessageRequestBody
type AssistantMessageRequestBody struct {
	Message           string `json:"message" example:"i'd like to invest 2500 usdc into btc"`
	RequestQuote      bool   `json:"request_quote" example:"true"`
	ConnectedWallet   string `json:"connected_wallet,omitempty" example:"alice.near"`
	PreferredChain    string `json:"preferred_chain,omitempty" example:"eth"`
	SlippageTolerance int    `json:"slippage_tolerance,omitempty" example:"100"`
	Dry               bool   `json:"dry,omitempty"`
}
