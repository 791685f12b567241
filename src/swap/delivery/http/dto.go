package http

import (
	"github.com/shopspring/decimal"
	intentdomain "github.com/veralabs/intentswap/src/intent/domain"
	"github.com/veralabs/intentswap/src/swap/usecase"
)

// CreateQuoteRequestBody is the payload to request a quote for detected trade data
// swagger:model CreateQuoteRequestBody
type CreateQuoteRequestBody struct {
	Amount            decimal.Decimal `json:"amount" example:"50"`
	OriginAsset       string          `json:"origin_asset" example:"ETH"`
	DestinationAsset  string          `json:"destination_asset" example:"DAI"`
	TemplateUsed      string          `json:"template_used" example:"SWAP"`
	SlippageTolerance int             `json:"slippage_tolerance,omitempty" example:"100"`
	Dry               bool            `json:"dry,omitempty"`
	RefundTo          *string         `json:"refund_to,omitempty"`
	Recipient         *string         `json:"recipient,omitempty"`
	PreferredChain    string          `json:"preferred_chain,omitempty" example:"eth"`
	ConnectedWallet   string          `json:"connected_wallet,omitempty" example:"alice.near"`
}

func (b *CreateQuoteRequestBody) toTradeData() *intentdomain.TradeData {
	return &intentdomain.TradeData{
		Amount:           b.Amount,
		OriginAsset:      b.OriginAsset,
		DestinationAsset: b.DestinationAsset,
		TemplateUsed:     intentdomain.TemplateName(b.TemplateUsed),
	}
}

func (b *CreateQuoteRequestBody) toOptions() usecase.QuoteOptions {
	return usecase.QuoteOptions{
		SlippageTolerance: b.SlippageTolerance,
		Dry:               b.Dry,
		RefundTo:          b.RefundTo,
		Recipient:         b.Recipient,
		PreferredChain:    b.PreferredChain,
		ConnectedWallet:   b.ConnectedWallet,
	}
}

// SubmitDepositRequestBody reports the deposit transaction hash
// swagger:model SubmitDepositRequestBody
type SubmitDepositRequestBody struct {
	TxHash string `json:"tx_hash" example:"0xabc..."`
}

// StatusResponseBody is the tagged status result
// swagger:model StatusResponseBody
type StatusResponseBody struct {
	Success        bool   `json:"success"`
	DepositAddress string `json:"deposit_address"`
	Status         string `json:"status,omitempty"`
	Error          string `json:"error,omitempty"`
	Code           string `json:"code,omitempty"`
}

func StatusResponseFromOutcome(out *usecase.StatusOutcome) StatusResponseBody {
	return StatusResponseBody{
		Success:        out.Success,
		DepositAddress: out.DepositAddress,
		Status:         string(out.Status),
		Error:          out.Error,
		Code:           string(out.Code),
	}
}

// TrackResponseBody acknowledges a tracking start/stop
// swagger:model TrackResponseBody
type TrackResponseBody struct {
	DepositAddress string `json:"deposit_address"`
	Tracking       bool   `json:"tracking"`
}
