package swap

import (
	"context"

	intentdomain "github.com/veralabs/intentswap/src/intent/domain"
	swapusecase "github.com/veralabs/intentswap/src/swap/usecase"
)

type SwapAdapter interface {
	GetQuoteForTradeIntent(ctx context.Context, data *intentdomain.TradeData, opts swapusecase.QuoteOptions) *swapusecase.QuoteOutcome
}

var _ SwapAdapter = (*SwapPort)(nil)

// init swap port
func NewSwapPort(swapService *swapusecase.Service) SwapAdapter {
	return &SwapPort{swapService: swapService}
}

type SwapPort struct {
	swapService *swapusecase.Service
}

func (p *SwapPort) GetQuoteForTradeIntent(ctx context.Context, data *intentdomain.TradeData, opts swapusecase.QuoteOptions) *swapusecase.QuoteOutcome {
	return p.swapService.GetQuoteForTradeIntent(ctx, data, opts)
}
