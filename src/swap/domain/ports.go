package domain

import "context"

// QuoteRepository persistence port for priced quotes.
type QuoteRepository interface {
	SaveQuote(ctx context.Context, q *IssuedQuote) error
	GetQuoteByDepositAddress(ctx context.Context, depositAddress string) (*IssuedQuote, error)
}

// SwapRepository persistence port for tracked executions.
type SwapRepository interface {
	SaveSwap(ctx context.Context, s *Swap) (*Swap, error)
	GetByDepositAddress(ctx context.Context, depositAddress string) (*Swap, error)
	UpdateStatus(ctx context.Context, depositAddress string, status SwapStatus, txHash *string) error
	ListUnfinished(ctx context.Context) ([]*Swap, error)
}
