package usecase

import (
	"time"

	intentdomain "github.com/veralabs/intentswap/src/intent/domain"
	"github.com/veralabs/intentswap/src/swap/domain"
)

// QuoteOptions are caller-supplied knobs. Zero values fall back to configured
// defaults. RefundTo/Recipient are pointers so an explicitly-set empty string
// is distinguishable from "not provided" and survives into the payload.
type QuoteOptions struct {
	SlippageTolerance int // basis points
	Dry               bool
	RefundTo          *string
	Recipient         *string
	PreferredChain    string
	ConnectedWallet   string
}

// CreateQuoteRequest assembles a schema-valid quote request from detected
// trade data plus caller options.
//
// BUY is the one asymmetric template: the user fixes how much they receive,
// so the request is EXACT_OUTPUT and the amount is denominated in the
// destination asset. Every other template spends a fixed amount of the
// origin asset (EXACT_INPUT).
func (s *Service) CreateQuoteRequest(data *intentdomain.TradeData, opts QuoteOptions) (*domain.QuoteRequest, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	slippage := opts.SlippageTolerance
	if slippage == 0 {
		slippage = s.cfg.SlippageTolerance
	}
	chain := opts.PreferredChain
	if chain == "" {
		chain = s.cfg.PreferredChain
	}
	wallet := opts.ConnectedWallet
	if wallet == "" {
		wallet = s.cfg.FallbackWallet
	}
	refundTo := opts.RefundTo
	if refundTo == nil {
		refundTo = &wallet
	}
	recipient := opts.Recipient
	if recipient == nil {
		recipient = &wallet
	}

	swapType := domain.SwapExactInput
	amountSymbol := data.OriginAsset
	if data.TemplateUsed == intentdomain.TemplateBuy {
		swapType = domain.SwapExactOutput
		amountSymbol = data.DestinationAsset
	}

	amount, err := s.assets.FormatAmountForAPI(data.Amount, amountSymbol)
	if err != nil {
		return nil, err
	}

	return &domain.QuoteRequest{
		Dry:               opts.Dry,
		SwapType:          swapType,
		SlippageTolerance: slippage,
		OriginAsset:       s.assets.MapTokenToAsset(data.OriginAsset, chain),
		DepositType:       domain.SideOriginChain,
		DestinationAsset:  s.assets.MapTokenToAsset(data.DestinationAsset, chain),
		Amount:            amount,
		RefundTo:          refundTo,
		RefundType:        domain.SideOriginChain,
		Recipient:         recipient,
		RecipientType:     domain.SideDestinationChain,
		Deadline:          time.Now().UTC().Add(s.cfg.Deadline).Format(time.RFC3339),
	}, nil
}
