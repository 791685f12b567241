package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	swapadapter "github.com/veralabs/intentswap/src/intent/adapter/swap"
	"github.com/veralabs/intentswap/src/intent/domain"
	"github.com/veralabs/intentswap/src/logger"
	swapusecase "github.com/veralabs/intentswap/src/swap/usecase"
)

type Service struct {
	logger *logger.Logger
	swaps  swapadapter.SwapAdapter
}

func NewService(logg *logger.Logger) *Service {
	return &Service{logger: logg}
}

// SetAdapters wires the swap pipeline for the assistant flow.
func (s *Service) SetAdapters(ctx context.Context, swaps swapadapter.SwapAdapter) error {
	s.swaps = swaps
	return nil
}

// DetectTradeIntent parses a free-text message against the template registry.
// A failed parse is a negative result, never an error.
func (s *Service) DetectTradeIntent(message string) domain.TradeIntentResult {
	norm := normalize(message)
	if norm == "" {
		return domain.TradeIntentResult{}
	}

	for _, tpl := range domain.Templates {
		groups := tpl.Pattern.FindStringSubmatch(norm)
		if groups == nil {
			continue
		}
		data, err := tpl.Extract(groups)
		if err != nil {
			// A broken extraction skips the template, not the whole detection.
			s.logger.Warnf("template %s extraction failed: %v", tpl.Name, err)
			continue
		}
		if err := data.Validate(); err != nil {
			continue
		}
		return domain.TradeIntentResult{IsTradeIntent: true, Data: data}
	}
	return domain.TradeIntentResult{}
}

// looseKeywords drive the cheap pre-filter. Substring matches only: this has
// a far higher false-positive rate than the detector and must never gate
// execution, only UI hints.
var looseKeywords = []string{"buy", "swap", "trade", "invest", "exchange", "convert"}

// MightBeTradeIntent is a keyword scan used to hint at possible trade intent
// before full detection runs.
func (s *Service) MightBeTradeIntent(message string) bool {
	if message == "" {
		return false
	}
	lower := strings.ToLower(message)
	for _, kw := range looseKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

type tradeDetails struct {
	OriginAsset      string          `json:"origin_asset"`
	DestinationAsset string          `json:"destination_asset"`
	Amount           decimal.Decimal `json:"amount"`
}

type payloadMetadata struct {
	ProcessedAt      string `json:"processed_at"`
	Confidence       string `json:"confidence"`
	ValidationPassed bool   `json:"validation_passed"`
}

// tradeIntentPayload is the structured payload embedded in every generated
// response, consumed by downstream confirmation flows.
type tradeIntentPayload struct {
	Intent       string              `json:"intent"`
	Timestamp    string              `json:"timestamp"`
	TradeDetails tradeDetails        `json:"trade_details"`
	Status       string              `json:"status"`
	Message      string              `json:"message"`
	TemplateUsed domain.TemplateName `json:"template_used"`
	NextSteps    []string            `json:"next_steps"`
	Metadata     payloadMetadata     `json:"metadata"`
}

var nextSteps = []string{
	"Review the trade details above.",
	"Request a quote to see the expected output amount.",
	"Send the deposit to the address returned with the quote.",
	"Track the swap status until it reaches a terminal state.",
}

// GenerateTradeIntentResponse renders validated trade data into a
// human-readable summary with an embedded structured payload. Calling it with
// unvalidated data is a programmer error and returns ErrInvalidTradeData.
func (s *Service) GenerateTradeIntentResponse(data *domain.TradeData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	payload := tradeIntentPayload{
		Intent:    "trade_request",
		Timestamp: now,
		TradeDetails: tradeDetails{
			OriginAsset:      data.OriginAsset,
			DestinationAsset: data.DestinationAsset,
			Amount:           data.Amount,
		},
		Status: "pending_confirmation",
		Message: fmt.Sprintf("You want to exchange %s %s for %s.",
			data.Amount, data.OriginAsset, data.DestinationAsset),
		TemplateUsed: data.TemplateUsed,
		NextSteps:    nextSteps,
		Metadata: payloadMetadata{
			ProcessedAt:      now,
			Confidence:       "high",
			ValidationPassed: true,
		},
	}

	js, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal trade intent payload: %w", err)
	}

	summary := fmt.Sprintf("Trade request detected (%s): exchange %s %s for %s.",
		data.TemplateUsed, data.Amount, data.OriginAsset, data.DestinationAsset)
	return summary + "\n\n" + string(js), nil
}

// AssistantOptions configure the combined assistant flow.
type AssistantOptions struct {
	RequestQuote      bool
	ConnectedWallet   string
	PreferredChain    string
	SlippageTolerance int
	Dry               bool
}

// AssistantReply is the combined detection + quoting response shown to users.
type AssistantReply struct {
	IsTradeIntent bool                      `json:"is_trade_intent"`
	MightBeTrade  bool                      `json:"might_be_trade"`
	Reply         string                    `json:"reply"`
	Data          *domain.TradeData         `json:"data,omitempty"`
	Quote         *swapusecase.DisplayQuote `json:"quote,omitempty"`
}

// HandleMessage runs the full pipeline: detect, generate the base response,
// and optionally fetch and format a quote.
func (s *Service) HandleMessage(ctx context.Context, message string, opts AssistantOptions) AssistantReply {
	mightBe := s.MightBeTradeIntent(message)

	result := s.DetectTradeIntent(message)
	if !result.IsTradeIntent {
		reply := "I couldn't find a trade request in that message."
		if mightBe {
			reply += fmt.Sprintf(" If you meant to trade, try a sentence like %q.", domain.Templates[0].Example)
		}
		return AssistantReply{MightBeTrade: mightBe, Reply: reply}
	}

	base, err := s.GenerateTradeIntentResponse(result.Data)
	if err != nil {
		s.logger.Errorf("generate response for detected intent failed: %v", err)
		return AssistantReply{MightBeTrade: mightBe, Reply: "Something went wrong processing that trade request."}
	}

	reply := AssistantReply{
		IsTradeIntent: true,
		MightBeTrade:  mightBe,
		Reply:         base,
		Data:          result.Data,
	}

	if !opts.RequestQuote || s.swaps == nil {
		return reply
	}

	outcome := s.swaps.GetQuoteForTradeIntent(ctx, result.Data, swapusecase.QuoteOptions{
		SlippageTolerance: opts.SlippageTolerance,
		Dry:               opts.Dry,
		PreferredChain:    opts.PreferredChain,
		ConnectedWallet:   opts.ConnectedWallet,
	})
	display := swapusecase.FormatQuoteForDisplay(outcome)
	reply.Quote = &display

	if display.Success {
		reply.Reply += fmt.Sprintf(
			"\n\nQuote: send %s to %s to receive %s (min %s). Estimated time %s, expires %s.",
			display.AmountIn, display.DepositAddress, display.AmountOut,
			display.MinAmountOut, display.TimeEstimate, display.Deadline)
	} else {
		reply.Reply += "\n\nQuote unavailable: " + display.Error
	}
	return reply
}

// normalize lowercases, trims, and collapses whitespace runs so irregular
// spacing never blocks a well-formed sentence.
func normalize(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(message))), " ")
}
