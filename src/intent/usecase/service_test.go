package usecase

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/veralabs/intentswap/src/intent/domain"
	"github.com/veralabs/intentswap/src/logger"
	swapusecase "github.com/veralabs/intentswap/src/swap/usecase"
)

func newTestService() *Service {
	return NewService(logger.New("dev"))
}

func TestDetectTradeIntentTemplates(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name     string
		message  string
		amount   string
		origin   string
		dest     string
		template domain.TemplateName
	}{
		{"buy minimal", "buy 100 btc with usdt", "100", "USDT", "BTC", domain.TemplateBuy},
		{"buy using", "buy 0.5 eth using dai", "0.5", "DAI", "ETH", domain.TemplateBuy},
		{"swap minimal", "swap 50 eth for dai", "50", "ETH", "DAI", domain.TemplateSwap},
		{"swap to", "swap 50 eth to dai", "50", "ETH", "DAI", domain.TemplateSwap},
		{"invest into with prefix", "i'd like to invest 2500 usdc into btc", "2500", "USDC", "BTC", domain.TemplateInvest},
		{"invest in", "invest 10 near in sol", "10", "NEAR", "SOL", domain.TemplateInvest},
		{"trade for", "trade 10 near for sol", "10", "NEAR", "SOL", domain.TemplateTrade},
		{"want to prefix", "i want to buy 100 btc with usdt", "100", "USDT", "BTC", domain.TemplateBuy},
		{"please prefix", "please swap 1 btc for eth", "1", "BTC", "ETH", domain.TemplateSwap},
		{"uppercase", "BUY 100 BTC WITH USDT", "100", "USDT", "BTC", domain.TemplateBuy},
		{"surrounding whitespace", "  swap 50 eth for dai  ", "50", "ETH", "DAI", domain.TemplateSwap},
		{"doubled internal whitespace", "swap  50   eth  for  dai", "50", "ETH", "DAI", domain.TemplateSwap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.DetectTradeIntent(tt.message)
			if !got.IsTradeIntent {
				t.Fatalf("DetectTradeIntent(%q) = no intent, want intent", tt.message)
			}
			want := decimal.RequireFromString(tt.amount)
			if !got.Data.Amount.Equal(want) {
				t.Errorf("amount = %s, want %s", got.Data.Amount, want)
			}
			if got.Data.OriginAsset != tt.origin {
				t.Errorf("origin = %s, want %s", got.Data.OriginAsset, tt.origin)
			}
			if got.Data.DestinationAsset != tt.dest {
				t.Errorf("destination = %s, want %s", got.Data.DestinationAsset, tt.dest)
			}
			if got.Data.TemplateUsed != tt.template {
				t.Errorf("template = %s, want %s", got.Data.TemplateUsed, tt.template)
			}
		})
	}
}

func TestDetectTradeIntentRejections(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name    string
		message string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"not a trade", "what is the weather today"},
		{"price question", "what is the price of bitcoin"},
		{"unsupported verb", "sell 100 btc for usdt"},
		{"missing amount", "buy btc with usdt"},
		{"missing second asset", "swap 50 eth"},
		{"identical assets", "buy 100 btc with btc"},
		{"identical assets other case", "swap 50 ETH for eth"},
		{"zero amount", "buy 0 btc with usdt"},
		{"negative amount", "swap -5 eth for dai"},
		{"digits in symbol", "swap 50 eth2 for dai"},
		{"symbol too short", "swap 50 e for dai"},
		{"symbol too long", "swap 50 abcdefghijk for dai"},
		{"wrong connector", "buy 100 btc for usdt"},
		{"trailing words", "swap 50 eth for dai please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.DetectTradeIntent(tt.message)
			if got.IsTradeIntent {
				t.Errorf("DetectTradeIntent(%q) detected intent %+v, want none", tt.message, got.Data)
			}
			if got.Data != nil {
				t.Errorf("negative result carries data: %+v", got.Data)
			}
		})
	}
}

func TestDetectTradeIntentIdempotent(t *testing.T) {
	s := newTestService()
	first := s.DetectTradeIntent("swap 50 eth for dai")
	second := s.DetectTradeIntent("swap 50 eth for dai")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated detection differs: %+v vs %+v", first, second)
	}
}

func TestMightBeTradeIntent(t *testing.T) {
	s := newTestService()

	positives := []string{
		"i want to buy something",
		"how do swaps work",  // contains "swap"
		"convert this for me",
		"exchange rates",
		"should i invest",
		"TRADE NOW",
	}
	for _, msg := range positives {
		if !s.MightBeTradeIntent(msg) {
			t.Errorf("MightBeTradeIntent(%q) = false, want true", msg)
		}
	}

	negatives := []string{
		"",
		"what is the price of bitcoin",
		"hello there",
	}
	for _, msg := range negatives {
		if s.MightBeTradeIntent(msg) {
			t.Errorf("MightBeTradeIntent(%q) = true, want false", msg)
		}
	}
}

func TestGenerateTradeIntentResponseRoundTrip(t *testing.T) {
	s := newTestService()
	data := &domain.TradeData{
		Amount:           decimal.RequireFromString("2500"),
		OriginAsset:      "USDC",
		DestinationAsset: "BTC",
		TemplateUsed:     domain.TemplateInvest,
	}

	out, err := s.GenerateTradeIntentResponse(data)
	if err != nil {
		t.Fatalf("GenerateTradeIntentResponse: %v", err)
	}

	idx := strings.Index(out, "{")
	if idx < 0 {
		t.Fatalf("response carries no JSON payload: %q", out)
	}
	var payload tradeIntentPayload
	if err := json.Unmarshal([]byte(out[idx:]), &payload); err != nil {
		t.Fatalf("unmarshal embedded payload: %v", err)
	}

	if payload.Intent != "trade_request" {
		t.Errorf("intent = %q, want trade_request", payload.Intent)
	}
	if payload.Status != "pending_confirmation" {
		t.Errorf("status = %q, want pending_confirmation", payload.Status)
	}
	if !payload.TradeDetails.Amount.Equal(data.Amount) {
		t.Errorf("amount = %s, want %s", payload.TradeDetails.Amount, data.Amount)
	}
	if payload.TradeDetails.OriginAsset != "USDC" || payload.TradeDetails.DestinationAsset != "BTC" {
		t.Errorf("assets = %s/%s, want USDC/BTC",
			payload.TradeDetails.OriginAsset, payload.TradeDetails.DestinationAsset)
	}
	if payload.TemplateUsed != domain.TemplateInvest {
		t.Errorf("template = %s, want INVEST", payload.TemplateUsed)
	}
	if len(payload.NextSteps) != 4 {
		t.Errorf("next_steps has %d entries, want 4", len(payload.NextSteps))
	}
	if payload.Metadata.Confidence != "high" || !payload.Metadata.ValidationPassed {
		t.Errorf("metadata = %+v", payload.Metadata)
	}
}

func TestGenerateTradeIntentResponseInvalid(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name string
		data *domain.TradeData
	}{
		{"nil", nil},
		{"empty", &domain.TradeData{}},
		{"zero amount", &domain.TradeData{
			OriginAsset: "ETH", DestinationAsset: "DAI", TemplateUsed: domain.TemplateSwap,
		}},
		{"identical assets", &domain.TradeData{
			Amount: decimal.NewFromInt(1), OriginAsset: "ETH", DestinationAsset: "eth",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.GenerateTradeIntentResponse(tt.data); err == nil {
				t.Errorf("want error for %s input", tt.name)
			}
		})
	}
}

type stubSwapAdapter struct {
	outcome *swapusecase.QuoteOutcome
}

func (a *stubSwapAdapter) GetQuoteForTradeIntent(ctx context.Context, data *domain.TradeData, opts swapusecase.QuoteOptions) *swapusecase.QuoteOutcome {
	return a.outcome
}

func TestHandleMessageNoIntent(t *testing.T) {
	s := newTestService()
	reply := s.HandleMessage(context.Background(), "what is the price of bitcoin", AssistantOptions{})
	if reply.IsTradeIntent {
		t.Error("reply marked as trade intent")
	}
	if reply.MightBeTrade {
		t.Error("price question should not loose-match")
	}
	if reply.Quote != nil {
		t.Error("no quote expected without intent")
	}
}

func TestHandleMessageWithQuoteFailure(t *testing.T) {
	s := newTestService()
	if err := s.SetAdapters(context.Background(), &stubSwapAdapter{
		outcome: &swapusecase.QuoteOutcome{Error: "Quoting service is unavailable", Code: "SERVICE_UNAVAILABLE"},
	}); err != nil {
		t.Fatalf("SetAdapters: %v", err)
	}

	reply := s.HandleMessage(context.Background(), "swap 50 eth for dai", AssistantOptions{RequestQuote: true})
	if !reply.IsTradeIntent {
		t.Fatal("intent not detected")
	}
	if reply.Quote == nil || reply.Quote.Success {
		t.Fatalf("quote = %+v, want failure passthrough", reply.Quote)
	}
	if !strings.Contains(reply.Reply, "Quote unavailable") {
		t.Errorf("reply lacks quote failure note: %q", reply.Reply)
	}
}
