package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeTemplate is one entry of the fixed trade grammar. Patterns anchor the
// entire normalized sentence (lowercase, single-spaced) and capture three
// groups: amount, first symbol, second symbol. The semantic role of the two
// symbols differs per template, so each template carries its own extractor.
type TradeTemplate struct {
	Name    TemplateName
	Pattern *regexp.Regexp
	Extract func(groups []string) (*TradeData, error)
	Example string
}

const (
	prefixPart = `(?:i want to |i'd like to |please )?`
	amountPart = `(\d+(?:\.\d+)?)`
	symbolPart = `([a-z]{2,10})`
)

// Templates is the ordered registry. Order is part of the contract: the first
// template whose pattern matches and whose extracted data validates wins.
// Built once at load, never mutated.
var Templates = []TradeTemplate{
	{
		Name:    TemplateBuy,
		Pattern: tradePattern("buy", "with|using"),
		// For BUY the first symbol is the asset being bought and the second
		// the asset paid with, the reverse of every other template.
		Extract: extractor(TemplateBuy, true),
		Example: "buy 100 BTC with USDT",
	},
	{
		Name:    TemplateSwap,
		Pattern: tradePattern("swap", "for|to"),
		Extract: extractor(TemplateSwap, false),
		Example: "swap 50 ETH for DAI",
	},
	{
		Name:    TemplateInvest,
		Pattern: tradePattern("invest", "into|in"),
		Extract: extractor(TemplateInvest, false),
		Example: "invest 2500 USDC into BTC",
	},
	{
		Name:    TemplateTrade,
		Pattern: tradePattern("trade", "for|to"),
		Extract: extractor(TemplateTrade, false),
		Example: "trade 10 NEAR for SOL",
	},
}

func tradePattern(verb, connectors string) *regexp.Regexp {
	return regexp.MustCompile(
		`^` + prefixPart + verb + ` ` + amountPart + ` ` + symbolPart +
			` (?:` + connectors + `) ` + symbolPart + `$`,
	)
}

func extractor(name TemplateName, firstIsDestination bool) func([]string) (*TradeData, error) {
	return func(groups []string) (*TradeData, error) {
		if len(groups) != 4 {
			return nil, fmt.Errorf("template %s: expected 3 capture groups, got %d", name, len(groups)-1)
		}
		amount, err := decimal.NewFromString(groups[1])
		if err != nil {
			return nil, fmt.Errorf("template %s: parse amount %q: %w", name, groups[1], err)
		}
		first := strings.ToUpper(groups[2])
		second := strings.ToUpper(groups[3])

		data := &TradeData{Amount: amount, TemplateUsed: name}
		if firstIsDestination {
			data.DestinationAsset, data.OriginAsset = first, second
		} else {
			data.OriginAsset, data.DestinationAsset = first, second
		}
		return data, nil
	}
}
