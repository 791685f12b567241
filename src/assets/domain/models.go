package domain

// Asset describes one supported token on one chain, keyed by either a
// chain-prefixed symbol ("ETH-USDT") or a bare symbol ("USDT").
type Asset struct {
	Symbol   string `json:"symbol"`
	Chain    string `json:"chain"`
	ID       string `json:"id"` // chain-qualified identifier understood by the quoting service
	Decimals int    `json:"decimals"`
}

// DefaultAssetID is the identifier unknown symbols degrade to. Callers get a
// warning log instead of an error, so the degradation is visible but never
// blocks a quote attempt.
const DefaultAssetID = "nep141:wrap.near"

// Catalog is the static symbol lookup table. Chain-prefixed keys take
// precedence over bare symbols. Built once at load, never mutated.
var Catalog = map[string]Asset{
	"BTC":      {Symbol: "BTC", Chain: "btc", ID: "nep141:btc.omft.near", Decimals: 8},
	"ETH":      {Symbol: "ETH", Chain: "eth", ID: "nep141:eth.omft.near", Decimals: 18},
	"ETH-ETH":  {Symbol: "ETH", Chain: "eth", ID: "nep141:eth.omft.near", Decimals: 18},
	"USDT":     {Symbol: "USDT", Chain: "eth", ID: "nep141:eth-0xdac17f958d2ee523a2206206994597c13d831ec7.omft.near", Decimals: 6},
	"ETH-USDT": {Symbol: "USDT", Chain: "eth", ID: "nep141:eth-0xdac17f958d2ee523a2206206994597c13d831ec7.omft.near", Decimals: 6},
	"USDC":     {Symbol: "USDC", Chain: "eth", ID: "nep141:eth-0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48.omft.near", Decimals: 6},
	"ETH-USDC": {Symbol: "USDC", Chain: "eth", ID: "nep141:eth-0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48.omft.near", Decimals: 6},
	"ARB-USDC": {Symbol: "USDC", Chain: "arb", ID: "nep141:arb-0xaf88d065e77c8cc2239327c5edb3a432268e5831.omft.near", Decimals: 6},
	"DAI":      {Symbol: "DAI", Chain: "eth", ID: "nep141:eth-0x6b175474e89094c44da98b954eedeac495271d0f.omft.near", Decimals: 18},
	"NEAR":     {Symbol: "NEAR", Chain: "near", ID: "nep141:wrap.near", Decimals: 24},
	"SOL":      {Symbol: "SOL", Chain: "sol", ID: "nep141:sol.omft.near", Decimals: 9},
	"XRP":      {Symbol: "XRP", Chain: "xrp", ID: "nep141:xrp.omft.near", Decimals: 6},
	"DOGE":     {Symbol: "DOGE", Chain: "doge", ID: "nep141:doge.omft.near", Decimals: 8},
}

// DefaultDecimals is assumed for symbols absent from the catalog.
const DefaultDecimals = 18
