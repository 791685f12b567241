package domain

import "github.com/shopspring/decimal"

// AssetUseCase resolves human token symbols into chain-qualified identifiers
// and human amounts into integer base-unit strings.
type AssetUseCase interface {
	MapTokenToAsset(symbol, preferredChain string) string
	FormatAmountForAPI(amount decimal.Decimal, symbol string) (string, error)
	ListAssets() []Asset
}
