package assets

import (
	"github.com/shopspring/decimal"
	"github.com/veralabs/intentswap/src/assets/domain"
)

type AssetAdapter interface {
	MapTokenToAsset(symbol, preferredChain string) string
	FormatAmountForAPI(amount decimal.Decimal, symbol string) (string, error)
}

var _ AssetAdapter = (*AssetPort)(nil)

// init asset port
func NewAssetPort(assetService domain.AssetUseCase) AssetAdapter {
	return &AssetPort{assetService: assetService}
}

type AssetPort struct {
	assetService domain.AssetUseCase
}

func (a *AssetPort) MapTokenToAsset(symbol, preferredChain string) string {
	return a.assetService.MapTokenToAsset(symbol, preferredChain)
}

func (a *AssetPort) FormatAmountForAPI(amount decimal.Decimal, symbol string) (string, error) {
	return a.assetService.FormatAmountForAPI(amount, symbol)
}
