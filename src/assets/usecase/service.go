package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/veralabs/intentswap/src/assets/domain"
	"github.com/veralabs/intentswap/src/logger"
)

var _ domain.AssetUseCase = (*Service)(nil)

// maxBaseUnits caps formatted amounts at one billion whole units of an
// 18-decimal asset. An anti-footgun ceiling, not a protocol limit.
var maxBaseUnits = decimal.New(1, 27)

type Service struct {
	logger *logger.Logger
}

func NewService(logg *logger.Logger) *Service {
	return &Service{logger: logg}
}

// MapTokenToAsset resolves a symbol to its chain-qualified identifier. Lookup
// order: chain-prefixed key, bare symbol, then the default asset. Unknown
// tokens never fail here; they degrade to the default with a warning, and
// callers must treat that degradation as quote risk.
func (s *Service) MapTokenToAsset(symbol, preferredChain string) string {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	chain := strings.ToUpper(strings.TrimSpace(preferredChain))

	if chain != "" {
		if a, ok := domain.Catalog[chain+"-"+sym]; ok {
			return a.ID
		}
	}
	if a, ok := domain.Catalog[sym]; ok {
		return a.ID
	}
	s.logger.Warnf("unknown token %q (chain %q), falling back to default asset %s", symbol, preferredChain, domain.DefaultAssetID)
	return domain.DefaultAssetID
}

// FormatAmountForAPI converts a human amount into an integer base-unit string
// at the symbol's decimal precision.
func (s *Service) FormatAmountForAPI(amount decimal.Decimal, symbol string) (string, error) {
	if !amount.IsPositive() {
		return "", fmt.Errorf("amount must be a positive number, got %s", amount)
	}

	base := amount.Shift(int32(s.decimalsFor(symbol))).Truncate(0)
	if !base.IsPositive() {
		return "", fmt.Errorf("amount %s %s is too small to represent at that precision", amount, symbol)
	}
	if base.GreaterThan(maxBaseUnits) {
		return "", fmt.Errorf("amount %s %s exceeds the maximum supported size", amount, symbol)
	}
	return base.String(), nil
}

// ListAssets returns the catalog entries with chain-prefixed duplicates
// folded away, sorted by identifier for stable output.
func (s *Service) ListAssets() []domain.Asset {
	seen := make(map[string]bool, len(domain.Catalog))
	out := make([]domain.Asset, 0, len(domain.Catalog))
	for _, a := range domain.Catalog {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Service) decimalsFor(symbol string) int {
	if a, ok := domain.Catalog[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return a.Decimals
	}
	return domain.DefaultDecimals
}
