package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veralabs/intentswap/src/Infrastructure/oneclick"
	"github.com/veralabs/intentswap/src/config"
	intentdomain "github.com/veralabs/intentswap/src/intent/domain"
	"github.com/veralabs/intentswap/src/logger"
	assetsadapter "github.com/veralabs/intentswap/src/swap/adapter/assets"
	"github.com/veralabs/intentswap/src/swap/domain"
)

type Service struct {
	quotes domain.QuoteRepository
	swaps  domain.SwapRepository
	client *oneclick.Client
	assets assetsadapter.AssetAdapter
	logger *logger.Logger
	cfg    config.QuoteConfig
}

func NewService(
	quotes domain.QuoteRepository,
	swaps domain.SwapRepository,
	client *oneclick.Client,
	assets assetsadapter.AssetAdapter,
	logg *logger.Logger,
	cfg config.QuoteConfig,
) *Service {
	return &Service{
		quotes: quotes,
		swaps:  swaps,
		client: client,
		assets: assets,
		logger: logg,
		cfg:    cfg,
	}
}

// QuoteOutcome is the tagged result of a quote attempt. The orchestrator
// never returns an error: every failure path lands here with a Code, so
// callers need no exception-style handling for expected failure modes.
type QuoteOutcome struct {
	Success   bool
	Quote     *oneclick.QuoteResponse
	Request   *domain.QuoteRequest
	TradeData *intentdomain.TradeData
	Error     string
	Code      domain.ErrorCode
	Details   string
}

// GetQuoteForTradeIntent builds the request, calls the quoting service, and
// classifies any failure by HTTP status into a typed outcome.
func (s *Service) GetQuoteForTradeIntent(ctx context.Context, data *intentdomain.TradeData, opts QuoteOptions) *QuoteOutcome {
	req, err := s.CreateQuoteRequest(data, opts)
	if err != nil {
		return &QuoteOutcome{
			TradeData: data,
			Error:     err.Error(),
			Code:      domain.CodeInvalidRequest,
		}
	}

	resp, err := s.client.RequestQuote(ctx, req.Payload())
	if err != nil {
		return s.classifyQuoteFailure(err, req, data)
	}

	s.recordQuote(ctx, req, resp, data)
	return &QuoteOutcome{Success: true, Quote: resp, Request: req, TradeData: data}
}

func (s *Service) classifyQuoteFailure(err error, req *domain.QuoteRequest, data *intentdomain.TradeData) *QuoteOutcome {
	out := &QuoteOutcome{
		Request:   req,
		TradeData: data,
		Code:      domain.CodeUnknownError,
		Error:     "Unexpected error requesting quote",
	}

	var se *oneclick.StatusError
	if !errors.As(err, &se) {
		out.Details = err.Error()
		return out
	}

	out.Details = se.Detail
	switch se.StatusCode {
	case http.StatusUnauthorized:
		out.Code = domain.CodeAuthError
		out.Error = "Authentication with the quoting service failed"
	case http.StatusBadRequest:
		out.Code = domain.CodeInvalidRequest
		out.Error = fmt.Sprintf("Quoting service rejected the request: %s", se.Detail)
	case http.StatusNotFound:
		out.Code = domain.CodeServiceUnavailable
		out.Error = "Quoting service is unavailable"
	default:
		out.Error = fmt.Sprintf("Quoting service returned status %d", se.StatusCode)
	}
	return out
}

// recordQuote persists the priced quote and, for wet quotes with a deposit
// address, opens a pending swap record. Persistence failures are logged but
// never break the user flow.
func (s *Service) recordQuote(ctx context.Context, req *domain.QuoteRequest, resp *oneclick.QuoteResponse, data *intentdomain.TradeData) {
	deadline, err := time.Parse(time.RFC3339, resp.Quote.Deadline)
	if err != nil {
		deadline = time.Time{}
	}

	now := time.Now().UTC()
	iq := &domain.IssuedQuote{
		ID:               uuid.New().String(),
		CorrelationID:    resp.CorrelationID,
		DepositAddress:   resp.Quote.DepositAddress,
		OriginAsset:      req.OriginAsset,
		DestinationAsset: req.DestinationAsset,
		AmountIn:         resp.Quote.AmountIn,
		AmountOut:        resp.Quote.AmountOut,
		SwapType:         req.SwapType,
		TemplateUsed:     string(data.TemplateUsed),
		Deadline:         deadline,
		CreatedAt:        now,
	}
	if err := s.quotes.SaveQuote(ctx, iq); err != nil {
		s.logger.Errorf("save quote failed: %v", err)
	}

	if req.Dry || resp.Quote.DepositAddress == "" {
		return
	}
	swap := &domain.Swap{
		DepositAddress:   resp.Quote.DepositAddress,
		CorrelationID:    resp.CorrelationID,
		Status:           domain.SwapPending,
		OriginAsset:      req.OriginAsset,
		DestinationAsset: req.DestinationAsset,
		AmountIn:         resp.Quote.AmountIn,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := s.swaps.SaveSwap(ctx, swap); err != nil {
		s.logger.Errorf("save swap failed: %v", err)
	}
}

// StatusOutcome is the tagged result of a status or submit call.
type StatusOutcome struct {
	Success        bool
	DepositAddress string
	Status         domain.SwapStatus
	Raw            *oneclick.ExecutionStatus
	Error          string
	Code           domain.ErrorCode
}

// GetSwapStatus polls the execution status for a deposit address and advances
// the persisted swap record.
func (s *Service) GetSwapStatus(ctx context.Context, depositAddress string) *StatusOutcome {
	raw, err := s.client.GetExecutionStatus(ctx, depositAddress)
	if err != nil {
		return &StatusOutcome{
			DepositAddress: depositAddress,
			Error:          err.Error(),
			Code:           domain.CodeStatusError,
		}
	}

	status := mapExecutionStatus(raw.Status)
	if err := s.swaps.UpdateStatus(ctx, depositAddress, status, nil); err != nil {
		s.logger.Errorf("update swap %s status failed: %v", depositAddress, err)
	}
	return &StatusOutcome{
		Success:        true,
		DepositAddress: depositAddress,
		Status:         status,
		Raw:            raw,
	}
}

// SubmitDepositTx reports the deposit transaction hash to the quoting service
// so execution pickup does not wait for chain scanning.
func (s *Service) SubmitDepositTx(ctx context.Context, depositAddress, txHash string) *StatusOutcome {
	raw, err := s.client.SubmitDepositTx(ctx, depositAddress, txHash)
	if err != nil {
		return &StatusOutcome{
			DepositAddress: depositAddress,
			Error:          err.Error(),
			Code:           domain.CodeSubmitError,
		}
	}

	status := mapExecutionStatus(raw.Status)
	if err := s.swaps.UpdateStatus(ctx, depositAddress, status, &txHash); err != nil {
		s.logger.Errorf("update swap %s after submit failed: %v", depositAddress, err)
	}
	return &StatusOutcome{
		Success:        true,
		DepositAddress: depositAddress,
		Status:         status,
		Raw:            raw,
	}
}

// SweepUnfinishedSwaps advances every persisted non-terminal swap. Run from
// the cron schedule under the cron lock.
func (s *Service) SweepUnfinishedSwaps(ctx context.Context) {
	swaps, err := s.swaps.ListUnfinished(ctx)
	if err != nil {
		s.logger.Errorf("list unfinished swaps failed: %v", err)
		return
	}
	for _, sw := range swaps {
		out := s.GetSwapStatus(ctx, sw.DepositAddress)
		if !out.Success {
			s.logger.Warnf("sweep: status check for %s failed: %s", sw.DepositAddress, out.Error)
			continue
		}
		if out.Status != sw.Status {
			s.logger.Infof("swap %s advanced %s -> %s", sw.DepositAddress, sw.Status, out.Status)
		}
	}
}

// mapExecutionStatus narrows the service's status strings into the internal
// state machine. Unknown values are treated as still pending.
func mapExecutionStatus(raw string) domain.SwapStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PROCESSING":
		return domain.SwapProcessing
	case "SUCCESS", "COMPLETE", "COMPLETED":
		return domain.SwapComplete
	case "FAILED":
		return domain.SwapFailed
	case "REFUNDED":
		return domain.SwapRefunded
	default:
		return domain.SwapPending
	}
}
