package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/veralabs/intentswap/src/logger"
	"github.com/veralabs/intentswap/src/swap/usecase"
)

// Handler binds usecase + tracker + logger. Active tracking handles are kept
// per deposit address so tracking can be stopped over the API.
type Handler struct {
	service *usecase.Service
	tracker *usecase.Tracker
	logger  *logger.Logger

	mu      sync.Mutex
	handles map[string]*usecase.TrackHandle
}

func NewHandler(s *usecase.Service, t *usecase.Tracker, l *logger.Logger) *Handler {
	return &Handler{
		service: s,
		tracker: t,
		logger:  l,
		handles: make(map[string]*usecase.TrackHandle),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	v1.POST("/quote", h.CreateQuote)
	v1.GET("/swaps/:address/status", h.SwapStatus)
	v1.POST("/swaps/:address/submit", h.SubmitDeposit)
	v1.POST("/swaps/:address/track", h.StartTracking)
	v1.DELETE("/swaps/:address/track", h.StopTracking)
}

// CreateQuote godoc
//
//	@Summary		Request a swap quote
//	@Description	Build a quote request from trade data and price it via the quoting service
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateQuoteRequestBody	true	"Request body"
//	@Success		200	{object}	usecase.DisplayQuote
//	@Failure		400	{object}	object{error=string}
//	@Router			/api/v1/quote [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("CreateQuote err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// Quote failures are part of the response contract, not HTTP errors.
	outcome := h.service.GetQuoteForTradeIntent(c.Request.Context(), req.toTradeData(), req.toOptions())
	c.JSON(http.StatusOK, usecase.FormatQuoteForDisplay(outcome))
}

// SwapStatus godoc
//
//	@Summary		Execution status for a deposit address
//	@Tags			swap
//	@Produce		json
//	@Param			address	path		string	true	"Deposit address"
//	@Success		200	{object}	StatusResponseBody
//	@Router			/api/v1/swaps/{address}/status [get]
func (h *Handler) SwapStatus(c *gin.Context) {
	out := h.service.GetSwapStatus(c.Request.Context(), c.Param("address"))
	c.JSON(http.StatusOK, StatusResponseFromOutcome(out))
}

// SubmitDeposit godoc
//
//	@Summary		Report the deposit transaction for a swap
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string						true	"Deposit address"
//	@Param			request	body		SubmitDepositRequestBody	true	"Request body"
//	@Success		200	{object}	StatusResponseBody
//	@Failure		400	{object}	object{error=string}
//	@Router			/api/v1/swaps/{address}/submit [post]
func (h *Handler) SubmitDeposit(c *gin.Context) {
	var req SubmitDepositRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("SubmitDeposit err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	out := h.service.SubmitDepositTx(c.Request.Context(), c.Param("address"), req.TxHash)
	c.JSON(http.StatusOK, StatusResponseFromOutcome(out))
}

// StartTracking godoc
//
//	@Summary		Start polling a swap until it reaches a terminal state
//	@Tags			swap
//	@Produce		json
//	@Param			address	path		string	true	"Deposit address"
//	@Success		202	{object}	TrackResponseBody
//	@Router			/api/v1/swaps/{address}/track [post]
func (h *Handler) StartTracking(c *gin.Context) {
	address := c.Param("address")

	h.mu.Lock()
	if _, running := h.handles[address]; running {
		h.mu.Unlock()
		c.JSON(http.StatusAccepted, TrackResponseBody{DepositAddress: address, Tracking: true})
		return
	}

	// Tracking outlives the request; updates land in the swap repository and
	// are read back via the status endpoint.
	handle := h.tracker.Track(context.Background(), address, func(u usecase.TrackUpdate) {
		if u.Terminal {
			h.logger.Infof("swap %s terminal after %d attempts: %s (%s)", u.DepositAddress, u.Attempt, u.Status, u.Message)
			h.mu.Lock()
			delete(h.handles, u.DepositAddress)
			h.mu.Unlock()
		}
	})
	h.handles[address] = handle
	h.mu.Unlock()

	c.JSON(http.StatusAccepted, TrackResponseBody{DepositAddress: address, Tracking: true})
}

// StopTracking godoc
//
//	@Summary		Stop polling a swap
//	@Tags			swap
//	@Produce		json
//	@Param			address	path		string	true	"Deposit address"
//	@Success		200	{object}	TrackResponseBody
//	@Router			/api/v1/swaps/{address}/track [delete]
func (h *Handler) StopTracking(c *gin.Context) {
	address := c.Param("address")

	h.mu.Lock()
	handle, ok := h.handles[address]
	if ok {
		delete(h.handles, address)
	}
	h.mu.Unlock()

	if ok {
		handle.Stop()
	}
	c.JSON(http.StatusOK, TrackResponseBody{DepositAddress: address, Tracking: false})
}
