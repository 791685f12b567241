package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veralabs/intentswap/src/intent/usecase"
	"github.com/veralabs/intentswap/src/logger"
)

// Handler binds usecase + logger
type Handler struct {
	service *usecase.Service
	logger  *logger.Logger
}

func NewHandler(s *usecase.Service, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	v1.POST("/intent/detect", h.DetectIntent)
	v1.POST("/intent/hint", h.Hint)
	v1.POST("/assistant/message", h.AssistantMessage)
}

// DetectIntent godoc
//
//	@Summary		Detect trade intent
//	@Description	Parse a free-text message against the trade templates
//	@Tags			intent
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DetectIntentRequestBody	true	"Request body"
//	@Success		200	{object}	DetectIntentResponseBody
//	@Failure		400	{object}	object{error=string}
//	@Router			/api/v1/intent/detect [post]
func (h *Handler) DetectIntent(c *gin.Context) {
	var req DetectIntentRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("DetectIntent err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.service.DetectTradeIntent(req.Message)
	c.JSON(http.StatusOK, DetectIntentResponseBody{
		IsTradeIntent: result.IsTradeIntent,
		Data:          TradeDataDtoFromDomain(result.Data),
	})
}

// Hint godoc
//
//	@Summary		Loose trade-intent hint
//	@Description	Cheap keyword scan for possible trade intent, for UI hints only
//	@Tags			intent
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DetectIntentRequestBody	true	"Request body"
//	@Success		200	{object}	HintResponseBody
//	@Failure		400	{object}	object{error=string}
//	@Router			/api/v1/intent/hint [post]
func (h *Handler) Hint(c *gin.Context) {
	var req DetectIntentRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Hint err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, HintResponseBody{MightBeTrade: h.service.MightBeTradeIntent(req.Message)})
}

// AssistantMessage godoc
//
//	@Summary		Run the full assistant pipeline
//	@Description	Detect trade intent, generate the response, and optionally fetch a quote
//	@Tags			intent
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AssistantMessageRequestBody	true	"Request body"
//	@Success		200	{object}	usecase.AssistantReply
//	@Failure		400	{object}	object{error=string}
//	@Router			/api/v1/assistant/message [post]
func (h *Handler) AssistantMessage(c *gin.Context) {
	var req AssistantMessageRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("AssistantMessage err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply := h.service.HandleMessage(c.Request.Context(), req.Message, usecase.AssistantOptions{
		RequestQuote:      req.RequestQuote,
		ConnectedWallet:   req.ConnectedWallet,
		PreferredChain:    req.PreferredChain,
		SlippageTolerance: req.SlippageTolerance,
		Dry:               req.Dry,
	})
	c.JSON(http.StatusOK, reply)
}
