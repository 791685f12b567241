package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/veralabs/intentswap/src/assets/domain"
	"github.com/veralabs/intentswap/src/logger"
)

// Handler binds usecase + logger
type Handler struct {
	service domain.AssetUseCase
	logger  *logger.Logger
}

func NewHandler(s domain.AssetUseCase, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/assets", h.ListAssets)
}

// ListAssetsResponse lists supported assets
// swagger:model ListAssetsResponse
type ListAssetsResponse struct {
	Assets []domain.Asset `json:"assets"`
}

// ListAssets godoc
//
//	@Summary		List supported assets
//	@Description	Get the supported token catalog with chain-qualified identifiers and decimals
//	@Tags			assets
//	@Produce		json
//	@Success		200	{object}	ListAssetsResponse
//	@Router			/api/v1/assets [get]
func (h *Handler) ListAssets(c *gin.Context) {
	c.JSON(http.StatusOK, ListAssetsResponse{Assets: h.service.ListAssets()})
}
