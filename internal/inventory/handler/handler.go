package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/inventory"
	"github.com/fekuna/eyewear-storefront-service/internal/inventory/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/inventory/sell", h.Sell)
}

type sellRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func (h *InventoryHandler) Sell(c *gin.Context) {
	var req sellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	res, err := h.uc.Sell(c.Request.Context(), &dto.SellInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindStore {
			h.logger.Error("failed to sell product", zap.String("product_id", req.ProductID), zap.Error(err))
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
