package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/analytics"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	uc     analytics.UseCase
	logger logger.ZapLogger
}

func NewAnalyticsHandler(uc analytics.UseCase, log logger.ZapLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AnalyticsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.GetAnalytics)
}

func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	out, err := h.uc.GetAnalytics(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute analytics", zap.Error(err))
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
