// Package tryon keeps the retired virtual try-on route answering so older
// clients get a readable notice instead of a 404.
package tryon

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	logger logger.ZapLogger
}

func NewHandler(log logger.ZapLogger) *Handler {
	return &Handler{logger: log}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/generate-tryon", h.Generate)
}

// Generate ignores the request body.
func (h *Handler) Generate(c *gin.Context) {
	h.logger.Info("deprecated try-on endpoint called", zap.String("client_ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{
		"deprecated": true,
		"message":    i18n.Message(c, i18n.MsgTryOnDeprecated),
	})
}
