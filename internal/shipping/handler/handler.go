package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/shipping"
	"github.com/fekuna/eyewear-storefront-service/internal/shipping/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShippingHandler struct {
	uc     shipping.UseCase
	logger logger.ZapLogger
}

func NewShippingHandler(uc shipping.UseCase, log logger.ZapLogger) *ShippingHandler {
	return &ShippingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ShippingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/shipping-cities", h.ListCities)
	rg.POST("/shipping-cities", h.CreateCity)
	rg.PUT("/shipping-cities/:id", h.UpdateCity)
	rg.DELETE("/shipping-cities/:id", h.DeleteCity)
}

func (h *ShippingHandler) ListCities(c *gin.Context) {
	cities, err := h.uc.ListCities(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.fail(c, "failed to list shipping cities", err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *ShippingHandler) CreateCity(c *gin.Context) {
	var input dto.ShippingCityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	city, err := h.uc.CreateCity(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to create shipping city", err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

func (h *ShippingHandler) UpdateCity(c *gin.Context) {
	var input dto.ShippingCityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	city, err := h.uc.UpdateCity(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, "failed to update shipping city", err)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *ShippingHandler) DeleteCity(c *gin.Context) {
	if err := h.uc.DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete shipping city", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ShippingHandler) fail(c *gin.Context, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindStore {
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
	}
	response.Error(c, err)
}
