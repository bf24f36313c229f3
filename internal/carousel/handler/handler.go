package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/carousel"
	"github.com/fekuna/eyewear-storefront-service/internal/carousel/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CarouselHandler struct {
	uc     carousel.UseCase
	logger logger.ZapLogger
}

func NewCarouselHandler(uc carousel.UseCase, log logger.ZapLogger) *CarouselHandler {
	return &CarouselHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CarouselHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/carousel-slides", h.ListSlides)
	rg.POST("/carousel-slides", h.CreateSlide)
	rg.PUT("/carousel-slides/:id", h.UpdateSlide)
	rg.DELETE("/carousel-slides/:id", h.DeleteSlide)
}

func (h *CarouselHandler) ListSlides(c *gin.Context) {
	slides, err := h.uc.ListSlides(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.fail(c, "failed to list carousel slides", err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (h *CarouselHandler) CreateSlide(c *gin.Context) {
	var input dto.SlideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	slide, err := h.uc.CreateSlide(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to create carousel slide", err)
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *CarouselHandler) UpdateSlide(c *gin.Context) {
	var input dto.SlideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	slide, err := h.uc.UpdateSlide(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, "failed to update carousel slide", err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *CarouselHandler) DeleteSlide(c *gin.Context) {
	if err := h.uc.DeleteSlide(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete carousel slide", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CarouselHandler) fail(c *gin.Context, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindStore {
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
	}
	response.Error(c, err)
}
