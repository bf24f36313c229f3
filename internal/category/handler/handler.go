package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/category"
	"github.com/fekuna/eyewear-storefront-service/internal/category/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.POST("/categories", h.CreateCategory)
	rg.PUT("/categories/:id", h.UpdateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.uc.ListCategories(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.fail(c, "failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input dto.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to create category", err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var input dto.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, "failed to update category", err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.uc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CategoryHandler) fail(c *gin.Context, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindStore {
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
	}
	response.Error(c, err)
}
