package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/subcategory"
	"github.com/fekuna/eyewear-storefront-service/internal/subcategory/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubcategoryHandler struct {
	uc     subcategory.UseCase
	logger logger.ZapLogger
}

func NewSubcategoryHandler(uc subcategory.UseCase, log logger.ZapLogger) *SubcategoryHandler {
	return &SubcategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SubcategoryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/subcategories", h.ListSubcategories)
	rg.POST("/subcategories", h.CreateSubcategory)
	rg.PUT("/subcategories/:id", h.UpdateSubcategory)
	rg.DELETE("/subcategories/:id", h.DeleteSubcategory)
}

func (h *SubcategoryHandler) ListSubcategories(c *gin.Context) {
	subs, err := h.uc.ListSubcategories(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.fail(c, "failed to list subcategories", err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	var input dto.SubcategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	sub, err := h.uc.CreateSubcategory(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to create subcategory", err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *SubcategoryHandler) UpdateSubcategory(c *gin.Context) {
	var input dto.SubcategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	sub, err := h.uc.UpdateSubcategory(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, "failed to update subcategory", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.uc.DeleteSubcategory(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete subcategory", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SubcategoryHandler) fail(c *gin.Context, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindStore {
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
	}
	response.Error(c, err)
}
