package handler

import (
	"net/http"

	"github.com/fekuna/eyewear-storefront-service/internal/display"
	"github.com/fekuna/eyewear-storefront-service/internal/display/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DisplayHandler struct {
	uc     display.UseCase
	logger logger.ZapLogger
}

func NewDisplayHandler(uc display.UseCase, log logger.ZapLogger) *DisplayHandler {
	return &DisplayHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DisplayHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/category-displays", h.ListCategoryDisplays)
	rg.POST("/category-displays", h.CreateCategoryDisplay)
	rg.PUT("/category-displays/:id", h.UpdateCategoryDisplay)
	rg.DELETE("/category-displays/:id", h.DeleteCategoryDisplay)

	rg.GET("/subcategory-displays", h.ListSubcategoryDisplays)
	rg.PUT("/subcategory-displays", h.SaveSubcategoryDisplay)
	rg.POST("/subcategory-displays", h.SaveSubcategoryDisplay)
	rg.DELETE("/subcategory-displays/:id", h.DeleteSubcategoryDisplay)
}

func (h *DisplayHandler) ListCategoryDisplays(c *gin.Context) {
	out, err := h.uc.ListCategoryDisplays(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.fail(c, "failed to list category displays", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DisplayHandler) CreateCategoryDisplay(c *gin.Context) {
	var input dto.CategoryDisplayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	d, err := h.uc.CreateCategoryDisplay(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to create category display", err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DisplayHandler) UpdateCategoryDisplay(c *gin.Context) {
	var input dto.CategoryDisplayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	d, err := h.uc.UpdateCategoryDisplay(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, "failed to update category display", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DisplayHandler) DeleteCategoryDisplay(c *gin.Context) {
	if err := h.uc.DeleteCategoryDisplay(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete category display", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DisplayHandler) ListSubcategoryDisplays(c *gin.Context) {
	out, err := h.uc.ListSubcategoryDisplays(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.fail(c, "failed to list subcategory displays", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DisplayHandler) SaveSubcategoryDisplay(c *gin.Context) {
	var input dto.SubcategoryDisplayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	d, err := h.uc.SaveSubcategoryDisplay(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to save subcategory display", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DisplayHandler) DeleteSubcategoryDisplay(c *gin.Context) {
	if err := h.uc.DeleteSubcategoryDisplay(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete subcategory display", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DisplayHandler) fail(c *gin.Context, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindStore {
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
	}
	response.Error(c, err)
}
