package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/eyewear-storefront-service/internal/product"
	"github.com/fekuna/eyewear-storefront-service/internal/product/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/search", h.SearchProducts)
	rg.GET("/products/:id", h.GetProduct)
	rg.POST("/products", h.CreateProduct)
	rg.PUT("/products/:id", h.UpdateProduct)
	rg.DELETE("/products/:id", h.DeleteProduct)
	rg.POST("/products/:id/images", h.UploadImage)
	rg.DELETE("/product-images", h.DeleteImages)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	filters := &dto.ProductFilters{
		ParentCategory: c.Query("parent_category"),
		Subcategory:    c.Query("subcategory"),
		InStock:        c.Query("in_stock") == "true",
	}

	products, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, "failed to list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	products, err := h.uc.SearchProducts(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		h.fail(c, "failed to search products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "failed to get product", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input dto.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, "failed to create product", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input dto.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.fail(c, "failed to update product", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgFileRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgFileRequired)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res, err := h.uc.UploadImage(c.Request.Context(), &dto.ImageUpload{
		ProductID:   c.Param("id"),
		FileName:    fh.Filename,
		ContentType: contentType,
		Body:        f,
	})
	if err != nil {
		h.fail(c, "failed to upload product image", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ProductHandler) DeleteImages(c *gin.Context) {
	var input dto.DeleteImagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Message(c, http.StatusBadRequest, i18n.MsgInvalidRequest)
		return
	}

	if err := h.uc.DeleteImages(c.Request.Context(), input.Names); err != nil {
		h.fail(c, "failed to delete product images", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) fail(c *gin.Context, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindStore {
		h.logger.Error(msg, zap.String("id", c.Param("id")), zap.Error(err))
	}
	response.Error(c, err)
}
