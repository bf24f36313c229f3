package dto

import (
	"encoding/json"
	"io"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type ProductFilters struct {
	ParentCategory string
	Subcategory    string
	InStock        bool
}

type ProductInput struct {
	NameAr         string          `json:"name_ar"`
	NameEn         string          `json:"name_en"`
	DescriptionAr  string          `json:"description_ar"`
	DescriptionEn  string          `json:"description_en"`
	Price          json.RawMessage `json:"price"`
	Quantity       *int            `json:"quantity"`
	ParentCategory string          `json:"parent_category"`
	Subcategory    string          `json:"subcategory"`
	Images         []string        `json:"images"` // create only; updates keep the stored list
}

type ImageUpload struct {
	ProductID   string
	FileName    string
	ContentType string
	Body        io.Reader
}

type ImageResult struct {
	Name    string         `json:"name"`
	URL     string         `json:"url"`
	Product *model.Product `json:"product"`
}

type DeleteImagesInput struct {
	Names []string `json:"names"`
}
