package dto

import "github.com/fekuna/eyewear-storefront-service/internal/model"

// SellResult.Product is nil when the sale succeeded but the read-back failed.
type SellResult struct {
	Success bool           `json:"success"`
	Product *model.Product `json:"product"`
}
