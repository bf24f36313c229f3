package dto

import "encoding/json"

// ShippingCityInput keeps the fee raw so both 25 and "25.50" are accepted.
type ShippingCityInput struct {
	NameAr      string          `json:"name_ar"`
	NameEn      string          `json:"name_en"`
	ShippingFee json.RawMessage `json:"shipping_fee"`
	SortOrder   *int            `json:"sort_order"`
	IsActive    *bool           `json:"is_active"`
}
