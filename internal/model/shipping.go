package model

import "github.com/shopspring/decimal"

type ShippingCity struct {
	BaseModel
	NameAr      string          `db:"name_ar" json:"name_ar"`
	NameEn      string          `db:"name_en" json:"name_en"`
	ShippingFee decimal.Decimal `db:"shipping_fee" json:"shipping_fee"`
	SortOrder   int             `db:"sort_order" json:"sort_order"`
	IsActive    bool            `db:"is_active" json:"is_active"`
}
