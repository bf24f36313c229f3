package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	NameAr         string          `db:"name_ar" json:"name_ar"`
	NameEn         string          `db:"name_en" json:"name_en"`
	DescriptionAr  string          `db:"description_ar" json:"description_ar"`
	DescriptionEn  string          `db:"description_en" json:"description_en"`
	Price          decimal.Decimal `db:"price" json:"price"`
	Quantity       int             `db:"quantity" json:"quantity"`
	ParentCategory string          `db:"parent_category" json:"parent_category"`
	Subcategory    string          `db:"subcategory" json:"subcategory"`
	Images         pq.StringArray  `db:"images" json:"images"` // blob object names
}

const (
	EventProductUpserted = "ProductUpserted"
	EventProductDeleted  = "ProductDeleted"
	EventStockSold       = "StockSold"
)

// ProductEvent is published on the products topic after every product write.
// Product is nil for deletions.
type ProductEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity,omitempty"`
	Product   *Product  `json:"product,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
