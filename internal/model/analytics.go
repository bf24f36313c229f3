package model

import "github.com/shopspring/decimal"

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Analytics struct {
	Count           int             `json:"count"`
	Avg             decimal.Decimal `json:"avg"`
	Min             decimal.Decimal `json:"min"`
	Max             decimal.Decimal `json:"max"`
	Breakdown       []CategoryCount `json:"breakdown"`
	TotalCategories int             `json:"total_categories"`
}

// CategoryPair is one product's (parent_category, subcategory).
type CategoryPair struct {
	ParentCategory string `db:"parent_category"`
	Subcategory    string `db:"subcategory"`
}

func (p CategoryPair) Key() string {
	return p.ParentCategory + "_" + p.Subcategory
}
