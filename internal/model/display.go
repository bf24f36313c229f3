package model

type CategoryDisplay struct {
	BaseModel
	CategoryKey     string `db:"category_key" json:"category_key"`
	TitleAr         string `db:"title_ar" json:"title_ar"`
	TitleEn         string `db:"title_en" json:"title_en"`
	BackgroundImage string `db:"background_image" json:"background_image"`
	IsVisible       bool   `db:"is_visible" json:"is_visible"`
	SortOrder       int    `db:"sort_order" json:"sort_order"`
}

// SubcategoryDisplay is unique on (ParentCategory, SubcategoryKey).
type SubcategoryDisplay struct {
	BaseModel
	ParentCategory  string `db:"parent_category" json:"parent_category"`
	SubcategoryKey  string `db:"subcategory_key" json:"subcategory_key"`
	TitleAr         string `db:"title_ar" json:"title_ar"`
	TitleEn         string `db:"title_en" json:"title_en"`
	BackgroundImage string `db:"background_image" json:"background_image"`
	IsVisible       bool   `db:"is_visible" json:"is_visible"`
	SortOrder       int    `db:"sort_order" json:"sort_order"`
}
