package model

const DefaultCategoryColor = "#3b82f6"

type Category struct {
	BaseModel
	NameAr        string        `db:"name_ar" json:"name_ar"`
	NameEn        string        `db:"name_en" json:"name_en"`
	DescriptionAr string        `db:"description_ar" json:"description_ar"`
	DescriptionEn string        `db:"description_en" json:"description_en"`
	Icon          string        `db:"icon" json:"icon"`
	Color         string        `db:"color" json:"color"`
	SortOrder     int           `db:"sort_order" json:"sort_order"`
	IsActive      bool          `db:"is_active" json:"is_active"`
	Subcategories []Subcategory `db:"-" json:"subcategories"`
}

type Subcategory struct {
	BaseModel
	CategoryID    string    `db:"category_id" json:"category_id"`
	NameAr        string    `db:"name_ar" json:"name_ar"`
	NameEn        string    `db:"name_en" json:"name_en"`
	DescriptionAr string    `db:"description_ar" json:"description_ar"`
	DescriptionEn string    `db:"description_en" json:"description_en"`
	Icon          string    `db:"icon" json:"icon"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	Category      *Category `db:"-" json:"category,omitempty"` // Joined parent
}
