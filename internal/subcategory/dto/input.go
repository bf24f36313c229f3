package dto

type SubcategoryInput struct {
	CategoryID    string `json:"category_id"`
	NameAr        string `json:"name_ar"`
	NameEn        string `json:"name_en"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
	Icon          string `json:"icon"`
	SortOrder     *int   `json:"sort_order"`
	IsActive      *bool  `json:"is_active"`
}
