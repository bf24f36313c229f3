package dto

// CategoryInput is used for both create and update. Nil pointers take the
// column defaults.
type CategoryInput struct {
	NameAr        string `json:"name_ar"`
	NameEn        string `json:"name_en"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	SortOrder     *int   `json:"sort_order"`
	IsActive      *bool  `json:"is_active"`
}
