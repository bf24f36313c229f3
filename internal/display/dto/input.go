package dto

type CategoryDisplayInput struct {
	CategoryKey     string `json:"category_key"`
	TitleAr         string `json:"title_ar"`
	TitleEn         string `json:"title_en"`
	BackgroundImage string `json:"background_image"`
	IsVisible       *bool  `json:"is_visible"`
	SortOrder       *int   `json:"sort_order"`
}

type SubcategoryDisplayInput struct {
	ParentCategory  string `json:"parent_category"`
	SubcategoryKey  string `json:"subcategory_key"`
	TitleAr         string `json:"title_ar"`
	TitleEn         string `json:"title_en"`
	BackgroundImage string `json:"background_image"`
	IsVisible       *bool  `json:"is_visible"`
	SortOrder       *int   `json:"sort_order"`
}
