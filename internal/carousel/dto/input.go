package dto

type SlideInput struct {
	TitleAr    string `json:"title_ar"`
	TitleEn    string `json:"title_en"`
	SubtitleAr string `json:"subtitle_ar"`
	SubtitleEn string `json:"subtitle_en"`
	ImageURL   string `json:"image_url"`
	LinkURL    string `json:"link_url"`
	SortOrder  *int   `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}
