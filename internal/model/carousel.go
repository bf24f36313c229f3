package model

type CarouselSlide struct {
	BaseModel
	TitleAr    string `db:"title_ar" json:"title_ar"`
	TitleEn    string `db:"title_en" json:"title_en"`
	SubtitleAr string `db:"subtitle_ar" json:"subtitle_ar"`
	SubtitleEn string `db:"subtitle_en" json:"subtitle_en"`
	ImageURL   string `db:"image_url" json:"image_url"`
	LinkURL    string `db:"link_url" json:"link_url"`
	SortOrder  int    `db:"sort_order" json:"sort_order"`
	IsActive   bool   `db:"is_active" json:"is_active"`
}
