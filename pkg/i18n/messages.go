package i18n

// Message ids. Every id must exist in both locale files.
const (
	MsgInternal       = "error.internal"
	MsgInvalidRequest = "error.invalid_request"

	MsgProductIDRequired = "error.product_id_required"
	MsgQuantityRequired  = "error.quantity_required"
	MsgQuantityPositive  = "error.quantity_positive"
	MsgProductNotFound   = "error.product_not_found"
	MsgInsufficientStock = "error.insufficient_stock"
	MsgSellFailed        = "error.sell_failed"

	MsgAnalyticsFailed = "error.analytics_failed"

	MsgNameRequired         = "error.name_required"
	MsgCategoryIDRequired   = "error.category_id_required"
	MsgCategoryNotFound     = "error.category_not_found"
	MsgSubcategoryNotFound  = "error.subcategory_not_found"
	MsgShippingNameRequired = "error.shipping_name_required"
	MsgShippingFeeInvalid   = "error.shipping_fee_invalid"
	MsgShippingCityNotFound = "error.shipping_city_not_found"
	MsgImageURLRequired     = "error.image_url_required"
	MsgSlideNotFound        = "error.slide_not_found"
	MsgBackgroundRequired   = "error.background_image_required"
	MsgDisplayNotFound      = "error.display_not_found"
	MsgDisplayKeysRequired  = "error.display_keys_required"
	MsgPriceInvalid         = "error.price_invalid"
	MsgQuantityNegative     = "error.quantity_negative"
	MsgFileRequired         = "error.file_required"
	MsgUploadFailed         = "error.upload_failed"
	MsgImageNamesRequired   = "error.image_names_required"
	MsgSearchQueryRequired  = "error.search_query_required"
	MsgTryOnDeprecated      = "tryon.deprecated"
)
