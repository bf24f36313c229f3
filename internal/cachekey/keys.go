package cachekey

import "time"

// TTL applies to every cached reference-data list.
const TTL = 5 * time.Minute

const (
	Categories          = "categories"
	Subcategories       = "subcategories"
	CategoryDisplays    = "category_displays"
	SubcategoryDisplays = "subcategory_displays"
	ShippingCities      = "shipping_cities"
	CarouselSlides      = "carousel_slides"
)

func List(entity string, activeOnly bool) string {
	if activeOnly {
		return "storefront:" + entity + ":list:active"
	}
	return "storefront:" + entity + ":list:all"
}

// Lists returns both list variants of every entity.
func Lists(entities ...string) []string {
	keys := make([]string, 0, len(entities)*2)
	for _, e := range entities {
		keys = append(keys, List(e, false), List(e, true))
	}
	return keys
}
