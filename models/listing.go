package models

// Listing is a discounted offer found by scanning a search results page.
type Listing struct {
	Title         string `json:"title"`
	OriginalPrice int    `json:"original_price"`
	DiscountPrice int    `json:"discount_price"`
	City          string `json:"city"`
	URL           string `json:"url,omitempty"`
}
