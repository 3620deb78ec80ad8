package catalog

import "encoding/json"

// brandDTO is a brand as returned by the brands endpoint.
type brandDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// productDTO is a pricelist line as returned by the pricelist endpoint.
// Price and quantity arrive as either JSON numbers or strings depending on
// the brand, so both are decoded loosely.
type productDTO struct {
	ID          int64           `json:"id_product"`
	BrandID     int64           `json:"id_brand"`
	Subcategory string          `json:"subcategory"`
	CharsGroup  string          `json:"chars_group"`
	TotalQty    json.RawMessage `json:"total_qty"`
	Price       json.RawMessage `json:"price"`
	CountryAbbr string          `json:"country_abbr"`
}

// loginResponse is the body of a successful login.
type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// envelope is the wrapped list form some endpoints answer with.
type envelope[T any] struct {
	Data []T `json:"data"`
}
