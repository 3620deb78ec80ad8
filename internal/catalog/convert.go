package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// decodeList accepts either a bare JSON array or an object wrapping the
// array under "data".
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var env envelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// toBrands converts catalog brands into domain brands.
func toBrands(items []brandDTO) []domain.Brand {
	brands := make([]domain.Brand, 0, len(items))
	for _, b := range items {
		brands = append(brands, domain.Brand{ID: b.ID, Name: strings.TrimSpace(b.Name)})
	}
	return brands
}

// toProducts converts pricelist lines into domain products. Lines that name
// another brand are re-keyed to brandID; the request scoped them already.
func toProducts(brandID int64, items []productDTO) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i := range items {
		it := &items[i]
		products = append(products, domain.Product{
			ID:             it.ID,
			BrandID:        brandID,
			Subcategory:    it.Subcategory,
			AttributeGroup: it.CharsGroup,
			TotalQuantity:  parseQuantity(it.TotalQty),
			Price:          parsePrice(it.Price),
			CountryCode:    it.CountryAbbr,
		})
	}
	return products
}

// parsePrice reads a price given as a JSON number or numeric string,
// rounding fractional values. Anything else is zero.
func parsePrice(raw json.RawMessage) int64 {
	s := unquote(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(math.Round(f))
	}
	return 0
}

// parseQuantity keeps the quantity as reported ("10+", "5").
func parseQuantity(raw json.RawMessage) string {
	return unquote(raw)
}

func unquote(raw json.RawMessage) string {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	return string(v)
}
