// Package classify partitions catalog changes into notification categories.
package classify

import (
	"strings"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// appleKeywords are matched as case-insensitive substrings of
// "<brand> <product>". "mac " keeps its trailing space so words such as
// "macro" do not match.
var appleKeywords = []string{
	"iphone",
	"ipad",
	"macbook",
	"mac ",
	"apple watch",
	"airpods",
	"apple",
	"imac",
	"mac mini",
	"mac pro",
	"mac studio",
}

// IsApple reports whether the brand or product name refers to an Apple device.
func IsApple(brandName, productName string) bool {
	if brandName == "" && productName == "" {
		return false
	}

	text := strings.ToLower(brandName + " " + productName)
	for _, kw := range appleKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	return false
}

// Classify returns the category for a brand/product pair. Anything that is
// not Apple falls into CategoryOther.
func Classify(brandName, productName string) domain.Category {
	if IsApple(brandName, productName) {
		return domain.CategoryApple
	}
	return domain.CategoryOther
}

// Change classifies a change record by its brand and product names.
func Change(c *domain.ChangeRecord) domain.Category {
	return Classify(c.BrandName, c.ProductName)
}
