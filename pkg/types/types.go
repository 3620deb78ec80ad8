// Package domain defines the core business types for the pricelist monitor.
package domain

import (
	"slices"
	"time"
)

// ChangeType is the kind of difference detected between two snapshots.
type ChangeType string

// Change type constants.
const (
	ChangePriceIncrease   ChangeType = "price_increase"
	ChangePriceDecrease   ChangeType = "price_decrease"
	ChangeProductAdded    ChangeType = "product_added"
	ChangeProductRemoved  ChangeType = "product_removed"
	ChangeQuantityChanged ChangeType = "quantity_changed"
)

// ChangeTypes lists every change type in notification section order.
var ChangeTypes = []ChangeType{
	ChangePriceIncrease,
	ChangePriceDecrease,
	ChangeProductAdded,
	ChangeProductRemoved,
	ChangeQuantityChanged,
}

// Valid reports whether t is a known change type.
func (t ChangeType) Valid() bool {
	return slices.Contains(ChangeTypes, t)
}

// IsPrice reports whether t describes a price movement.
func (t ChangeType) IsPrice() bool {
	return t == ChangePriceIncrease || t == ChangePriceDecrease
}

// Category is the notification category a change is classified into.
type Category string

// Category constants.
const (
	CategoryApple Category = "apple"
	CategoryOther Category = "other"
)

// Credential is the single session token held for an external service.
type Credential struct {
	ServiceID string    `json:"service_id" db:"service_name"`
	Token     string    `json:"-"          db:"token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Valid reports whether the credential carries a token that has not expired
// at now.
func (c *Credential) Valid(now time.Time) bool {
	return c != nil && c.Token != "" && c.ExpiresAt.After(now)
}

// Brand is a catalog brand. The name may be refreshed on every sync.
type Brand struct {
	ID   int64  `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}

// Product is one catalog line for a brand. A snapshot is the full set of
// products for one brand at one poll.
type Product struct {
	ID             int64  `json:"id_product"   db:"id_product"`
	BrandID        int64  `json:"id_brand"     db:"id_brand"`
	Subcategory    string `json:"subcategory"  db:"subcategory"`
	AttributeGroup string `json:"chars_group"  db:"chars_group"`
	// TotalQuantity is kept as reported; the catalog uses values like "10+".
	TotalQuantity  string `json:"total_qty"    db:"total_qty"`
	Price          int64  `json:"price"        db:"price"`
	CountryCode    string `json:"country_abbr" db:"country_abbr"`
}

// ChangeRecord is one detected difference for a single product along a
// single dimension (price, quantity or existence).
type ChangeRecord struct {
	ID          string     `json:"id"                     db:"id"`
	ProductID   int64      `json:"id_product"             db:"id_product"`
	BrandID     int64      `json:"id_brand"               db:"id_brand"`
	ChangeType  ChangeType `json:"change_type"            db:"change_type"`
	OldValue    *string    `json:"old_value,omitempty"    db:"old_value"`
	NewValue    *string    `json:"new_value,omitempty"    db:"new_value"`
	OldPrice    *int64     `json:"old_price,omitempty"    db:"old_price"`
	NewPrice    *int64     `json:"new_price,omitempty"    db:"new_price"`
	OldQuantity *string    `json:"old_quantity,omitempty" db:"old_quantity"`
	NewQuantity *string    `json:"new_quantity,omitempty" db:"new_quantity"`
	ProductName string     `json:"product_name"           db:"product_name"`
	BrandName   string     `json:"brand_name"             db:"brand_name"`
	CountryCode string     `json:"country_abbr"           db:"country_abbr"`
	CreatedAt   time.Time  `json:"created_at"             db:"created_at"`
}

// Subscriber is an operator receiving change notifications, with one
// preference flag per category.
type Subscriber struct {
	UserID       int64 `json:"user_id"       db:"user_id"`
	ReceiveApple bool  `json:"receive_apple" db:"receive_apple"`
	ReceiveOther bool  `json:"receive_other" db:"receive_other"`
}

// Wants reports whether the subscriber selected category c.
func (s Subscriber) Wants(c Category) bool {
	switch c {
	case CategoryApple:
		return s.ReceiveApple
	case CategoryOther:
		return s.ReceiveOther
	default:
		return false
	}
}

// Cycle run status values.
const (
	CycleRunning   = "running"
	CycleSucceeded = "succeeded"
	CycleFailed    = "failed"
)

// CycleRun records a single poll-diff-notify cycle.
type CycleRun struct {
	ID           string     `json:"id"                     db:"id"`
	StartedAt    time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status       string     `json:"status"                 db:"status"`
	BrandsTotal  int        `json:"brands_total"           db:"brands_total"`
	BrandsFailed int        `json:"brands_failed"          db:"brands_failed"`
	Changes      int        `json:"changes"                db:"changes"`
	ErrorText    string     `json:"error_text,omitempty"   db:"error_text"`
}
