package engine

import (
	"strconv"
	"time"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

const removedValue = "removed"

// snapshot indexes products by ID. order holds each ID once, at the position
// of its first occurrence; byID holds the last occurrence.
type snapshot struct {
	order []int64
	byID  map[int64]*domain.Product
}

func indexSnapshot(products []domain.Product) snapshot {
	s := snapshot{
		order: make([]int64, 0, len(products)),
		byID:  make(map[int64]*domain.Product, len(products)),
	}
	for i := range products {
		p := &products[i]
		if _, seen := s.byID[p.ID]; !seen {
			s.order = append(s.order, p.ID)
		}
		s.byID[p.ID] = p
	}
	return s
}

// Diff compares a brand's previous snapshot with a freshly fetched one and
// returns one record per product per changed dimension. Additions, price
// and quantity changes follow the order of current; removals follow, in the
// order of old. Price and quantity changes on one product are separate
// records.
func Diff(old, current []domain.Product, brand domain.Brand, now time.Time) []domain.ChangeRecord {
	prev := indexSnapshot(old)
	next := indexSnapshot(current)

	var changes []domain.ChangeRecord

	for _, id := range next.order {
		n := next.byID[id]
		o, existed := prev.byID[id]

		if !existed {
			changes = append(changes, domain.ChangeRecord{
				ProductID:   n.ID,
				BrandID:     brand.ID,
				ChangeType:  domain.ChangeProductAdded,
				NewValue:    ptr(stockValue(n)),
				NewPrice:    ptr(n.Price),
				NewQuantity: ptr(n.TotalQuantity),
				ProductName: n.AttributeGroup,
				BrandName:   brand.Name,
				CountryCode: n.CountryCode,
				CreatedAt:   now,
			})
			continue
		}

		if n.Price != o.Price {
			ct := domain.ChangePriceIncrease
			if n.Price < o.Price {
				ct = domain.ChangePriceDecrease
			}
			changes = append(changes, changed(ct, o, n, brand, now,
				strconv.FormatInt(o.Price, 10), strconv.FormatInt(n.Price, 10)))
		}

		if n.TotalQuantity != o.TotalQuantity {
			changes = append(changes, changed(domain.ChangeQuantityChanged, o, n, brand, now,
				o.TotalQuantity, n.TotalQuantity))
		}
	}

	for _, id := range prev.order {
		if _, still := next.byID[id]; still {
			continue
		}
		o := prev.byID[id]
		changes = append(changes, domain.ChangeRecord{
			ProductID:   o.ID,
			BrandID:     brand.ID,
			ChangeType:  domain.ChangeProductRemoved,
			OldValue:    ptr(stockValue(o)),
			NewValue:    ptr(removedValue),
			OldPrice:    ptr(o.Price),
			OldQuantity: ptr(o.TotalQuantity),
			ProductName: o.AttributeGroup,
			BrandName:   brand.Name,
			CountryCode: o.CountryCode,
			CreatedAt:   now,
		})
	}

	return changes
}

func changed(
	ct domain.ChangeType,
	o, n *domain.Product,
	brand domain.Brand,
	now time.Time,
	oldValue, newValue string,
) domain.ChangeRecord {
	return domain.ChangeRecord{
		ProductID:   n.ID,
		BrandID:     brand.ID,
		ChangeType:  ct,
		OldValue:    ptr(oldValue),
		NewValue:    ptr(newValue),
		OldPrice:    ptr(o.Price),
		NewPrice:    ptr(n.Price),
		OldQuantity: ptr(o.TotalQuantity),
		NewQuantity: ptr(n.TotalQuantity),
		ProductName: n.AttributeGroup,
		BrandName:   brand.Name,
		CountryCode: n.CountryCode,
		CreatedAt:   now,
	}
}

// stockValue renders a product as "<price> (<qty> pcs)".
func stockValue(p *domain.Product) string {
	return strconv.FormatInt(p.Price, 10) + " (" + p.TotalQuantity + " pcs)"
}

func ptr[T any](v T) *T { return &v }
