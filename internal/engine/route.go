package engine

import (
	"github.com/donaldgifford/pricelist-monitor/pkg/classify"
	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// Partition splits changes into Apple and other records, preserving order.
// Every record lands in exactly one of the two.
func Partition(changes []domain.ChangeRecord) (apple, other []domain.ChangeRecord) {
	for i := range changes {
		if classify.Change(&changes[i]) == domain.CategoryApple {
			apple = append(apple, changes[i])
		} else {
			other = append(other, changes[i])
		}
	}
	return apple, other
}

// Route selects the changes each subscriber asked for: Apple records first
// when ReceiveApple is set, then the rest when ReceiveOther is set.
// Subscribers left with nothing to receive are absent from the result.
func Route(changes []domain.ChangeRecord, subs []domain.Subscriber) map[int64][]domain.ChangeRecord {
	apple, other := Partition(changes)

	routed := make(map[int64][]domain.ChangeRecord, len(subs))
	for _, s := range subs {
		var selected []domain.ChangeRecord
		if s.ReceiveApple {
			selected = append(selected, apple...)
		}
		if s.ReceiveOther {
			selected = append(selected, other...)
		}
		if len(selected) == 0 {
			continue
		}
		routed[s.UserID] = selected
	}

	return routed
}
