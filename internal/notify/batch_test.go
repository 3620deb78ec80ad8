package notify

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

var fixedNow = time.Date(2026, 3, 15, 7, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ptr[T any](v T) *T { return &v }

func priceChange(ct domain.ChangeType, product string, oldP, newP int64) domain.ChangeRecord {
	return domain.ChangeRecord{
		ChangeType:  ct,
		BrandName:   "Apple",
		ProductName: product,
		OldPrice:    ptr(oldP),
		NewPrice:    ptr(newP),
		OldValue:    ptr(fmt.Sprint(oldP)),
		NewValue:    ptr(fmt.Sprint(newP)),
	}
}

func manyChanges(n int) []domain.ChangeRecord {
	changes := make([]domain.ChangeRecord, 0, n)
	for i := range n {
		ct := domain.ChangeTypes[i%len(domain.ChangeTypes)]
		changes = append(changes, domain.ChangeRecord{
			ChangeType:  ct,
			BrandName:   "Samsung",
			ProductName: fmt.Sprintf("Model-%04d", i),
			CountryCode: "AE",
			OldPrice:    ptr(int64(1000 + i)),
			NewPrice:    ptr(int64(2000 + i)),
			OldQuantity: ptr("5"),
			NewQuantity: ptr("10+"),
		})
	}
	return changes
}

func TestBatch_ExampleScenario(t *testing.T) {
	t.Parallel()

	changes := []domain.ChangeRecord{
		{
			ProductID: 1, ChangeType: domain.ChangePriceIncrease,
			BrandName: "Apple", ProductName: "iPhone 15", CountryCode: "AE",
			OldPrice: ptr(int64(100)), NewPrice: ptr(int64(120)),
		},
		{
			ProductID: 2, ChangeType: domain.ChangeProductAdded,
			BrandName: "Apple", ProductName: "iPad Air",
			NewPrice: ptr(int64(50)), NewQuantity: ptr("3"),
		},
	}

	got := Batch(changes, 0, WithBatchClock(fixedClock))

	want := "📊 <b>Price list changes detected:</b>\n<b>Total: 2 changes</b>\n\n" +
		"📈 <b>Price increases:</b>\n" +
		"• Apple - iPhone 15 🇦🇪\n  100 RUB → 120 RUB\n\n" +
		"➕ <b>New products:</b>\n" +
		"• Apple - iPad Air\n  50 RUB (3 pcs)\n\n" +
		"\n🕐 <i>Checked at: 15.03.2026 07:30:00</i>"
	assert.Equal(t, []string{want}, got)
}

func TestBatch_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Batch(nil, 100))
	assert.Nil(t, Batch([]domain.ChangeRecord{}, 100))
}

func TestBatch_LineFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change domain.ChangeRecord
		want   string
	}{
		{
			name:   "price decrease",
			change: priceChange(domain.ChangePriceDecrease, "iPhone", 120, 100),
			want:   "• Apple - iPhone\n  120 RUB → 100 RUB\n\n",
		},
		{
			name: "removed",
			change: domain.ChangeRecord{
				ChangeType: domain.ChangeProductRemoved, BrandName: "Apple", ProductName: "iPod",
				OldPrice: ptr(int64(90)), OldQuantity: ptr("4"), CountryCode: "us",
			},
			want: "• Apple - iPod 🇺🇸\n  Was: 90 RUB (4 pcs)\n\n",
		},
		{
			name: "quantity",
			change: domain.ChangeRecord{
				ChangeType: domain.ChangeQuantityChanged, BrandName: "Apple", ProductName: "iMac",
				OldQuantity: ptr("5"), NewQuantity: ptr("10+"), NewPrice: ptr(int64(700)),
			},
			want: "• Apple - iMac\n  5 → 10+ pcs (700 RUB)\n\n",
		},
		{
			name: "missing values render as placeholder",
			change: domain.ChangeRecord{
				ChangeType: domain.ChangeProductAdded, BrandName: "Apple", ProductName: "Mac",
			},
			want: "• Apple - Mac\n  ? (? pcs)\n\n",
		},
		{
			name: "html is escaped",
			change: domain.ChangeRecord{
				ChangeType: domain.ChangeProductAdded, BrandName: "A&B", ProductName: "<Pro>",
				NewPrice: ptr(int64(1)), NewQuantity: ptr("1"),
			},
			want: "• A&amp;B - &lt;Pro&gt;\n  1 RUB (1 pcs)\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Batch([]domain.ChangeRecord{tt.change}, 0, WithBatchClock(fixedClock))
			require.Len(t, got, 1)
			assert.Contains(t, got[0], tt.want)
		})
	}
}

func TestBatch_Currency(t *testing.T) {
	t.Parallel()

	changes := []domain.ChangeRecord{priceChange(domain.ChangePriceIncrease, "iPhone", 1, 2)}

	got := Batch(changes, 0, WithCurrency("AED"))
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "1 AED → 2 AED")

	got = Batch(changes, 0, WithCurrency(""))
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "  1 → 2\n")
}

func TestBatch_FooterUsesLocation(t *testing.T) {
	t.Parallel()

	msk := time.FixedZone("MSK", 3*60*60)
	got := Batch(
		[]domain.ChangeRecord{priceChange(domain.ChangePriceIncrease, "iPhone", 1, 2)},
		0,
		WithBatchClock(fixedClock),
		WithLocation(msk),
	)

	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], "\n🕐 <i>Checked at: 15.03.2026 10:30:00</i>"), got[0])
}

func TestBatch_SectionOrder(t *testing.T) {
	t.Parallel()

	changes := []domain.ChangeRecord{
		{ChangeType: domain.ChangeQuantityChanged, BrandName: "B", ProductName: "q"},
		{ChangeType: domain.ChangeProductRemoved, BrandName: "B", ProductName: "r"},
		{ChangeType: domain.ChangePriceDecrease, BrandName: "B", ProductName: "d"},
		{ChangeType: domain.ChangeProductAdded, BrandName: "B", ProductName: "a"},
		{ChangeType: domain.ChangePriceIncrease, BrandName: "B", ProductName: "i"},
	}

	got := Batch(changes, 0)
	require.Len(t, got, 1)

	last := -1
	for _, s := range sections {
		idx := strings.Index(got[0], s.title)
		require.NotEqual(t, -1, idx, s.title)
		assert.Greater(t, idx, last, s.title)
		last = idx
	}
}

func TestBatch_SizeBoundAndCompleteness(t *testing.T) {
	t.Parallel()

	changes := manyChanges(250)

	for _, maxLength := range []int{120, 300, 1000, DefaultMaxLength} {
		t.Run(fmt.Sprint(maxLength), func(t *testing.T) {
			t.Parallel()

			got := Batch(changes, maxLength, WithBatchClock(fixedClock))
			require.NotEmpty(t, got)

			for i, msg := range got {
				assert.LessOrEqual(t, utf8.RuneCountInString(msg), maxLength, "message %d", i)
				assert.NotEmpty(t, msg, "message %d", i)
			}

			joined := strings.Join(got, "")
			for _, c := range changes {
				assert.Equal(t, 1, strings.Count(joined, c.ProductName+" 🇦🇪"), c.ProductName)
			}
			assert.Equal(t, 1, strings.Count(joined, "Checked at:"))
		})
	}
}

func TestBatch_Continuation(t *testing.T) {
	t.Parallel()

	var changes []domain.ChangeRecord
	for i := range 10 {
		changes = append(changes, priceChange(domain.ChangePriceIncrease, fmt.Sprintf("Model-%02d", i), 100, 120))
	}

	got := Batch(changes, 200, WithBatchClock(fixedClock))
	require.Greater(t, len(got), 1)

	assert.True(t, strings.HasPrefix(got[0], "📊 <b>Price list changes detected:</b>"))
	for _, msg := range got[1:] {
		assert.True(t, strings.HasPrefix(msg, continuedHeader+"📈 <b>Price increases:</b> (continued)\n"), msg)
	}
	assert.Contains(t, got[len(got)-1], "Checked at:")
	for _, msg := range got[:len(got)-1] {
		assert.NotContains(t, msg, "Checked at:")
	}
}

func TestBatch_HardSplitsOversizedLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("я", 400)
	changes := []domain.ChangeRecord{
		{ChangeType: domain.ChangeProductAdded, BrandName: "Brand", ProductName: long, NewPrice: ptr(int64(1))},
	}

	got := Batch(changes, 50, WithBatchClock(fixedClock))
	require.Greater(t, len(got), 2)

	for i, msg := range got {
		assert.LessOrEqual(t, utf8.RuneCountInString(msg), 50, "message %d", i)
		assert.True(t, utf8.ValidString(msg), "message %d", i)
	}
	assert.Contains(t, strings.Join(got, ""), long)
}

func TestSplitMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		n    int
		want []string
	}{
		{name: "runes", in: "абвгд", n: 2, want: []string{"аб", "вг", "д"}},
		{name: "fits", in: "abc", n: 3, want: []string{"abc"}},
		{name: "empty", in: "", n: 3, want: nil},
		{name: "prefers line breaks", in: "ab\ncd\nef", n: 7, want: []string{"ab\ncd\n", "ef"}},
		{name: "backs off open tag", in: "<b>x</b>yz", n: 6, want: []string{"<b>x", "</b>yz"}},
		{name: "backs off open entity", in: "a &amp; b", n: 6, want: []string{"a ", "&amp; ", "b"}},
		{name: "limit too small for markup", in: "&amp;", n: 2, want: []string{"&a", "mp", ";"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitMessage(tt.in, tt.n))
		})
	}
}

func TestBatch_HardSplitKeepsMarkupIntact(t *testing.T) {
	t.Parallel()

	changes := []domain.ChangeRecord{{
		ChangeType:  domain.ChangeProductAdded,
		BrandName:   "AT&T",
		ProductName: strings.Repeat("Case <Pro> & Stand ", 12),
		NewPrice:    ptr(int64(990)),
		NewQuantity: ptr("3"),
	}}

	got := Batch(changes, 60, WithBatchClock(fixedClock))
	require.Greater(t, len(got), 2)

	openTag := regexp.MustCompile(`<[^>]*$`)
	openEntity := regexp.MustCompile(`&[a-z]*$`)
	for i, msg := range got {
		assert.LessOrEqual(t, utf8.RuneCountInString(msg), 60, "message %d", i)
		assert.False(t, openTag.MatchString(msg), "message %d ends inside a tag: %q", i, msg)
		assert.False(t, openEntity.MatchString(msg), "message %d ends inside an entity: %q", i, msg)
		assert.Equal(t, strings.Count(msg, "<b>"), strings.Count(msg, "</b>"), "message %d", i)
		assert.Equal(t, strings.Count(msg, "<i>"), strings.Count(msg, "</i>"), "message %d", i)
	}
	assert.Contains(t, strings.Join(got, ""), "Case &lt;Pro&gt; &amp; Stand")
}

func TestBatch_UnknownChangeTypeIsDelivered(t *testing.T) {
	t.Parallel()

	changes := []domain.ChangeRecord{
		priceChange(domain.ChangePriceDecrease, "iPhone 15", 120, 100),
		{
			ChangeType:  domain.ChangeType("price_reset"),
			BrandName:   "Apple",
			ProductName: "iPad mini",
			OldValue:    ptr("0"),
			NewValue:    ptr("450"),
		},
	}

	got := Batch(changes, 0, WithBatchClock(fixedClock))
	require.Len(t, got, 1)

	msg := got[0]
	assert.Contains(t, msg, "Total: 2 changes")
	assert.Contains(t, msg, otherTitle+"\n• Apple - iPad mini\n  0 → 450\n")
	assert.Less(t, strings.Index(msg, "Price decreases"), strings.Index(msg, otherTitle))
}
