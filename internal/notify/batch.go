package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domain "github.com/donaldgifford/pricelist-monitor/pkg/types"
)

// DefaultMaxLength keeps messages safely below Telegram's 4096 character
// limit once entities are parsed.
const DefaultMaxLength = 3800

const (
	continuedHeader = "📊 <b>Changes (continued):</b>\n\n"
	timestampLayout = "02.01.2006 15:04:05"
)

// section is one fixed block of a change notification.
type section struct {
	changeType domain.ChangeType
	title      string
}

// sections lists the blocks in the order they appear in a message.
var sections = []section{
	{domain.ChangePriceIncrease, "📈 <b>Price increases:</b>"},
	{domain.ChangePriceDecrease, "📉 <b>Price decreases:</b>"},
	{domain.ChangeProductAdded, "➕ <b>New products:</b>"},
	{domain.ChangeProductRemoved, "➖ <b>Removed products:</b>"},
	{domain.ChangeQuantityChanged, "📦 <b>Quantity changes:</b>"},
}

// otherTitle heads records whose change type has no section of its own.
const otherTitle = "🔄 <b>Other changes:</b>"

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// BatchOption configures Batch.
type BatchOption func(*batcher)

// WithBatchClock overrides the time source used for the footer timestamp.
func WithBatchClock(now func() time.Time) BatchOption {
	return func(b *batcher) {
		b.now = now
	}
}

// WithLocation sets the time zone of the footer timestamp.
func WithLocation(loc *time.Location) BatchOption {
	return func(b *batcher) {
		if loc != nil {
			b.loc = loc
		}
	}
}

// WithCurrency sets the suffix printed after every price.
func WithCurrency(currency string) BatchOption {
	return func(b *batcher) {
		b.currency = currency
	}
}

type batcher struct {
	max      int
	now      func() time.Time
	loc      *time.Location
	currency string

	out   []string
	buf   strings.Builder
	size  int  // runes in buf
	fresh bool // buf holds only headers
}

// Batch renders changes into messages of at most maxLength runes. Sections
// follow a fixed order; a section or line that does not fit starts a new
// message with a continuation header. The final buffer carries a timestamp
// footer and is hard-split if that pushes it over the limit. Concatenating
// the result reproduces every change exactly once. A non-positive maxLength
// selects DefaultMaxLength.
func Batch(changes []domain.ChangeRecord, maxLength int, opts ...BatchOption) []string {
	if len(changes) == 0 {
		return nil
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	b := &batcher{
		max:      maxLength,
		now:      time.Now,
		loc:      time.UTC,
		currency: "RUB",
	}
	for _, opt := range opts {
		opt(b)
	}

	byType := make(map[domain.ChangeType][]*domain.ChangeRecord, len(sections))
	var unknown []*domain.ChangeRecord
	for i := range changes {
		c := &changes[i]
		if !c.ChangeType.Valid() {
			unknown = append(unknown, c)
			continue
		}
		byType[c.ChangeType] = append(byType[c.ChangeType], c)
	}

	b.start(fmt.Sprintf(
		"📊 <b>Price list changes detected:</b>\n<b>Total: %d changes</b>\n\n",
		len(changes),
	))

	for _, s := range sections {
		b.section(s.title, byType[s.changeType])
	}
	b.section(otherTitle, unknown)

	b.write("\n🕐 <i>Checked at: " + b.now().In(b.loc).Format(timestampLayout) + "</i>")
	b.flush()

	return b.out
}

// section appends a titled block. A title or line that does not fit starts
// a new message with a continuation header.
func (b *batcher) section(title string, items []*domain.ChangeRecord) {
	if len(items) == 0 {
		return
	}

	if !b.fits(title + "\n") {
		b.flush()
		b.start(continuedHeader)
	}
	b.write(title + "\n")

	for _, c := range items {
		line := b.formatLine(c)
		if !b.fits(line) {
			b.flush()
			b.start(continuedHeader + title + " (continued)\n")
		}
		b.write(line)
	}
}

func (b *batcher) start(header string) {
	b.buf.Reset()
	b.size = 0
	b.write(header)
	b.fresh = true
}

func (b *batcher) write(s string) {
	b.buf.WriteString(s)
	b.size += utf8.RuneCountInString(s)
	b.fresh = false
}

// fits reports whether s can be appended without exceeding the limit. A
// buffer holding only headers accepts anything; flushing it would emit a
// message with no content.
func (b *batcher) fits(s string) bool {
	return b.fresh || b.size+utf8.RuneCountInString(s) <= b.max
}

func (b *batcher) flush() {
	if b.size <= b.max {
		b.out = append(b.out, b.buf.String())
		return
	}
	b.out = append(b.out, splitMessage(b.buf.String(), b.max)...)
}

// splitMessage cuts s into consecutive chunks of at most n runes. A chunk
// ends at the last line break that fits, since every line carries balanced
// markup. A single line longer than n is cut between runes but never inside
// an HTML tag or entity, unless n is too small to hold one.
func splitMessage(s string, n int) []string {
	var chunks []string
	for s != "" {
		limit := runeOffset(s, n)
		if limit == len(s) {
			chunks = append(chunks, s)
			break
		}

		cut := strings.LastIndexByte(s[:limit], '\n') + 1
		if cut == 0 {
			cut = markupSafeCut(s[:limit])
		}
		if cut == 0 {
			cut = limit
		}

		chunks = append(chunks, s[:cut])
		s = s[cut:]
	}
	return chunks
}

// runeOffset returns the byte offset just past the first n runes of s.
func runeOffset(s string, n int) int {
	off := 0
	for i := 0; i < n && off < len(s); i++ {
		_, w := utf8.DecodeRuneInString(s[off:])
		off += w
	}
	return off
}

// markupSafeCut backs a cut at len(prefix) off an unterminated tag or
// entity. Text is escaped, so a bare '<' or '&' always opens markup.
func markupSafeCut(prefix string) int {
	cut := len(prefix)
	if lt := strings.LastIndexByte(prefix, '<'); lt > strings.LastIndexByte(prefix, '>') {
		cut = lt
	}
	if amp := strings.LastIndexByte(prefix, '&'); amp > strings.LastIndexByte(prefix, ';') {
		cut = min(cut, amp)
	}
	return cut
}

func (b *batcher) formatLine(c *domain.ChangeRecord) string {
	head := "• " + htmlEscaper.Replace(c.BrandName) + " - " + htmlEscaper.Replace(c.ProductName)
	if flag := Flag(c.CountryCode); flag != "" {
		head += " " + flag
	}

	var detail string
	switch c.ChangeType {
	case domain.ChangePriceIncrease, domain.ChangePriceDecrease:
		detail = b.price(c.OldPrice) + " → " + b.price(c.NewPrice)
	case domain.ChangeProductAdded:
		detail = b.price(c.NewPrice) + " (" + quantity(c.NewQuantity) + " pcs)"
	case domain.ChangeProductRemoved:
		detail = "Was: " + b.price(c.OldPrice) + " (" + quantity(c.OldQuantity) + " pcs)"
	case domain.ChangeQuantityChanged:
		detail = quantity(c.OldQuantity) + " → " + quantity(c.NewQuantity) +
			" pcs (" + b.price(c.NewPrice) + ")"
	default:
		detail = value(c.OldValue) + " → " + value(c.NewValue)
	}

	return head + "\n  " + detail + "\n\n"
}

func (b *batcher) price(p *int64) string {
	if p == nil {
		return "?"
	}
	s := strconv.FormatInt(*p, 10)
	if b.currency == "" {
		return s
	}
	return s + " " + htmlEscaper.Replace(b.currency)
}

func quantity(q *string) string {
	if q == nil || *q == "" {
		return "?"
	}
	return htmlEscaper.Replace(*q)
}

func value(v *string) string {
	if v == nil {
		return "?"
	}
	return htmlEscaper.Replace(*v)
}
