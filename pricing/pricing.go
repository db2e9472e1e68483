// Package pricing computes line-item prices and order totals from a base
// product price, priced extras, removed ingredients and a quantity. The
// same arithmetic runs in the browser cart; the server recomputes it so
// the persisted total is authoritative.
package pricing

import (
	"sort"
	"strconv"
	"strings"
)

// Extra is a named, priced additive modifier (e.g. "Bacon" +4.00).
type Extra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Customization captures how a single cart line deviates from the plain
// catalog product. Removed ingredients and the observation text have no
// price effect; they only matter for display and for line merging.
type Customization struct {
	Extras      []Extra  `json:"extras,omitempty"`
	Removed     []string `json:"removed_ingredients,omitempty"`
	Observation string   `json:"observation,omitempty"`
}

// ExtrasTotal sums the price delta of all extras. Missing prices count
// as zero rather than failing.
func (c Customization) ExtrasTotal() float64 {
	var total float64
	for _, e := range c.Extras {
		if e.Price > 0 {
			total += e.Price
		}
	}
	return total
}

// Fingerprint renders the customization into a canonical string: extras
// and removed ingredients are sorted before comparison so their order in
// the cart does not matter, and the observation is trimmed. Two lines for
// the same product merge only when their fingerprints are identical.
func (c Customization) Fingerprint() string {
	extras := make([]string, 0, len(c.Extras))
	for _, e := range c.Extras {
		extras = append(extras, e.Name+"="+strconv.FormatFloat(e.Price, 'f', 2, 64))
	}
	sort.Strings(extras)

	removed := make([]string, len(c.Removed))
	copy(removed, c.Removed)
	sort.Strings(removed)

	var b strings.Builder
	b.WriteString("extras:")
	b.WriteString(strings.Join(extras, ","))
	b.WriteString("|removed:")
	b.WriteString(strings.Join(removed, ","))
	b.WriteString("|obs:")
	b.WriteString(strings.TrimSpace(c.Observation))
	return b.String()
}

// Line is one cart entry: a product plus its customization and quantity.
type Line struct {
	ProductID     uint          `json:"product_id"`
	ProductName   string        `json:"product_name"`
	BasePrice     float64       `json:"base_price"`
	Customization Customization `json:"customization"`
	Quantity      int           `json:"quantity"`
}

// UnitPrice is the base price plus all extras. Negative base prices are
// treated as missing and default to zero.
func (l Line) UnitPrice() float64 {
	base := l.BasePrice
	if base < 0 {
		base = 0
	}
	return base + l.Customization.ExtrasTotal()
}

// Total is the line subtotal: unit price times quantity.
func (l Line) Total() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}
