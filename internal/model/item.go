package model

import (
	"strconv"
	"strings"
	"time"
)

// TrendData holds per-month historical counts, keyed by year then month.
// Example: {"2026": {"1": 42, "2": 38}}.
type TrendData map[string]map[string]int

// Item represents an inventory item owned by a single user.
type Item struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	ItemKey   string    `json:"itemKey"`
	Balance   int       `json:"balance"`
	MinStock  int       `json:"minStock"`
	TrendData TrendData `json:"trendData"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LowStock reports whether the item's balance is at or below its minimum
// stock threshold. The boundary is inclusive.
func (i *Item) LowStock() bool {
	return i.Balance <= i.MinStock
}

// ItemKey derives a URL-safe key from an item name: the name is lower-cased
// and every character outside [a-z0-9] is deleted, so "Milk & Eggs!"
// becomes "milkeggs". Keys are unique per owner, not globally.
func ItemKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultTrendData returns empty trend buckets for the current and next
// calendar year, so new items have their reporting periods ready to fill.
func DefaultTrendData(now time.Time) TrendData {
	year := now.Year()
	return TrendData{
		strconv.Itoa(year):     {},
		strconv.Itoa(year + 1): {},
	}
}
