package present

import (
	"sort"
	"strings"

	"github.com/Laisky/errors/v2"

	"github.com/you/skyfinder/internal/models"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortDuration  SortKey = "duration"
)

// SortKeys lists every key in the order a selector cycles through them.
var SortKeys = []SortKey{SortRelevance, SortPriceLow, SortPriceHigh, SortDuration}

// Label is the human-readable name of k.
func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortDuration:
		return "Duration: Shortest"
	default:
		return "Relevance"
	}
}

// Next returns the key after k, wrapping around.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortRelevance
}

// Prev returns the key before k, wrapping around.
func (k SortKey) Prev() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+len(SortKeys)-1)%len(SortKeys)]
		}
	}
	return SortRelevance
}

// ParseSortKey accepts any key name case-insensitively; "" means relevance.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortRelevance, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return SortRelevance, errors.Errorf("unknown sort key %q", s)
}

// Price is the numeric price used for ordering.
func Price(o models.Offer) float64 {
	return numeric(o.Lookup("price", "Price"))
}

// Minutes is the numeric duration used for ordering; missing counts as 0.
func Minutes(o models.Offer) float64 {
	v, ok := o.Lookup("duration")
	if !ok {
		return 0
	}
	return v.Float()
}

// Sort returns a reordered copy of offers. Ties keep their input order and
// the input slice is never modified.
func Sort(offers []models.Offer, key SortKey) []models.Offer {
	out := append([]models.Offer(nil), offers...)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return Price(out[i]) < Price(out[j]) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return Price(out[i]) > Price(out[j]) })
	case SortDuration:
		sort.SliceStable(out, func(i, j int) bool { return Minutes(out[i]) < Minutes(out[j]) })
	}

	return out
}
