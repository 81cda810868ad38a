package inventory

import (
	"sort"
	"strconv"
	"strings"

	"github.com/julietavg/carfind/internal/api"
)

// SortKey selects the display ordering of the vehicle list.
type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
)

// SortKeys lists the selectable orderings in cycle order.
var SortKeys = []SortKey{SortPriceLow, SortPriceHigh, SortNewest, SortOldest}

// Label returns the human-readable name of the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: low to high"
	case SortPriceHigh:
		return "Price: high to low"
	case SortNewest:
		return "Newest first"
	case SortOldest:
		return "Oldest first"
	default:
		return string(k)
	}
}

// Next returns the sort key after k in cycle order.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortPriceLow
}

// Criteria is a structured filter over the inventory. Empty make/model sets
// impose no constraint; ranges are inclusive.
type Criteria struct {
	PriceMin float64
	PriceMax float64
	YearMin  int
	YearMax  int
	Makes    map[string]bool
	Models   map[string]bool
}

func (c Criteria) matches(v api.Vehicle) bool {
	if v.Price < c.PriceMin || v.Price > c.PriceMax {
		return false
	}
	if v.Year < c.YearMin || v.Year > c.YearMax {
		return false
	}
	if len(c.Makes) > 0 && !c.Makes[v.Make] {
		return false
	}
	if len(c.Models) > 0 && !c.Models[v.Model] {
		return false
	}
	return true
}

// Query bundles every input of the display pipeline.
type Query struct {
	Search    string
	Filters   *Criteria // nil means no structured filter is active
	Sort      SortKey
	SavedOnly bool
	Saved     func(id int64) bool // membership test for the saved set
}

// Apply derives the displayed list from the inventory. The result is always a
// fresh slice; the input is never reordered or mutated. Sorting is stable, so
// records that compare equal keep their prior relative order.
func Apply(vehicles []api.Vehicle, q Query) []api.Vehicle {
	result := make([]api.Vehicle, 0, len(vehicles))

	query := strings.ToLower(strings.TrimSpace(q.Search))
	for _, v := range vehicles {
		if query != "" && !matchesSearch(v, query) {
			continue
		}
		if q.Filters != nil && !q.Filters.matches(v) {
			continue
		}
		result = append(result, v)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	}

	if q.SavedOnly && q.Saved != nil {
		kept := result[:0]
		for _, v := range result {
			if q.Saved(v.ID) {
				kept = append(kept, v)
			}
		}
		result = kept
	}

	return result
}

func matchesSearch(v api.Vehicle, query string) bool {
	return strings.Contains(strings.ToLower(v.Make), query) ||
		strings.Contains(strings.ToLower(v.Model), query) ||
		strings.Contains(strconv.Itoa(v.Year), query) ||
		strings.Contains(strings.ToLower(v.Submodel), query)
}

// Bounds describes the selectable filter space derived from the current
// inventory. Bounds are recomputed whenever the inventory changes; they are
// never hardcoded.
type Bounds struct {
	PriceMin float64
	PriceMax float64
	YearMin  int
	YearMax  int
	Makes    []string
	Models   []string
}

// DeriveBounds computes filter bounds from the inventory. Makes and models
// are unique and sorted. An empty inventory yields zero bounds.
func DeriveBounds(vehicles []api.Vehicle) Bounds {
	var b Bounds
	if len(vehicles) == 0 {
		return b
	}

	b.PriceMin, b.PriceMax = vehicles[0].Price, vehicles[0].Price
	b.YearMin, b.YearMax = vehicles[0].Year, vehicles[0].Year
	makes := map[string]bool{}
	models := map[string]bool{}

	for _, v := range vehicles {
		if v.Price < b.PriceMin {
			b.PriceMin = v.Price
		}
		if v.Price > b.PriceMax {
			b.PriceMax = v.Price
		}
		if v.Year < b.YearMin {
			b.YearMin = v.Year
		}
		if v.Year > b.YearMax {
			b.YearMax = v.Year
		}
		if v.Make != "" {
			makes[v.Make] = true
		}
		if v.Model != "" {
			models[v.Model] = true
		}
	}

	for m := range makes {
		b.Makes = append(b.Makes, m)
	}
	for m := range models {
		b.Models = append(b.Models, m)
	}
	sort.Strings(b.Makes)
	sort.Strings(b.Models)
	return b
}

// FullRange returns a Criteria spanning the whole bounds with the given
// make/model selections carried over. Selections that no longer exist in the
// bounds are dropped.
func (b Bounds) FullRange(makes, models map[string]bool) Criteria {
	return Criteria{
		PriceMin: b.PriceMin,
		PriceMax: b.PriceMax,
		YearMin:  b.YearMin,
		YearMax:  b.YearMax,
		Makes:    intersect(makes, b.Makes),
		Models:   intersect(models, b.Models),
	}
}

func intersect(selected map[string]bool, available []string) map[string]bool {
	if len(selected) == 0 {
		return nil
	}
	kept := map[string]bool{}
	for _, name := range available {
		if selected[name] {
			kept[name] = true
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
