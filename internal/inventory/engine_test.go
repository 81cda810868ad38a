package inventory

import (
	"reflect"
	"strings"
	"testing"

	"github.com/julietavg/carfind/internal/api"
)

func sampleInventory() []api.Vehicle {
	return []api.Vehicle{
		{ID: 1, Make: "TOYOTA", Model: "CAMRY", Submodel: "LE", Year: 2021, Price: 20000},
		{ID: 2, Make: "HONDA", Model: "CIVIC", Submodel: "EX", Year: 2024, Price: 35000},
		{ID: 3, Make: "TOYOTA", Model: "COROLLA", Submodel: "SE", Year: 2019, Price: 15000},
		{ID: 4, Make: "MAZDA", Model: "MX-5", Submodel: "Grand Touring", Year: 2021, Price: 31500},
		{ID: 5, Make: "HONDA", Model: "ACCORD", Submodel: "Sport", Year: 2021, Price: 20000},
	}
}

func ids(vehicles []api.Vehicle) []int64 {
	out := make([]int64, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func TestApply_SearchIsSubsetAndMatchesSomeField(t *testing.T) {
	inv := sampleInventory()

	for _, query := range []string{"toyota", "CIVIC", "2021", "sport", "zzz", ""} {
		got := Apply(inv, Query{Search: query})
		if len(got) > len(inv) {
			t.Fatalf("query %q grew the list", query)
		}
		for _, v := range got {
			if !contains(inv, v.ID) {
				t.Fatalf("query %q produced id %d not in input", query, v.ID)
			}
			q := strings.ToLower(query)
			if q != "" && !matchesSearch(v, q) {
				t.Fatalf("query %q kept non-matching vehicle %#v", query, v)
			}
		}
	}

	if got := Apply(inv, Query{Search: "2021"}); len(got) != 3 {
		t.Fatalf("year substring search kept %d, want 3", len(got))
	}
	if got := Apply(inv, Query{Search: "grand"}); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("submodel search = %v, want [4]", ids(got))
	}
}

func TestApply_SortKeysAndIdempotence(t *testing.T) {
	inv := sampleInventory()

	cases := []struct {
		key  SortKey
		want []int64
	}{
		// Ties keep input order: ids 1 and 5 share price 20000, ids 1/4/5 share year 2021.
		{SortPriceLow, []int64{3, 1, 5, 4, 2}},
		{SortPriceHigh, []int64{2, 4, 1, 5, 3}},
		{SortNewest, []int64{2, 1, 4, 5, 3}},
		{SortOldest, []int64{3, 1, 4, 5, 2}},
	}

	for _, tc := range cases {
		once := Apply(inv, Query{Sort: tc.key})
		if !reflect.DeepEqual(ids(once), tc.want) {
			t.Fatalf("sort %s = %v, want %v", tc.key, ids(once), tc.want)
		}
		twice := Apply(once, Query{Sort: tc.key})
		if !reflect.DeepEqual(ids(twice), ids(once)) {
			t.Fatalf("sort %s is not idempotent: %v then %v", tc.key, ids(once), ids(twice))
		}
	}

	// The source list is never reordered.
	if !reflect.DeepEqual(ids(inv), []int64{1, 2, 3, 4, 5}) {
		t.Fatalf("input mutated: %v", ids(inv))
	}
}

func TestApply_StructuredCriteria(t *testing.T) {
	inv := sampleInventory()

	criteria := &Criteria{
		PriceMin: 15000, PriceMax: 32000,
		YearMin: 2019, YearMax: 2021,
		Makes: map[string]bool{"TOYOTA": true, "MAZDA": true},
	}
	got := Apply(inv, Query{Filters: criteria})
	if !reflect.DeepEqual(ids(got), []int64{1, 3, 4}) {
		t.Fatalf("criteria result = %v, want [1 3 4]", ids(got))
	}

	// Bounds are inclusive on both ends.
	edge := &Criteria{PriceMin: 20000, PriceMax: 20000, YearMin: 2021, YearMax: 2021}
	got = Apply(inv, Query{Filters: edge})
	if !reflect.DeepEqual(ids(got), []int64{1, 5}) {
		t.Fatalf("inclusive bound result = %v, want [1 5]", ids(got))
	}

	// Model set constrains independently of make set.
	models := &Criteria{PriceMax: 1 << 20, YearMax: 1 << 20, Models: map[string]bool{"CIVIC": true}}
	got = Apply(inv, Query{Filters: models})
	if !reflect.DeepEqual(ids(got), []int64{2}) {
		t.Fatalf("model set result = %v, want [2]", ids(got))
	}
}

func TestApply_SavedOnlyToleratesUnknownIDs(t *testing.T) {
	inv := sampleInventory()
	saved := map[int64]bool{2: true, 4: true, 999: true}

	got := Apply(inv, Query{SavedOnly: true, Saved: func(id int64) bool { return saved[id] }})
	if !reflect.DeepEqual(ids(got), []int64{2, 4}) {
		t.Fatalf("saved-only result = %v, want [2 4]", ids(got))
	}
}

func TestDeriveBounds(t *testing.T) {
	b := DeriveBounds(sampleInventory())

	if b.PriceMin != 15000 || b.PriceMax != 35000 {
		t.Fatalf("price bounds = [%v %v], want [15000 35000]", b.PriceMin, b.PriceMax)
	}
	if b.YearMin != 2019 || b.YearMax != 2024 {
		t.Fatalf("year bounds = [%d %d], want [2019 2024]", b.YearMin, b.YearMax)
	}
	if !reflect.DeepEqual(b.Makes, []string{"HONDA", "MAZDA", "TOYOTA"}) {
		t.Fatalf("makes = %v", b.Makes)
	}
	if !reflect.DeepEqual(b.Models, []string{"ACCORD", "CAMRY", "CIVIC", "COROLLA", "MX-5"}) {
		t.Fatalf("models = %v", b.Models)
	}

	zero := DeriveBounds(nil)
	if zero.PriceMax != 0 || len(zero.Makes) != 0 {
		t.Fatalf("empty inventory bounds = %#v, want zero", zero)
	}
}

func TestBounds_FullRangePreservesSurvivingSelections(t *testing.T) {
	b := DeriveBounds(sampleInventory())

	selected := map[string]bool{"TOYOTA": true, "FORD": true}
	c := b.FullRange(selected, nil)

	if c.PriceMin != b.PriceMin || c.PriceMax != b.PriceMax || c.YearMin != b.YearMin || c.YearMax != b.YearMax {
		t.Fatalf("ranges not reset to full bounds: %#v", c)
	}
	if !c.Makes["TOYOTA"] {
		t.Fatalf("surviving selection dropped: %#v", c.Makes)
	}
	if c.Makes["FORD"] {
		t.Fatalf("stale selection kept: %#v", c.Makes)
	}
	if c.Models != nil {
		t.Fatalf("empty selection should stay nil, got %#v", c.Models)
	}
}

func contains(vehicles []api.Vehicle, id int64) bool {
	for _, v := range vehicles {
		if v.ID == id {
			return true
		}
	}
	return false
}
