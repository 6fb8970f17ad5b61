package finance

import "github.com/shopspring/decimal"

// Sentinel keys substituted when a grouping dimension is absent. One
// sentinel per dimension, applied uniformly across every report.
const (
	UnknownLocation   = "Unknown"
	UnassignedManager = "Unassigned"
)

// Record is the transaction-like shape the rollup aggregator folds over.
// Callers map orders, sales, purchases and expenses into it.
type Record struct {
	Location  string
	ManagerID string
	Category  string
	Total     decimal.Decimal
	Quantity  decimal.Decimal
}

// Filter selects records before aggregation. Empty fields are inactive;
// active fields compose with AND semantics. Location and manager values
// are compared against the sentinel-defaulted keys, so filtering on
// "Unknown" selects records with no location.
type Filter struct {
	Location  string
	ManagerID string
	Category  string
}

func (f Filter) Match(r Record) bool {
	if f.Location != "" && locationKey(r) != f.Location {
		return false
	}
	if f.ManagerID != "" && managerKey(r) != f.ManagerID {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	return true
}

// Summary is a flat aggregate over a filtered record set.
type Summary struct {
	Sum      decimal.Decimal `json:"sum"`
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Bucket is one group in a keyed breakdown.
type Bucket struct {
	Key      string          `json:"key"`
	Sum      decimal.Decimal `json:"sum"`
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Summarize folds the filtered records into a single summary.
func Summarize(records []Record, filter Filter) Summary {
	s := Summary{Sum: decimal.Zero, Quantity: decimal.Zero}
	for _, r := range records {
		if !filter.Match(r) {
			continue
		}
		s.Sum = s.Sum.Add(r.Total)
		s.Quantity = s.Quantity.Add(r.Quantity)
		s.Count++
	}
	return s
}

// GroupByLocation groups the filtered records by location, substituting
// UnknownLocation for a missing key. Buckets come back in first-seen order.
func GroupByLocation(records []Record, filter Filter) []Bucket {
	return groupBy(records, filter, locationKey)
}

// GroupByManager groups the filtered records by owning manager id,
// substituting UnassignedManager for a missing key. Buckets come back in
// first-seen order. Keys are opaque ids; joining them to display names is
// the caller's concern.
func GroupByManager(records []Record, filter Filter) []Bucket {
	return groupBy(records, filter, managerKey)
}

func locationKey(r Record) string {
	if r.Location == "" {
		return UnknownLocation
	}
	return r.Location
}

func managerKey(r Record) string {
	if r.ManagerID == "" {
		return UnassignedManager
	}
	return r.ManagerID
}

// groupBy is a single-pass fold: each record adds its contribution to the
// bucket for its key, creating the bucket on first encounter. Output order
// is insertion order, not sorted order.
func groupBy(records []Record, filter Filter, key func(Record) string) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket
	for _, r := range records {
		if !filter.Match(r) {
			continue
		}
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{Key: k, Sum: decimal.Zero, Quantity: decimal.Zero})
		}
		buckets[i].Sum = buckets[i].Sum.Add(r.Total)
		buckets[i].Quantity = buckets[i].Quantity.Add(r.Quantity)
		buckets[i].Count++
	}
	return buckets
}
