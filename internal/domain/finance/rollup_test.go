package finance

import "testing"

func rollupFixture() []Record {
	return []Record{
		{Location: "A", ManagerID: "m1", Category: "chairs", Total: d("10"), Quantity: d("1")},
		{Location: "A", ManagerID: "m2", Category: "tables", Total: d("5"), Quantity: d("2")},
		{Location: "B", ManagerID: "m1", Category: "chairs", Total: d("7"), Quantity: d("3")},
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(rollupFixture(), Filter{})
	if !got.Sum.Equal(d("22")) || got.Count != 3 || !got.Quantity.Equal(d("6")) {
		t.Errorf("Summarize = {%s %d %s}, want {22 3 6}", got.Sum, got.Count, got.Quantity)
	}
}

func TestSummarizeFiltersCompose(t *testing.T) {
	// AND semantics: location and manager must both match
	got := Summarize(rollupFixture(), Filter{Location: "A", ManagerID: "m1"})
	if !got.Sum.Equal(d("10")) || got.Count != 1 {
		t.Errorf("Summarize = {%s %d}, want {10 1}", got.Sum, got.Count)
	}

	got = Summarize(rollupFixture(), Filter{Location: "A", ManagerID: "m1", Category: "tables"})
	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
}

func TestGroupByLocationFirstSeenOrder(t *testing.T) {
	got := GroupByLocation(rollupFixture(), Filter{})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Key != "A" || !got[0].Sum.Equal(d("15")) || got[0].Count != 2 {
		t.Errorf("bucket[0] = {%s %s %d}, want {A 15 2}", got[0].Key, got[0].Sum, got[0].Count)
	}
	if got[1].Key != "B" || !got[1].Sum.Equal(d("7")) || got[1].Count != 1 {
		t.Errorf("bucket[1] = {%s %s %d}, want {B 7 1}", got[1].Key, got[1].Sum, got[1].Count)
	}
}

func TestGroupBySentinels(t *testing.T) {
	records := []Record{
		{Total: d("3")}, // no location, no manager
		{Location: "A", ManagerID: "m1", Total: d("4")},
	}

	byLoc := GroupByLocation(records, Filter{})
	if byLoc[0].Key != UnknownLocation {
		t.Errorf("location key = %q, want %q", byLoc[0].Key, UnknownLocation)
	}

	byMgr := GroupByManager(records, Filter{})
	if byMgr[0].Key != UnassignedManager {
		t.Errorf("manager key = %q, want %q", byMgr[0].Key, UnassignedManager)
	}
}

func TestFilterMatchesSentinelKeys(t *testing.T) {
	records := []Record{
		{Total: d("3")},
		{Location: "A", Total: d("4")},
	}
	// filtering on the sentinel selects records with the key absent
	got := Summarize(records, Filter{Location: UnknownLocation})
	if got.Count != 1 || !got.Sum.Equal(d("3")) {
		t.Errorf("Summarize = {%s %d}, want {3 1}", got.Sum, got.Count)
	}
}

func TestGroupByEmptyInput(t *testing.T) {
	if got := GroupByManager(nil, Filter{}); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	sum := Summarize(nil, Filter{})
	if !sum.Sum.IsZero() || sum.Count != 0 {
		t.Errorf("Summarize(nil) = {%s %d}, want zeros", sum.Sum, sum.Count)
	}
}
