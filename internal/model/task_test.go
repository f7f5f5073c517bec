package model

import "testing"

func TestGenerateCatalogFixedLists(t *testing.T) {
	catalog := GenerateCatalog()

	daily := []struct {
		id     string
		points int
	}{
		{"dishes", 15},
		{"kitchen_counter", 10},
		{"make_beds", 10},
		{"bathroom_quick", 10},
		{"living_room_tidy", 15},
	}
	if len(catalog.Daily) != len(daily) {
		t.Fatalf("expected %d daily tasks, got %d", len(daily), len(catalog.Daily))
	}
	for i, want := range daily {
		got := catalog.Daily[i]
		if got.ID != want.id || got.Points != want.points {
			t.Errorf("daily[%d]: expected %s/%d, got %s/%d", i, want.id, want.points, got.ID, got.Points)
		}
		if got.PartnerRequired {
			t.Errorf("daily task %s must not require a partner", got.ID)
		}
	}

	weekly := []struct {
		id      string
		points  int
		partner bool
	}{
		{"deep_clean_bathroom", 40, true},
		{"vacuum_house", 30, true},
		{"deep_clean_kitchen", 50, true},
		{"mop_floors", 25, true},
		{"laundry_complete", 20, false},
	}
	if len(catalog.Weekly) != len(weekly) {
		t.Fatalf("expected %d weekly tasks, got %d", len(weekly), len(catalog.Weekly))
	}
	for i, want := range weekly {
		got := catalog.Weekly[i]
		if got.ID != want.id || got.Points != want.points || got.PartnerRequired != want.partner {
			t.Errorf("weekly[%d]: expected %s/%d/partner=%v, got %s/%d/partner=%v",
				i, want.id, want.points, want.partner, got.ID, got.Points, got.PartnerRequired)
		}
	}
}

func TestGenerateCatalogSillySample(t *testing.T) {
	pool := make(map[string]bool, len(sillyPool))
	for _, task := range sillyPool {
		pool[task.ID] = true
	}

	sizes := map[int]int{}
	for i := 0; i < 200; i++ {
		silly := GenerateCatalog().Silly

		if len(silly) < 3 || len(silly) > 4 {
			t.Fatalf("expected 3-4 silly tasks, got %d", len(silly))
		}
		sizes[len(silly)]++

		seen := map[string]bool{}
		for _, task := range silly {
			if !pool[task.ID] {
				t.Fatalf("silly task %s is not in the pool", task.ID)
			}
			if seen[task.ID] {
				t.Fatalf("silly task %s sampled twice", task.ID)
			}
			seen[task.ID] = true
		}
	}

	if sizes[3] == 0 || sizes[4] == 0 {
		t.Errorf("expected both sample sizes over 200 runs, got %v", sizes)
	}
}

func TestCatalogIndex(t *testing.T) {
	catalog := GenerateCatalog()
	idx := catalog.Index()

	want := 10 + len(catalog.Silly)
	if len(idx) != want {
		t.Fatalf("expected %d indexed tasks, got %d", want, len(idx))
	}

	dishes, ok := idx["dishes"]
	if !ok {
		t.Fatal("expected dishes in index")
	}
	if dishes.Points != 15 {
		t.Errorf("expected 15 points for dishes, got %d", dishes.Points)
	}

	if _, ok := idx["sweep_chimney"]; ok {
		t.Error("did not expect unknown id in index")
	}
}
