package domain

import "testing"

func TestLogbookPageApplyMergesForm(t *testing.T) {
	p := &LogbookPage{Date: "2025-03-03", Index: 1, FormData: map[string]string{"carrier": "ACME", "truck": "12"}}

	p.Apply(LogbookUpdate{FormData: map[string]string{"truck": "14", "trailer": "T-9"}})

	if p.FormData["carrier"] != "ACME" || p.FormData["truck"] != "14" || p.FormData["trailer"] != "T-9" {
		t.Fatalf("form = %v", p.FormData)
	}
	if p.SleeperBerth.Active {
		t.Fatalf("override changed without being set")
	}

	o := NewSleeperBerthOverride(true, "19:00")
	p.Apply(LogbookUpdate{SleeperBerth: &o})
	if p.SleeperBerth != o {
		t.Fatalf("override = %+v, want %+v", p.SleeperBerth, o)
	}
	if len(p.FormData) != 3 {
		t.Fatalf("form changed by override-only update: %v", p.FormData)
	}
}

func TestOverridesByDateUsesFirstPage(t *testing.T) {
	pages := []*LogbookPage{
		{Date: "2025-03-03", Index: 1, SleeperBerth: SleeperBerthOverride{Active: true, Hour: 20}},
		{Date: "2025-03-03", Index: 2, SleeperBerth: SleeperBerthOverride{Active: true, Hour: 5}},
		{Date: "2025-03-04", Index: 2, SleeperBerth: SleeperBerthOverride{Active: true, Hour: 6}},
	}

	got := OverridesByDate(pages)
	if got["2025-03-03"].Hour != 20 {
		t.Fatalf("2025-03-03 = %+v, want hour 20", got["2025-03-03"])
	}
	if _, ok := got["2025-03-04"]; ok {
		t.Fatalf("2025-03-04 has no page 1 but got %+v", got["2025-03-04"])
	}
}
