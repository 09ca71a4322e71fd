package services

import (
	"math"
	"testing"
)

func TestRecapEightDayWindow(t *testing.T) {
	onDuty := []float64{8, 8, 8, 8, 8, 8, 8, 8}

	r, err := Recap(onDuty, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"on duty today", r.OnDutyToday, 8},
		{"70 A", r.SeventyA, 56},
		{"70 B", r.SeventyB, 14},
		{"70 C", r.SeventyC, 64},
		{"60 A", r.SixtyA, 40},
		{"60 B", r.SixtyB, 20},
		{"60 C", r.SixtyC, 56},
	}
	for _, c := range checks {
		if !approx(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestRecapClipsAtTripStart(t *testing.T) {
	onDuty := []float64{10, 11}

	r, err := Recap(onDuty, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SeventyA != 10 || r.SeventyC != 10 || r.SixtyA != 10 || r.SixtyC != 10 {
		t.Fatalf("day 0 recap = %+v, want every window to be 10", r)
	}

	r, _ = Recap(onDuty, 1)
	if r.SeventyA != 21 || r.SeventyB != 49 || r.SixtyB != 39 {
		t.Fatalf("day 1 recap = %+v, want A=21 B=49 60B=39", r)
	}
}

func TestRecapRemainingNeverNegative(t *testing.T) {
	onDuty := []float64{14, 14, 14, 14, 14, 14}

	r, err := Recap(onDuty, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SeventyA != 84 || r.SeventyB != 0 {
		t.Fatalf("70 A/B = %v/%v, want 84/0", r.SeventyA, r.SeventyB)
	}
	if r.SixtyA != 70 || r.SixtyB != 0 {
		t.Fatalf("60 A/B = %v/%v, want 70/0", r.SixtyA, r.SixtyB)
	}
}

func TestRecapIgnoresLaterDays(t *testing.T) {
	a, _ := Recap([]float64{5, 6, 7}, 1)
	b, _ := Recap([]float64{5, 6, 7, 24, 24}, 1)
	if a != b {
		t.Fatalf("recap changed with later days: %+v vs %+v", a, b)
	}
}

func TestRecapTreatsNegativeAndNaNAsZero(t *testing.T) {
	r, err := Recap([]float64{-3, math.NaN(), 4}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SeventyA != 4 {
		t.Fatalf("70 A = %v, want 4", r.SeventyA)
	}
}

func TestRecapOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3} {
		_, err := Recap([]float64{1, 2, 3}, idx)
		if err == nil {
			t.Fatalf("Recap(idx=%d) expected error", idx)
		}
		if !Error.Has(err) {
			t.Fatalf("Recap(idx=%d) error %v is not of class %q", idx, err, "hos")
		}
	}

	if _, err := Recap(nil, 0); err == nil || !Error.Has(err) {
		t.Fatalf("Recap(nil, 0) error = %v, want hos error", err)
	}
}

func TestRecapAll(t *testing.T) {
	got := RecapAll([]float64{8, 9, 10})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[2].SeventyA != 27 || got[2].OnDutyToday != 10 {
		t.Fatalf("day 2 recap = %+v, want A=27 today=10", got[2])
	}
}
