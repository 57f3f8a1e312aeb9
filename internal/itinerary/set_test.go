package itinerary

import (
	"errors"
	"testing"

	"tabi/internal/model"
)

func TestDefaultDaysAscendingAndContiguous(t *testing.T) {
	s := Default()
	days := s.Days()
	if len(days) != 8 {
		t.Fatalf("len(Days()) = %d, want 8", len(days))
	}
	for i, d := range days {
		if d.ID != i+1 {
			t.Fatalf("day at %d has id %d", i, d.ID)
		}
	}
}

func TestDefaultFigures(t *testing.T) {
	s := Default()

	if got := s.TotalCost(); got != 322500 {
		t.Errorf("TotalCost() = %v, want 322500", got)
	}
	if got := s.ActivityCount(); got != 48 {
		t.Errorf("ActivityCount() = %d, want 48", got)
	}
	if got := s.NavigableActivities(); got != 47 {
		t.Errorf("NavigableActivities() = %d, want 47", got)
	}

	wantAreas := []string{"Tokyo", "Tokyo Disney", "Mount Fuji Region", "Osaka", "Kyoto", "Hiroshima"}
	areas := s.Areas()
	if len(areas) != len(wantAreas) {
		t.Fatalf("Areas() = %v", areas)
	}
	for i := range wantAreas {
		if areas[i] != wantAreas[i] {
			t.Fatalf("Areas()[%d] = %q, want %q", i, areas[i], wantAreas[i])
		}
	}

	if trip := s.Trip(); trip.GroupSize != 3 || len(trip.Cities) != 4 {
		t.Errorf("Trip() = %+v", trip)
	}
	if len(s.Routes()) != 6 {
		t.Errorf("len(Routes()) = %d, want 6", len(s.Routes()))
	}

	b := s.Budget()
	if len(b.Paid) != 9 || len(b.Unpaid) != 3 {
		t.Errorf("payment items = %d paid, %d unpaid", len(b.Paid), len(b.Unpaid))
	}
	// Headline totals are authored figures, not sums of the items.
	if b.PaidTotal != 323001 || b.UnpaidTotal != 23834 || b.PaidPercentage != 91 {
		t.Errorf("unexpected payment totals %v / %v / %d%%", b.PaidTotal, b.UnpaidTotal, b.PaidPercentage)
	}
	pct := 0
	for _, l := range b.Breakdown {
		pct += l.Percentage
	}
	if pct != 100 {
		t.Errorf("breakdown percentages sum to %d", pct)
	}
}

func TestLookups(t *testing.T) {
	s := Default()

	acts, err := s.Activities(1)
	if err != nil {
		t.Fatalf("Activities(1): %v", err)
	}
	if len(acts) != 4 || acts[0].Time != "20:00" {
		t.Fatalf("unexpected day 1 activities: %+v", acts)
	}

	acc, err := s.Accommodation(1)
	if err != nil || acc == nil {
		t.Fatalf("Accommodation(1) = %v, %v", acc, err)
	}
	if acc.Price != 66000 || acc.Nights != 4 {
		t.Fatalf("unexpected accommodation %+v", acc)
	}

	acc, err = s.Accommodation(2)
	if err != nil || acc != nil {
		t.Fatalf("Accommodation(2) = %v, %v; want nil, nil", acc, err)
	}

	for _, id := range []int{0, -1, 9} {
		if _, err := s.Day(id); !errors.Is(err, ErrDayNotFound) {
			t.Errorf("Day(%d) err = %v, want ErrDayNotFound", id, err)
		}
		if _, err := s.Activities(id); !errors.Is(err, ErrDayNotFound) {
			t.Errorf("Activities(%d) err = %v, want ErrDayNotFound", id, err)
		}
	}
}

func TestReturnedValuesAreCopies(t *testing.T) {
	s := Default()

	days := s.Days()
	days[0].Title = "changed"
	days[0].Activities[0].Description = "changed"
	days[0].Accommodation.Features[0] = "changed"

	d, _ := s.Day(1)
	if d.Title == "changed" || d.Activities[0].Description == "changed" || d.Accommodation.Features[0] == "changed" {
		t.Fatal("mutating returned days leaked into the set")
	}

	b := s.Budget()
	b.Paid[0].Amount = 0
	if s.Budget().Paid[0].Amount == 0 {
		t.Fatal("mutating returned budget leaked into the set")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		days []model.Day
	}{
		{name: "empty", days: nil},
		{name: "not starting at one", days: []model.Day{{ID: 2}}},
		{name: "gap", days: []model.Day{{ID: 1}, {ID: 3}}},
		{name: "duplicate", days: []model.Day{{ID: 1}, {ID: 1}}},
		{name: "out of order", days: []model.Day{{ID: 2}, {ID: 1}}},
		{name: "negative day cost", days: []model.Day{{ID: 1, TotalCost: -1}}},
		{name: "negative activity cost", days: []model.Day{{ID: 1, Activities: []model.Activity{{Cost: -5}}}}},
		{name: "negative stay price", days: []model.Day{{ID: 1, Accommodation: &model.Accommodation{Price: -1}}}},
		{name: "rating above five", days: []model.Day{{ID: 1, Accommodation: &model.Accommodation{Rating: 6}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.days); !errors.Is(err, ErrInvalid) {
				t.Fatalf("New() err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	days := []model.Day{{ID: 1, Title: "a", Activities: []model.Activity{{Description: "x"}}}}
	s, err := New(days)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	days[0].Title = "b"
	days[0].Activities[0].Description = "y"

	d, _ := s.Day(1)
	if d.Title != "a" || d.Activities[0].Description != "x" {
		t.Fatalf("set shares storage with caller: %+v", d)
	}
}
