package srs

import (
	"testing"
	"time"
)

func TestDueBy(t *testing.T) {
	items := []Item{
		{ID: "c", Due: day(3)},
		{ID: "a", Due: day(1)},
		{ID: "b", Due: day(1)},
		{ID: "d", Due: day(9)},
	}

	t.Run("filters and orders by due time then ID", func(t *testing.T) {
		due := DueBy(items, day(3))
		expected := []string{"a", "b", "c"}
		if len(due) != len(expected) {
			t.Fatalf("Expected %d due items, but got %d", len(expected), len(due))
		}
		for i, id := range expected {
			if due[i].ID != id {
				t.Errorf("Expected item %d to be %q, but got %q", i, id, due[i].ID)
			}
		}
	})

	t.Run("never returns an item past the cutoff", func(t *testing.T) {
		for _, it := range DueBy(items, day(3)) {
			if it.Due.After(day(3)) {
				t.Errorf("Item %q is due %v, past the cutoff", it.ID, it.Due)
			}
		}
	})

	t.Run("includes items due exactly at the cutoff", func(t *testing.T) {
		due := DueBy(items, day(9))
		if len(due) != 4 {
			t.Errorf("Expected all 4 items due at the cutoff, but got %d", len(due))
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		first := DueBy(items, day(3))
		second := DueBy(items, day(3))
		if len(first) != len(second) {
			t.Fatalf("Expected repeated calls to agree on length, but got %d and %d", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID {
				t.Errorf("Expected position %d to match, but got %q and %q", i, first[i].ID, second[i].ID)
			}
		}
	})

	t.Run("does not modify the input", func(t *testing.T) {
		before := make([]Item, len(items))
		copy(before, items)
		DueBy(items, day(9))
		for i := range items {
			if items[i] != before[i] {
				t.Errorf("Expected input slice to be untouched, but index %d changed", i)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if due := DueBy(nil, day(1)); len(due) != 0 {
			t.Errorf("Expected no due items, but got %d", len(due))
		}
	})
}

func TestDueByCutoffBeforeEverything(t *testing.T) {
	items := []Item{{ID: "a", Due: day(5)}}
	if due := DueBy(items, day0.Add(-time.Hour)); len(due) != 0 {
		t.Errorf("Expected no due items before day 0, but got %d", len(due))
	}
}
