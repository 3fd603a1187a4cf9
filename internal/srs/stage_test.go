package srs

import (
	"testing"
)

func TestStage(t *testing.T) {
	params := DefaultParams()

	cases := []struct {
		name     string
		item     Item
		expected Stage
	}{
		{"fresh item", Item{}, StageNew},
		{"first success", Item{Repetitions: 1, IntervalDays: 1}, StageLearning},
		{"just under the mature threshold", Item{Repetitions: 5, IntervalDays: 20}, StageLearning},
		{"at the mature threshold", Item{Repetitions: 5, IntervalDays: 21}, StageMature},
		{"well past mature", Item{Repetitions: 9, IntervalDays: 120}, StageMature},
		{"lapsed after progress", Item{Repetitions: 0, Lapses: 2, IntervalDays: 1}, StageLapsed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := params.Stage(tc.item); got != tc.expected {
				t.Errorf("Expected stage %v, but got %v", tc.expected, got)
			}
		})
	}
}

func TestStageCycle(t *testing.T) {
	// An item lapses out of learning and works its way back.
	params := DefaultParams()
	item := NewItem("abc", day0)

	if params.Stage(item) != StageNew {
		t.Fatalf("Expected a fresh item to be new, but got %v", params.Stage(item))
	}

	item, _ = params.Review(item, Good, day0)
	if params.Stage(item) != StageLearning {
		t.Errorf("Expected learning after one success, but got %v", params.Stage(item))
	}

	item, _ = params.Review(item, Fail, item.Due)
	if params.Stage(item) != StageLapsed {
		t.Errorf("Expected lapsed after a fail, but got %v", params.Stage(item))
	}

	for params.Stage(item) != StageMature {
		var err error
		item, err = params.Review(item, Good, item.Due)
		if err != nil {
			t.Fatalf("Review returned an unexpected error: %v", err)
		}
		if item.Repetitions > 20 {
			t.Fatal("Expected the item to mature within 20 reviews")
		}
	}
}
