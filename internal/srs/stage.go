package srs

import "fmt"

// Stage is the learning stage of an item, derived from its review state.
type Stage int

const (
	StageNew      Stage = iota + 1 // Never answered correctly, never lapsed.
	StageLearning                  // In the short-interval learning cycle.
	StageMature                    // Interval has reached the mature threshold.
	StageLapsed                    // Forgotten, relearning from the start.
)

var stageNames = [...]string{
	StageNew:      "new",
	StageLearning: "learning",
	StageMature:   "mature",
	StageLapsed:   "lapsed",
}

// String returns the lowercase stage name, or "Stage(n)" for invalid values.
func (s Stage) String() string {
	if s >= StageNew && s <= StageLapsed {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Stage derives the learning stage of an item.
//
// Items cycle indefinitely: a lapse sends a learning or mature item back
// through StageLapsed, and successful reviews carry it through StageLearning
// toward StageMature again.
func (p *Params) Stage(item Item) Stage {
	switch {
	case item.Repetitions == 0 && item.Lapses == 0:
		return StageNew
	case item.Repetitions == 0:
		return StageLapsed
	case item.IntervalDays >= p.MatureIntervalDays:
		return StageMature
	default:
		return StageLearning
	}
}
