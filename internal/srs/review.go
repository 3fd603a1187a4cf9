package srs

import (
	"fmt"
	"math"
	"time"
)

// Review computes the item's next interval and due date from one review
// outcome. The input item is not mutated; the updated copy is returned.
//
// A review recorded before the item's last review fails with
// ErrInvalidTimestamp and returns the item as it was.
func (p *Params) Review(item Item, outcome Outcome, now time.Time) (Item, error) {
	if !outcome.IsValid() {
		return item, fmt.Errorf("%w: %d", ErrInvalidOutcome, int(outcome))
	}
	if !item.LastReview.IsZero() && now.Before(item.LastReview) {
		return item, fmt.Errorf("%w: review at %s, last review at %s",
			ErrInvalidTimestamp, now.Format(time.RFC3339), item.LastReview.Format(time.RFC3339))
	}

	if outcome == Fail {
		item.Lapses++
		item.Repetitions = 0
		item.IntervalDays = p.MinIntervalDays
		item.Ease = p.clampEase(item.Ease - p.FailPenalty)
	} else {
		item.Repetitions++
		item.IntervalDays = p.nextInterval(item.IntervalDays, item.Ease, outcome)

		switch outcome {
		case Hard:
			item.Ease = p.clampEase(item.Ease - p.HardPenalty)
		case Easy:
			item.Ease = p.clampEase(item.Ease + p.EasyBonus)
		}
	}

	item.Due = now.AddDate(0, 0, item.IntervalDays)
	item.LastReview = now
	return item, nil
}

// nextInterval grows the interval for a successful review: previous interval
// times the ease factor, scaled by the outcome multiplier, rounded to the
// nearest whole day and bounded to [MinIntervalDays, MaxIntervalDays].
// The cap is applied before the float conversion so a long streak of easy
// reviews cannot overflow the interval or push the due date out of the
// time.Time range.
func (p *Params) nextInterval(intervalDays int, ease float64, outcome Outcome) int {
	multiplier := 1.0
	switch outcome {
	case Hard:
		multiplier = p.HardMultiplier
	case Easy:
		multiplier = p.EasyMultiplier
	}

	grown := float64(intervalDays) * ease * multiplier
	if grown > float64(p.MaxIntervalDays) {
		return p.MaxIntervalDays
	}

	next := int(math.Round(grown))
	if next < p.MinIntervalDays {
		next = p.MinIntervalDays
	}
	return next
}
