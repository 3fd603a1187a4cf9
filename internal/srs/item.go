package srs

import "time"

// Item holds the scheduling state for one entry under spaced repetition.
// The zero LastReview means the item has never been reviewed.
type Item struct {
	ID           string
	Ease         float64
	IntervalDays int
	Repetitions  int
	Lapses       int
	Due          time.Time
	LastReview   time.Time
	Created      time.Time
}

// NewItem creates the review state for an entry just added to the deck.
// The item is due immediately.
func NewItem(id string, now time.Time) Item {
	return Item{
		ID:      id,
		Ease:    StartingEase,
		Due:     now,
		Created: now,
	}
}

// IsDue reports whether the item is eligible for review at the given time.
func (it Item) IsDue(now time.Time) bool {
	return !now.Before(it.Due)
}
