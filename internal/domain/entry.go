package domain

import "time"

// Entry represents a single vocabulary item in the learner's deck.
// The front of the flashcard is the Spanish word, the back is the English
// translation plus any notes.
type Entry struct {
	Spanish      string
	English      string
	PartOfSpeech string
	Note         string
	Popularity   int
	DateAdded    time.Time
	Hash         string
}

// ReviewLog records a single review event for an entry.
// The Outcome corresponds to the scheduler grades:
// 1: Fail (forgot)
// 2: Hard
// 3: Good
// 4: Easy
type ReviewLog struct {
	EntryHash  string
	ReviewedAt time.Time
	Outcome    int
}
