package srs

import (
	"encoding"
	"fmt"
)

// Outcome is the grade a learner assigns to one review attempt.
type Outcome int

const (
	Fail Outcome = iota + 1 // Could not recall the entry.
	Hard                    // Recalled with significant difficulty.
	Good                    // Recalled with some effort.
	Easy                    // Recalled effortlessly.
)

var (
	outcomeNames = [...]string{Fail: "Fail", Hard: "Hard", Good: "Good", Easy: "Easy"}

	outcomeByName = map[string]Outcome{
		"Fail": Fail,
		"Hard": Hard,
		"Good": Good,
		"Easy": Easy,
	}
)

var (
	_ fmt.Stringer             = Outcome(0)
	_ encoding.TextMarshaler   = Outcome(0)
	_ encoding.TextUnmarshaler = (*Outcome)(nil)
)

// IsValid reports whether o is one of the four defined outcomes.
func (o Outcome) IsValid() bool {
	return o >= Fail && o <= Easy
}

// String returns the name of the outcome ("Fail", "Hard", "Good", "Easy").
// For invalid values it returns "Outcome(n)".
func (o Outcome) String() string {
	if o.IsValid() {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutcome, int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, ok := outcomeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, text)
	}
	*o = v
	return nil
}
