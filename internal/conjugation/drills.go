package conjugation

import (
	"fmt"
	"strings"

	"github.com/jessejeter/spanish-tools/internal/domain"
)

// IsVerb reports whether an entry's part of speech marks it as conjugatable.
// SpanishDict uses variants like "transitive verb" and "reflexive verb".
func IsVerb(partOfSpeech string) bool {
	return strings.Contains(strings.ToLower(partOfSpeech), "verb")
}

// Drills expands a verb entry into one flashcard per person for the given
// tense. The front asks for a conjugated form, the back is the form itself.
// Returns ErrNotInfinitive when the entry's Spanish word cannot be
// conjugated.
func Drills(entry domain.Entry, tense Tense) ([]domain.Entry, error) {
	table, err := Conjugate(entry.Spanish)
	if err != nil {
		return nil, err
	}

	forms, ok := table.Forms(tense)
	if !ok {
		return nil, fmt.Errorf("conjugation: unsupported tense %q", tense)
	}

	drills := make([]domain.Entry, 0, len(forms))
	for i, form := range forms {
		drills = append(drills, domain.Entry{
			Spanish:      fmt.Sprintf("%s (%s, %s)", table.Infinitive, tense, Persons[i]),
			English:      form,
			PartOfSpeech: "conjugation drill",
			Note:         entry.English,
			DateAdded:    entry.DateAdded,
		})
	}
	return drills, nil
}
