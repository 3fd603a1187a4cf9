package wordhash

import (
	"testing"

	"github.com/jessejeter/spanish-tools/internal/domain"
)

func TestNormalize(t *testing.T) {
	entry := domain.Entry{
		Spanish:      "  El Perro \r\n",
		English:      "The dog",
		PartOfSpeech: "Noun (M)",
	}
	expected := "el perro\nthe dog\nnoun (m)"
	normalized := Normalize(entry)

	if normalized != expected {
		t.Errorf("Expected normalized string to be '%s', but got '%s'", expected, normalized)
	}
}

func TestHash(t *testing.T) {
	t.Run("hash is deterministic", func(t *testing.T) {
		entry1 := domain.Entry{Spanish: "hablar", English: "to speak"}
		entry2 := domain.Entry{Spanish: "hablar", English: "to speak"}
		if Hash(entry1) != Hash(entry2) {
			t.Error("Expected hashes for identical entries to be the same")
		}
	})

	t.Run("normalization produces same hash", func(t *testing.T) {
		entry1 := domain.Entry{
			Spanish: "  hablar ",
			English: "To Speak",
		}
		entry2 := domain.Entry{
			Spanish: "Hablar",
			English: "to speak",
		}
		if Hash(entry1) != Hash(entry2) {
			t.Error("Expected hashes to be the same after normalization, but they were different.")
		}
	})

	t.Run("different entries have different hashes", func(t *testing.T) {
		entry1 := domain.Entry{Spanish: "pero", English: "but"}
		entry2 := domain.Entry{Spanish: "perro", English: "dog"}
		if Hash(entry1) == Hash(entry2) {
			t.Error("Expected hashes for different entries to be different")
		}
	})

	t.Run("notes and popularity do not affect the hash", func(t *testing.T) {
		entry1 := domain.Entry{Spanish: "hablar", English: "to speak"}
		entry2 := domain.Entry{Spanish: "hablar", English: "to speak", Note: "regular -ar verb", Popularity: 12}
		if Hash(entry1) != Hash(entry2) {
			t.Error("Expected notes and popularity to be excluded from the hash")
		}
	})
}
