package conjugation

import (
	"errors"
	"testing"

	"github.com/jessejeter/spanish-tools/internal/domain"
)

func TestConjugateRegular(t *testing.T) {
	testCases := []struct {
		verb     string
		tense    Tense
		expected [6]string
	}{
		{"hablar", Present, [6]string{"hablo", "hablas", "habla", "hablamos", "habláis", "hablan"}},
		{"hablar", Preterite, [6]string{"hablé", "hablaste", "habló", "hablamos", "hablasteis", "hablaron"}},
		{"hablar", Imperfect, [6]string{"hablaba", "hablabas", "hablaba", "hablábamos", "hablabais", "hablaban"}},
		{"hablar", Future, [6]string{"hablaré", "hablarás", "hablará", "hablaremos", "hablaréis", "hablarán"}},
		{"comer", Present, [6]string{"como", "comes", "come", "comemos", "coméis", "comen"}},
		{"comer", Preterite, [6]string{"comí", "comiste", "comió", "comimos", "comisteis", "comieron"}},
		{"vivir", Present, [6]string{"vivo", "vives", "vive", "vivimos", "vivís", "viven"}},
		{"vivir", Imperfect, [6]string{"vivía", "vivías", "vivía", "vivíamos", "vivíais", "vivían"}},
	}

	for _, tc := range testCases {
		t.Run(tc.verb+"/"+string(tc.tense), func(t *testing.T) {
			table, err := Conjugate(tc.verb)
			if err != nil {
				t.Fatalf("Conjugate returned an unexpected error: %v", err)
			}
			forms, ok := table.Forms(tc.tense)
			if !ok {
				t.Fatalf("Expected table to include the %s tense", tc.tense)
			}
			if forms != tc.expected {
				t.Errorf("Expected forms %v, but got %v", tc.expected, forms)
			}
		})
	}
}

func TestConjugateIrregular(t *testing.T) {
	testCases := []struct {
		verb     string
		tense    Tense
		expected [6]string
	}{
		{"ser", Present, [6]string{"soy", "eres", "es", "somos", "sois", "son"}},
		{"ser", Imperfect, [6]string{"era", "eras", "era", "éramos", "erais", "eran"}},
		{"ir", Present, [6]string{"voy", "vas", "va", "vamos", "vais", "van"}},
		{"ir", Future, [6]string{"iré", "irás", "irá", "iremos", "iréis", "irán"}},
		{"oír", Present, [6]string{"oigo", "oyes", "oye", "oímos", "oís", "oyen"}},
		// Accented -ír infinitives follow the -ir pattern without an override.
		{"reír", Imperfect, [6]string{"reía", "reías", "reía", "reíamos", "reíais", "reían"}},
		{"tener", Future, [6]string{"tendré", "tendrás", "tendrá", "tendremos", "tendréis", "tendrán"}},
		{"hacer", Preterite, [6]string{"hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"}},
		// Irregular verbs keep the regular pattern in tenses with no override.
		{"hacer", Imperfect, [6]string{"hacía", "hacías", "hacía", "hacíamos", "hacíais", "hacían"}},
		{"estar", Future, [6]string{"estaré", "estarás", "estará", "estaremos", "estaréis", "estarán"}},
	}

	for _, tc := range testCases {
		t.Run(tc.verb+"/"+string(tc.tense), func(t *testing.T) {
			table, err := Conjugate(tc.verb)
			if err != nil {
				t.Fatalf("Conjugate returned an unexpected error: %v", err)
			}
			forms, ok := table.Forms(tc.tense)
			if !ok {
				t.Fatalf("Expected table to include the %s tense", tc.tense)
			}
			if forms != tc.expected {
				t.Errorf("Expected forms %v, but got %v", tc.expected, forms)
			}
		})
	}
}

func TestConjugateNormalizesInput(t *testing.T) {
	table, err := Conjugate("  Hablar ")
	if err != nil {
		t.Fatalf("Conjugate returned an unexpected error: %v", err)
	}
	if table.Infinitive != "hablar" {
		t.Errorf("Expected infinitive 'hablar', but got '%s'", table.Infinitive)
	}
}

func TestConjugateNotInfinitive(t *testing.T) {
	for _, word := range []string{"perro", "azul", "el", ""} {
		if _, err := Conjugate(word); !errors.Is(err, ErrNotInfinitive) {
			t.Errorf("Expected ErrNotInfinitive for %q, but got %v", word, err)
		}
	}
}

func TestIsVerb(t *testing.T) {
	testCases := []struct {
		pos      string
		expected bool
	}{
		{"transitive verb", true},
		{"reflexive verb", true},
		{"Intransitive Verb", true},
		{"noun (m)", false},
		{"adjective", false},
		{"", false},
	}

	for _, tc := range testCases {
		if got := IsVerb(tc.pos); got != tc.expected {
			t.Errorf("Expected IsVerb(%q) to be %v, but got %v", tc.pos, tc.expected, got)
		}
	}
}

func TestDrills(t *testing.T) {
	entry := domain.Entry{
		Spanish:      "hablar",
		English:      "to speak",
		PartOfSpeech: "transitive verb",
	}

	drills, err := Drills(entry, Present)
	if err != nil {
		t.Fatalf("Drills returned an unexpected error: %v", err)
	}
	if len(drills) != 6 {
		t.Fatalf("Expected 6 drills, but got %d", len(drills))
	}

	first := drills[0]
	if first.Spanish != "hablar (present, yo)" {
		t.Errorf("Expected drill front 'hablar (present, yo)', but got '%s'", first.Spanish)
	}
	if first.English != "hablo" {
		t.Errorf("Expected drill back 'hablo', but got '%s'", first.English)
	}
	if first.PartOfSpeech != "conjugation drill" {
		t.Errorf("Expected part of speech 'conjugation drill', but got '%s'", first.PartOfSpeech)
	}
	if first.Note != "to speak" {
		t.Errorf("Expected the note to carry the translation, but got '%s'", first.Note)
	}
}

func TestDrillsNotAVerb(t *testing.T) {
	entry := domain.Entry{Spanish: "perro", English: "dog", PartOfSpeech: "noun (m)"}
	if _, err := Drills(entry, Present); !errors.Is(err, ErrNotInfinitive) {
		t.Errorf("Expected ErrNotInfinitive, but got %v", err)
	}
}
