package vocab

import (
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name            string
		input           string
		expectedEntries int
		expectedSpanish string
		expectedEnglish string
		expectedPOS     string
		expectedNote    string
		expectedPop     int
	}{
		{
			name:            "single entry with header",
			input:           "Date Added,Spanish,English,Part of Speech,Popularity,Notes\n2024-03-15,hablar,to speak,transitive verb,120,regular -ar verb",
			expectedEntries: 1,
			expectedSpanish: "hablar",
			expectedEnglish: "to speak",
			expectedPOS:     "transitive verb",
			expectedNote:    "regular -ar verb",
			expectedPop:     120,
		},
		{
			name:            "entry without header",
			input:           "2024-03-15,perro,dog,noun (m),45,",
			expectedEntries: 1,
			expectedSpanish: "perro",
			expectedEnglish: "dog",
			expectedPOS:     "noun (m)",
			expectedPop:     45,
		},
		{
			name:            "trailing optional columns omitted",
			input:           ",gato,cat",
			expectedEntries: 1,
			expectedSpanish: "gato",
			expectedEnglish: "cat",
		},
		{
			name: "two entries",
			input: `Date Added,Spanish,English,Part of Speech,Popularity,Notes
2024-01-01,uno,one,noun,1,
2024-01-02,dos,two,noun,2,
`,
			expectedEntries: 2,
		},
		{
			name: "rows without a Spanish word are skipped",
			input: `Date Added,Spanish,English,Part of Speech,Popularity,Notes
2024-01-01,,one,noun,1,
2024-01-02,dos,two,noun,2,
`,
			expectedEntries: 1,
			expectedSpanish: "dos",
			expectedEnglish: "two",
			expectedPOS:     "noun",
			expectedPop:     2,
		},
		{
			name:            "quoted fields with commas",
			input:           "Date Added,Spanish,English,Part of Speech,Popularity,Notes\n2024-03-15,sin embargo,\"however, nevertheless\",phrase,30,",
			expectedEntries: 1,
			expectedSpanish: "sin embargo",
			expectedEnglish: "however, nevertheless",
			expectedPOS:     "phrase",
			expectedPop:     30,
		},
		{
			name:            "empty input",
			input:           "",
			expectedEntries: 0,
		},
		{
			name:            "header only",
			input:           "Date Added,Spanish,English,Part of Speech,Popularity,Notes\n",
			expectedEntries: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := strings.NewReader(tc.input)
			entries, err := Parse(r)
			if err != nil {
				t.Fatalf("Parse() returned an unexpected error: %v", err)
			}

			if len(entries) != tc.expectedEntries {
				t.Fatalf("Expected %d entries, but got %d", tc.expectedEntries, len(entries))
			}

			if tc.expectedEntries == 1 {
				entry := entries[0]
				if entry.Spanish != tc.expectedSpanish {
					t.Errorf("Expected Spanish to be '%s', but got '%s'", tc.expectedSpanish, entry.Spanish)
				}
				if entry.English != tc.expectedEnglish {
					t.Errorf("Expected English to be '%s', but got '%s'", tc.expectedEnglish, entry.English)
				}
				if entry.PartOfSpeech != tc.expectedPOS {
					t.Errorf("Expected part of speech to be '%s', but got '%s'", tc.expectedPOS, entry.PartOfSpeech)
				}
				if entry.Note != tc.expectedNote {
					t.Errorf("Expected note to be '%s', but got '%s'", tc.expectedNote, entry.Note)
				}
				if entry.Popularity != tc.expectedPop {
					t.Errorf("Expected popularity to be %d, but got %d", tc.expectedPop, entry.Popularity)
				}
			}
		})
	}
}

func TestParseDateAdded(t *testing.T) {
	input := "Date Added,Spanish,English\n2023-11-09,lograr,to achieve"
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() returned an unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, but got %d", len(entries))
	}
	expected := time.Date(2023, 11, 9, 0, 0, 0, 0, time.UTC)
	if !entries[0].DateAdded.Equal(expected) {
		t.Errorf("Expected date added %v, but got %v", expected, entries[0].DateAdded)
	}
}

func TestParseBadRows(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		input := "Date Added,Spanish,English\nnot-a-date,lograr,to achieve"
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Error("Expected an error for a malformed date, but got nil")
		}
	})

	t.Run("malformed popularity", func(t *testing.T) {
		input := "Date Added,Spanish,English,Part of Speech,Popularity\n2024-01-01,lograr,to achieve,verb,many"
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Error("Expected an error for a malformed popularity, but got nil")
		}
	})
}
