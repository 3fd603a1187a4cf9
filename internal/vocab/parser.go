package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jessejeter/spanish-tools/internal/domain"
)

// Column layout of a vocabulary deck file. This matches the CSV exported by
// the SpanishDict list scraper:
//
//	Date Added,Spanish,English,Part of Speech,Popularity,Notes
//
// Only the Spanish column is required; the rest default to empty/zero.
const (
	colDateAdded = iota
	colSpanish
	colEnglish
	colPartOfSpeech
	colPopularity
	colNotes
)

const dateLayout = "2006-01-02"

// ParseFile reads a deck file from the given path and extracts all entries.
func ParseFile(path string) ([]domain.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads CSV records from an io.Reader and extracts all entries.
// Rows without a Spanish word are skipped; a malformed date or popularity
// value fails the whole file so deck problems surface during sync rather
// than silently producing half-parsed entries.
func Parse(r io.Reader) ([]domain.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may omit trailing optional columns

	var entries []domain.Entry
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		entry, ok, err := entryFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// isHeader reports whether the record looks like the column header row.
func isHeader(record []string) bool {
	return len(record) > colSpanish && strings.EqualFold(strings.TrimSpace(record[colSpanish]), "Spanish")
}

func entryFromRecord(record []string) (domain.Entry, bool, error) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	spanish := field(colSpanish)
	if spanish == "" {
		return domain.Entry{}, false, nil
	}

	entry := domain.Entry{
		Spanish:      spanish,
		English:      field(colEnglish),
		PartOfSpeech: field(colPartOfSpeech),
		Note:         field(colNotes),
	}

	if raw := field(colPopularity); raw != "" {
		popularity, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Entry{}, false, fmt.Errorf("bad popularity %q: %w", raw, err)
		}
		entry.Popularity = popularity
	}

	if raw := field(colDateAdded); raw != "" {
		added, err := time.Parse(dateLayout, raw)
		if err != nil {
			return domain.Entry{}, false, fmt.Errorf("bad date added %q: %w", raw, err)
		}
		entry.DateAdded = added
	}

	return entry, true, nil
}
