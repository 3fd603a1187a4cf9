package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jessejeter/spanish-tools/internal/domain"
	"github.com/jessejeter/spanish-tools/internal/srs"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new database connection and ensures the schema is up to date.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Execute the schema to create tables if they don't exist.
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// EntryState is one entries row: the flashcard content plus its review state.
type EntryState struct {
	Hash         string
	Spanish      string
	English      string
	PartOfSpeech string
	Note         string
	Popularity   int
	DateAdded    sql.NullTime
	Ease         float64
	IntervalDays int
	Repetitions  int
	Lapses       int
	Due          time.Time
	LastReview   sql.NullTime // NULL until the first review
	Created      time.Time
	SourceID     sql.NullInt64
}

const entryColumns = `hash, spanish, english, part_of_speech, note, popularity, date_added,
		ease, interval_days, repetitions, lapses, due, last_review, created_at, source_id`

func scanEntry(row interface{ Scan(...any) error }) (*EntryState, error) {
	var es EntryState
	err := row.Scan(
		&es.Hash,
		&es.Spanish,
		&es.English,
		&es.PartOfSpeech,
		&es.Note,
		&es.Popularity,
		&es.DateAdded,
		&es.Ease,
		&es.IntervalDays,
		&es.Repetitions,
		&es.Lapses,
		&es.Due,
		&es.LastReview,
		&es.Created,
		&es.SourceID,
	)
	if err != nil {
		return nil, err
	}
	return &es, nil
}

// Item converts the row's review columns into a scheduler item.
func (es *EntryState) Item() srs.Item {
	item := srs.Item{
		ID:           es.Hash,
		Ease:         es.Ease,
		IntervalDays: es.IntervalDays,
		Repetitions:  es.Repetitions,
		Lapses:       es.Lapses,
		Due:          es.Due,
		Created:      es.Created,
	}
	if es.LastReview.Valid {
		item.LastReview = es.LastReview.Time
	}
	return item
}

// ApplyItem copies updated scheduler state back onto the row.
func (es *EntryState) ApplyItem(item srs.Item) {
	es.Ease = item.Ease
	es.IntervalDays = item.IntervalDays
	es.Repetitions = item.Repetitions
	es.Lapses = item.Lapses
	es.Due = item.Due
	es.LastReview = sql.NullTime{Time: item.LastReview, Valid: !item.LastReview.IsZero()}
}

// InsertEntry inserts a new entry with its initial review state.
func (db *DB) InsertEntry(entry domain.Entry, item srs.Item, sourceID int64) error {
	dateAdded := sql.NullTime{Time: entry.DateAdded, Valid: !entry.DateAdded.IsZero()}
	_, err := db.conn.Exec(`
		INSERT INTO entries (hash, spanish, english, part_of_speech, note, popularity, date_added,
			ease, interval_days, repetitions, lapses, due, last_review, created_at, source_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)
	`,
		entry.Hash,
		entry.Spanish,
		entry.English,
		entry.PartOfSpeech,
		entry.Note,
		entry.Popularity,
		dateAdded,
		item.Ease,
		item.IntervalDays,
		item.Repetitions,
		item.Lapses,
		item.Due,
		item.Created,
		sourceID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry %s: %w", entry.Hash, err)
	}
	return nil
}

// FindEntryByHash retrieves an entry's state by its hash.
// Returns (nil, nil) when the entry does not exist.
func (db *DB) FindEntryByHash(hash string) (*EntryState, error) {
	row := db.conn.QueryRow(`
		SELECT `+entryColumns+`
		FROM entries WHERE hash = ?
	`, hash)

	es, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Entry not found
		}
		return nil, fmt.Errorf("failed to find entry by hash %s: %w", hash, err)
	}
	return es, nil
}

// UpdateReviewState updates an existing entry's review columns.
func (db *DB) UpdateReviewState(es *EntryState) error {
	_, err := db.conn.Exec(`
		UPDATE entries
		SET ease = ?, interval_days = ?, repetitions = ?, lapses = ?, due = ?, last_review = ?
		WHERE hash = ?
	`,
		es.Ease,
		es.IntervalDays,
		es.Repetitions,
		es.Lapses,
		es.Due,
		es.LastReview,
		es.Hash,
	)
	if err != nil {
		return fmt.Errorf("failed to update review state for hash %s: %w", es.Hash, err)
	}
	return nil
}

// DeleteEntryByHash removes an entry and its review history.
func (db *DB) DeleteEntryByHash(hash string) error {
	if _, err := db.conn.Exec(`DELETE FROM review_logs WHERE entry_hash = ?`, hash); err != nil {
		return fmt.Errorf("failed to delete review logs for hash %s: %w", hash, err)
	}
	if _, err := db.conn.Exec(`DELETE FROM entries WHERE hash = ?`, hash); err != nil {
		return fmt.Errorf("failed to delete entry with hash %s: %w", hash, err)
	}
	return nil
}

// EntriesBySource retrieves all entries associated with a source.
func (db *DB) EntriesBySource(sourceID int64) ([]EntryState, error) {
	rows, err := db.conn.Query(`
		SELECT `+entryColumns+`
		FROM entries WHERE source_id = ?
	`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for source ID %d: %w", sourceID, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// AllEntries retrieves every entry in the deck.
func (db *DB) AllEntries() ([]EntryState, error) {
	rows, err := db.conn.Query(`SELECT ` + entryColumns + ` FROM entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// DueEntries retrieves entries due at or before the cutoff, most overdue
// first, with ties broken by hash so the review order is stable.
func (db *DB) DueEntries(cutoff time.Time) ([]EntryState, error) {
	rows, err := db.conn.Query(`
		SELECT `+entryColumns+`
		FROM entries WHERE due <= ?
		ORDER BY due ASC, hash ASC
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get due entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]EntryState, error) {
	var entries []EntryState
	for rows.Next() {
		es, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *es)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading entry rows: %w", err)
	}
	return entries, nil
}

// Source represents an entry source, either a local path or a git URL.
type Source struct {
	ID          int64
	Path        string
	Type        string // "local" or "git"
	LastScanned sql.NullTime
}

// InsertSource inserts a new source and returns its ID.
func (db *DB) InsertSource(path, sourceType string) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO sources (path, type)
		VALUES (?, ?)
	`, path, sourceType)
	if err != nil {
		return 0, fmt.Errorf("failed to insert source %s: %w", path, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for source %s: %w", path, err)
	}
	return id, nil
}

// FindSourceByPath retrieves a source by its path.
// Returns (nil, nil) when the source does not exist.
func (db *DB) FindSourceByPath(path string) (*Source, error) {
	var s Source
	row := db.conn.QueryRow(`
		SELECT id, path, type, last_scanned
		FROM sources WHERE path = ?
	`, path)

	err := row.Scan(&s.ID, &s.Path, &s.Type, &s.LastScanned)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Source not found
		}
		return nil, fmt.Errorf("failed to find source by path %s: %w", path, err)
	}
	return &s, nil
}

// AllSources retrieves all stored sources.
func (db *DB) AllSources() ([]Source, error) {
	rows, err := db.conn.Query(`
		SELECT id, path, type, last_scanned
		FROM sources
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var s Source
		if err := rows.Scan(&s.ID, &s.Path, &s.Type, &s.LastScanned); err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, nil
}

// DeleteSource removes a source together with its entries.
func (db *DB) DeleteSource(id int64) error {
	if _, err := db.conn.Exec(`
		DELETE FROM review_logs WHERE entry_hash IN (SELECT hash FROM entries WHERE source_id = ?)
	`, id); err != nil {
		return fmt.Errorf("failed to delete review logs for source ID %d: %w", id, err)
	}
	if _, err := db.conn.Exec(`DELETE FROM entries WHERE source_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete entries for source ID %d: %w", id, err)
	}
	if _, err := db.conn.Exec(`DELETE FROM sources WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete source ID %d: %w", id, err)
	}
	return nil
}

// TouchSourceScanned updates the last_scanned timestamp for a source.
func (db *DB) TouchSourceScanned(sourceID int64, scannedAt time.Time) error {
	_, err := db.conn.Exec(`
		UPDATE sources
		SET last_scanned = ?
		WHERE id = ?
	`, scannedAt, sourceID)
	if err != nil {
		return fmt.Errorf("failed to update last scanned for source ID %d: %w", sourceID, err)
	}
	return nil
}

// InsertReviewLog appends one review event to the history.
func (db *DB) InsertReviewLog(log domain.ReviewLog) error {
	_, err := db.conn.Exec(`
		INSERT INTO review_logs (entry_hash, reviewed_at, outcome)
		VALUES (?, ?, ?)
	`, log.EntryHash, log.ReviewedAt, log.Outcome)
	if err != nil {
		return fmt.Errorf("failed to insert review log for hash %s: %w", log.EntryHash, err)
	}
	return nil
}

// OutcomeCounts returns the number of logged reviews per outcome.
func (db *DB) OutcomeCounts() (map[srs.Outcome]int, error) {
	rows, err := db.conn.Query(`
		SELECT outcome, COUNT(*)
		FROM review_logs
		GROUP BY outcome
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count review outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[srs.Outcome]int)
	for rows.Next() {
		var outcome, count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, fmt.Errorf("failed to scan outcome count row: %w", err)
		}
		counts[srs.Outcome(outcome)] = count
	}
	return counts, nil
}

// CountReviewsSince returns the number of reviews logged at or after the
// given time.
func (db *DB) CountReviewsSince(since time.Time) (int, error) {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM review_logs WHERE reviewed_at >= ?
	`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent reviews: %w", err)
	}
	return count, nil
}
