package storage

const schema = `
-- The 'entries' table stores each vocabulary flashcard together with its
-- spaced repetition state.
CREATE TABLE IF NOT EXISTS entries (
    hash TEXT PRIMARY KEY,
    spanish TEXT NOT NULL,
    english TEXT,
    part_of_speech TEXT,
    note TEXT,
    popularity INTEGER DEFAULT 0,
    date_added DATETIME,
    ease REAL NOT NULL,
    interval_days INTEGER NOT NULL DEFAULT 0,
    repetitions INTEGER NOT NULL DEFAULT 0,
    lapses INTEGER NOT NULL DEFAULT 0,
    due DATETIME NOT NULL,
    last_review DATETIME,
    created_at DATETIME NOT NULL,
    source_id INTEGER,

    FOREIGN KEY(source_id) REFERENCES sources(id)
);

CREATE INDEX IF NOT EXISTS idx_entries_due ON entries(due);

-- The 'sources' table tracks the origin of the entries, either a local
-- directory or a git repository.
CREATE TABLE IF NOT EXISTS sources (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL UNIQUE,
    type TEXT NOT NULL DEFAULT 'local',
    last_scanned DATETIME
);

-- The 'review_logs' table keeps the full review history for progress stats.
CREATE TABLE IF NOT EXISTS review_logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_hash TEXT NOT NULL,
    reviewed_at DATETIME NOT NULL,
    outcome INTEGER NOT NULL,

    FOREIGN KEY(entry_hash) REFERENCES entries(hash)
);
`
