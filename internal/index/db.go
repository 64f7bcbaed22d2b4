// Package index persists parsed transcripts into a local SQLite
// database with an FTS5 full-text index over message bodies.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA cache_size = -64000;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS transcripts (
    transcript_key TEXT PRIMARY KEY,
    file_path      TEXT NOT NULL,
    dialect        TEXT NOT NULL DEFAULT '',
    first_ts       TEXT NOT NULL DEFAULT '',
    last_ts        TEXT NOT NULL DEFAULT '',
    message_count  INTEGER NOT NULL DEFAULT 0,
    mtime          INTEGER NOT NULL DEFAULT 0,
    size           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS messages (
    transcript_key TEXT NOT NULL,
    ordinal        INTEGER NOT NULL,
    ts             TEXT NOT NULL DEFAULT '',
    author         TEXT NOT NULL DEFAULT '',
    kind           TEXT NOT NULL,
    body           TEXT NOT NULL,
    line_number    INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (transcript_key, ordinal)
);

CREATE VIRTUAL TABLE IF NOT EXISTS messages_fts USING fts5(
    body,
    content=messages,
    content_rowid=rowid,
    tokenize='unicode61'
);

-- triggers to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS messages_ai AFTER INSERT ON messages BEGIN
    INSERT INTO messages_fts(rowid, body) VALUES (new.rowid, new.body);
END;

CREATE TRIGGER IF NOT EXISTS messages_ad AFTER DELETE ON messages BEGIN
    INSERT INTO messages_fts(messages_fts, rowid, body) VALUES('delete', old.rowid, old.body);
END;

CREATE TRIGGER IF NOT EXISTS messages_au AFTER UPDATE ON messages BEGIN
    INSERT INTO messages_fts(messages_fts, rowid, body) VALUES('delete', old.rowid, old.body);
    INSERT INTO messages_fts(rowid, body) VALUES (new.rowid, new.body);
END;
`

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	// schema version tracking for forced re-index
	db.Exec("CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT)")
	d := &DB{db: db}
	d.migrateSchemaVersion()

	return d, nil
}

// schemaVersion should be bumped whenever parsing or row layout changes
// to force a full re-index.
const schemaVersion = "1"

func (d *DB) migrateSchemaVersion() {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err != nil || ver != schemaVersion {
		// force re-index by resetting freshness markers
		d.db.Exec("UPDATE transcripts SET mtime = 0, size = 0")
		d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

// TranscriptInfo is the freshness marker for one indexed transcript.
type TranscriptInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetTranscriptInfo(key string) (*TranscriptInfo, error) {
	var info TranscriptInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM transcripts WHERE transcript_key = ?",
		key,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (d *DB) AllTranscriptKeys() (map[string]string, error) {
	rows, err := d.db.Query("SELECT transcript_key, file_path FROM transcripts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]string)
	for rows.Next() {
		var k, p string
		if err := rows.Scan(&k, &p); err != nil {
			return nil, err
		}
		keys[k] = p
	}
	return keys, rows.Err()
}

func (d *DB) DeleteTranscript(key string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages WHERE transcript_key = ?", key); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM transcripts WHERE transcript_key = ?", key); err != nil {
		return err
	}
	return tx.Commit()
}

func (d *DB) TranscriptCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM transcripts").Scan(&n)
	return n, err
}

func (d *DB) MessageCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

// TranscriptRow is one transcripts-table row.
type TranscriptRow struct {
	TranscriptKey string
	FilePath      string
	Dialect       string
	FirstTs       string
	LastTs        string
	MessageCount  int
}

func (d *DB) GetTranscriptByKey(key string) (*TranscriptRow, error) {
	var t TranscriptRow
	err := d.db.QueryRow(
		"SELECT transcript_key, file_path, dialect, first_ts, last_ts, message_count FROM transcripts WHERE transcript_key = ?",
		key,
	).Scan(&t.TranscriptKey, &t.FilePath, &t.Dialect, &t.FirstTs, &t.LastTs, &t.MessageCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MessageRow is one messages-table row.
type MessageRow struct {
	TranscriptKey string
	Ordinal       int
	Ts            string
	Author        string
	Kind          string
	Body          string
	LineNumber    int
}

func (d *DB) GetMessages(key string) ([]MessageRow, error) {
	rows, err := d.db.Query(
		"SELECT transcript_key, ordinal, ts, author, kind, body, line_number FROM messages WHERE transcript_key = ? ORDER BY ordinal",
		key,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []MessageRow
	for rows.Next() {
		var m MessageRow
		if err := rows.Scan(&m.TranscriptKey, &m.Ordinal, &m.Ts, &m.Author, &m.Kind, &m.Body, &m.LineNumber); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
