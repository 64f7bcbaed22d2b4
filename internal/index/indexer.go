package index

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmlarsen/chatlens/internal/parse"
)

const tsLayout = "2006-01-02T15:04:05Z"

type Stats struct {
	Scanned  int
	Updated  int
	Skipped  int
	Pruned   int
	Errors   int
	Warnings int
}

func (s Stats) String() string {
	return fmt.Sprintf("scanned=%d updated=%d skipped=%d pruned=%d errors=%d warnings=%d",
		s.Scanned, s.Updated, s.Skipped, s.Pruned, s.Errors, s.Warnings)
}

// IndexFiles parses each transcript and stores it, skipping transcripts
// whose file is unchanged since the last run (mtime+size match) and
// pruning indexed transcripts whose files no longer exist. Parse
// failures of individual files are counted, not fatal.
func IndexFiles(db *DB, paths []string) (Stats, error) {
	var stats Stats
	stats.Scanned = len(paths)

	for _, path := range paths {
		key, err := TranscriptKey(path)
		if err != nil {
			stats.Errors++
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			stats.Errors++
			fmt.Fprintf(os.Stderr, "  WARN: stat %s: %v\n", path, err)
			continue
		}

		needs, err := needsUpdate(db, key, info.ModTime().Unix(), info.Size())
		if err != nil {
			stats.Errors++
			continue
		}
		if !needs {
			stats.Skipped++
			continue
		}

		result, err := parse.ParseFile(path)
		if err != nil {
			stats.Errors++
			fmt.Fprintf(os.Stderr, "  WARN: parse %s: %v\n", path, err)
			continue
		}
		stats.Warnings += len(result.Warnings)

		if err := indexTranscript(db, key, path, info.ModTime(), info.Size(), result); err != nil {
			stats.Errors++
			fmt.Fprintf(os.Stderr, "  WARN: index %s: %v\n", path, err)
			continue
		}
		stats.Updated++
	}

	pruned, err := pruneMissing(db)
	if err != nil {
		return stats, fmt.Errorf("prune: %w", err)
	}
	stats.Pruned = pruned

	return stats, nil
}

// TranscriptKey derives a stable key from the transcript path.
func TranscriptKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return filepath.Clean(abs), nil
}

func needsUpdate(db *DB, key string, mtime, size int64) (bool, error) {
	info, err := db.GetTranscriptInfo(key)
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // new transcript
	}
	return info.Mtime != mtime || info.Size != size, nil
}

func indexTranscript(db *DB, key, path string, mtime time.Time, size int64, result *parse.Result) error {
	// delete old data first
	if err := db.DeleteTranscript(key); err != nil {
		return err
	}

	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	firstTs, lastTs := "", ""
	for _, r := range result.Records {
		if !r.HasTime {
			continue
		}
		if firstTs == "" {
			firstTs = r.Timestamp.Format(tsLayout)
		}
		lastTs = r.Timestamp.Format(tsLayout)
	}

	_, err = tx.Exec(
		`INSERT INTO transcripts (transcript_key, file_path, dialect, first_ts, last_ts, message_count, mtime, size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		key,
		path,
		result.Dialect.String(),
		firstTs,
		lastTs,
		len(result.Records),
		mtime.Unix(),
		size,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO messages (transcript_key, ordinal, ts, author, kind, body, line_number)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range result.Records {
		ts := ""
		if r.HasTime {
			ts = r.Timestamp.Format(tsLayout)
		}
		_, err := stmt.Exec(key, r.Ordinal, ts, r.Author, string(r.Kind), r.Body, r.Line)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func pruneMissing(db *DB) (int, error) {
	all, err := db.AllTranscriptKeys()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for key, path := range all {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := db.DeleteTranscript(key); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}
