package cuecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"supercut/internal/logging"
	"supercut/internal/subtitle"
)

// Store caches parsed cue tracks in SQLite, keyed by the source file's
// identity and modification signature. It implements subtitle.TrackCache.
// A cache hit and a cache miss produce identical tracks; the store only
// affects speed, never results.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS cue_tracks (
	cache_key  TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Open initializes or connects to the cache database inside dir. The
// directory is created when absent, guarded by a file lock so concurrent
// first runs do not race on initialization.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cuecache: empty cache directory")
	}
	logger = logging.NewComponentLogger(logger, "cuecache")

	lock := flock.New(filepath.Join(os.TempDir(), "supercut-cuecache.lock"))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire cache init lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %q: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "cues.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location of the cache database.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// GetOrCompute returns the cached track for key, computing and storing it on
// a miss. Cache read or write failures degrade to computing fresh; they are
// logged but never surface as errors.
func (s *Store) GetOrCompute(ctx context.Context, key subtitle.CacheKey, compute func() (subtitle.Track, error)) (subtitle.Track, error) {
	keyText := key.String()

	if track, ok := s.lookup(ctx, keyText); ok {
		s.logger.Debug("cache hit", logging.String("key", keyText))
		return track, nil
	}

	track, err := compute()
	if err != nil {
		return subtitle.Track{}, err
	}

	if err := s.store(ctx, keyText, track); err != nil {
		s.logger.Warn("failed to store cache entry",
			logging.String("key", keyText),
			logging.Error(err))
	}
	return track, nil
}

func (s *Store) lookup(ctx context.Context, keyText string) (subtitle.Track, bool) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM cue_tracks WHERE cache_key = ?`, keyText,
	).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("cache lookup failed", logging.String("key", keyText), logging.Error(err))
		}
		return subtitle.Track{}, false
	}

	var track subtitle.Track
	if err := json.Unmarshal([]byte(payload), &track); err != nil {
		s.logger.Warn("discarding undecodable cache entry",
			logging.String("key", keyText),
			logging.Error(err))
		_, _ = s.db.ExecContext(ctx, `DELETE FROM cue_tracks WHERE cache_key = ?`, keyText)
		return subtitle.Track{}, false
	}
	return track, true
}

func (s *Store) store(ctx context.Context, keyText string, track subtitle.Track) error {
	payload, err := json.Marshal(track)
	if err != nil {
		return fmt.Errorf("encode track: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO cue_tracks (cache_key, payload, created_at) VALUES (?, ?, ?)`,
		keyText, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert cache entry: %w", err)
	}
	return nil
}

// Prune removes entries for source files that no longer exist at their
// recorded path. Returns the number of removed entries.
func (s *Store) Prune(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT cache_key FROM cue_tracks`)
	if err != nil {
		return 0, fmt.Errorf("list cache entries: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var keyText string
		if err := rows.Scan(&keyText); err != nil {
			return 0, fmt.Errorf("scan cache key: %w", err)
		}
		path, ok := sourcePathOf(keyText)
		if !ok {
			stale = append(stale, keyText)
			continue
		}
		if _, err := os.Stat(path); err != nil {
			stale = append(stale, keyText)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate cache keys: %w", err)
	}

	for _, keyText := range stale {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM cue_tracks WHERE cache_key = ?`, keyText); err != nil {
			return 0, fmt.Errorf("delete cache entry: %w", err)
		}
	}
	return len(stale), nil
}

func sourcePathOf(keyText string) (string, bool) {
	// Keys have the form path|size|mtime|language|origin; the path segment
	// never contains the separator because it is an absolute cleaned path.
	if idx := indexLastFields(keyText, 4); idx > 0 {
		return keyText[:idx], true
	}
	return "", false
}

// indexLastFields returns the offset of the separator that starts the last n
// pipe-delimited fields, or -1 when the key has too few fields.
func indexLastFields(keyText string, n int) int {
	idx := len(keyText)
	for ; n > 0; n-- {
		idx = lastIndexByteBefore(keyText, '|', idx)
		if idx < 0 {
			return -1
		}
	}
	return idx
}

func lastIndexByteBefore(s string, b byte, before int) int {
	for i := before - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}
