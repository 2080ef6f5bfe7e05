package verdicts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"gavelmatch/internal/config"
	"gavelmatch/internal/services"
)

// Store manages verdict persistence backed by SQLite. A file lock next to
// the database keeps concurrent gavelmatch runs from interleaving writes.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the verdict database and verifies its schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.StateDir, "verdicts.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire state lock: %w", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "verdicts", "open",
			"another gavelmatch run holds the state lock", nil)
	}

	dbPath := filepath.Join(cfg.Paths.StateDir, "verdicts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the state lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the location of the verdict database file.
func (s *Store) Path() string {
	return s.path
}

// Put inserts or replaces the verdict for a video.
func (s *Store) Put(ctx context.Context, verdict *Verdict) error {
	if verdict == nil {
		return errors.New("verdict is nil")
	}
	if verdict.VideoID == "" {
		return errors.New("verdict has no video id")
	}
	if !verdict.Method.Valid() {
		return fmt.Errorf("unknown verdict method %q", verdict.Method)
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	var reasonsJSON any
	if len(verdict.Reasons) > 0 {
		encoded, err := json.Marshal(verdict.Reasons)
		if err != nil {
			return fmt.Errorf("marshal reasons: %w", err)
		}
		reasonsJSON = string(encoded)
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO verdicts (
            video_id, event_id, confidence, method, fingerprint,
            reasons_json, run_id, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(video_id) DO UPDATE SET
            event_id = excluded.event_id,
            confidence = excluded.confidence,
            method = excluded.method,
            fingerprint = excluded.fingerprint,
            reasons_json = excluded.reasons_json,
            run_id = excluded.run_id,
            updated_at = excluded.updated_at`,
		verdict.VideoID,
		nullableString(verdict.EventID),
		verdict.Confidence,
		verdict.Method,
		verdict.Fingerprint,
		reasonsJSON,
		nullableString(verdict.RunID),
		timestamp,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("put verdict: %w", err)
	}
	return nil
}

// GetByVideo fetches the stored verdict for a video, or nil when absent.
func (s *Store) GetByVideo(ctx context.Context, videoID string) (*Verdict, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+verdictColumns+` FROM verdicts WHERE video_id = ?`, videoID)
	verdict, err := scanVerdict(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get verdict: %w", err)
	}
	return verdict, nil
}

// List returns verdicts filtered by method set (or all verdicts when no
// method is provided), ordered by video identifier.
func (s *Store) List(ctx context.Context, methods ...Method) ([]*Verdict, error) {
	var (
		rows *sql.Rows
		err  error
	)

	baseQuery := `SELECT ` + verdictColumns + ` FROM verdicts`
	orderClause := ` ORDER BY video_id`

	if len(methods) == 0 {
		rows, err = s.db.QueryContext(ctx, baseQuery+orderClause)
	} else {
		placeholders := makePlaceholders(len(methods))
		args := make([]any, len(methods))
		for i, method := range methods {
			args[i] = method
		}
		query := baseQuery + ` WHERE method IN (` + placeholders + `)` + orderClause
		rows, err = s.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("list verdicts: %w", err)
	}
	defer rows.Close()

	var verdicts []*Verdict
	for rows.Next() {
		verdict, err := scanVerdict(rows)
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, verdict)
	}
	return verdicts, rows.Err()
}

// Stats returns a count of verdicts grouped by method.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT method, COUNT(1) FROM verdicts GROUP BY method`)
	if err != nil {
		return Stats{}, fmt.Errorf("verdict stats: %w", err)
	}
	defer rows.Close()

	var stats Stats
	for rows.Next() {
		var method Method
		var count int
		if err := rows.Scan(&method, &count); err != nil {
			return Stats{}, err
		}
		stats.Total += count
		switch method {
		case MethodAlgorithmic:
			stats.Algorithmic = count
		case MethodOracleAssisted:
			stats.OracleAssisted = count
		case MethodUnmatched:
			stats.Unmatched = count
		}
	}
	return stats, rows.Err()
}

// Remove deletes the verdict for a video.
func (s *Store) Remove(ctx context.Context, videoID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verdicts WHERE video_id = ?`, videoID)
	if err != nil {
		return false, fmt.Errorf("delete verdict: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes all stored verdicts.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verdicts`)
	if err != nil {
		return 0, fmt.Errorf("clear verdicts: %w", err)
	}
	return res.RowsAffected()
}

// ClearUnmatched removes only unmatched verdicts so the next run retries them.
func (s *Store) ClearUnmatched(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verdicts WHERE method = ?`, MethodUnmatched)
	if err != nil {
		return 0, fmt.Errorf("clear unmatched verdicts: %w", err)
	}
	return res.RowsAffected()
}

const verdictColumns = "id, video_id, event_id, confidence, method, fingerprint, reasons_json, run_id, created_at, updated_at"

func scanVerdict(scanner interface{ Scan(dest ...any) error }) (*Verdict, error) {
	var (
		id          int64
		videoID     string
		eventID     sql.NullString
		confidence  float64
		methodStr   string
		fingerprint string
		reasonsRaw  sql.NullString
		runID       sql.NullString
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&videoID,
		&eventID,
		&confidence,
		&methodStr,
		&fingerprint,
		&reasonsRaw,
		&runID,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	verdict := &Verdict{
		ID:          id,
		VideoID:     videoID,
		EventID:     eventID.String,
		Confidence:  confidence,
		Method:      Method(methodStr),
		Fingerprint: fingerprint,
		RunID:       runID.String,
	}
	if reasonsRaw.Valid && reasonsRaw.String != "" {
		if err := json.Unmarshal([]byte(reasonsRaw.String), &verdict.Reasons); err != nil {
			return nil, fmt.Errorf("decode reasons for %s: %w", videoID, err)
		}
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		verdict.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		verdict.UpdatedAt = updated
	}
	return verdict, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
