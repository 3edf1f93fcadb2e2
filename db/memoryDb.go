package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"time"

	"toolfinder/models"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// MemoryRepository persists memory entries per user in insertion order.
type MemoryRepository interface {
	AddEntry(ctx context.Context, entry models.MemoryEntry, maxEntries int) error
	RecentEntries(ctx context.Context, userID string, limit int) ([]models.MemoryEntry, error)
	AllEntries(ctx context.Context, userID string) ([]models.MemoryEntry, error)
	DeleteUser(ctx context.Context, userID string) error
	Counts(ctx context.Context) (users int, entries int, err error)
	Close() error
}

type SQLMemoryRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewPostgresMemoryRepository(databaseURL string) (*SQLMemoryRepository, error) {
	return newSQLMemoryRepository("postgres", databaseURL, DialectPostgres)
}

// NewSQLiteMemoryRepository opens (or creates) a SQLite database file. Use
// ":memory:" for a throwaway database.
func NewSQLiteMemoryRepository(path string) (*SQLMemoryRepository, error) {
	return newSQLMemoryRepository("sqlite", path, DialectSQLite)
}

func newSQLMemoryRepository(driver, dsn string, dialect Dialect) (*SQLMemoryRepository, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == DialectSQLite {
		// One writer at a time; also keeps ":memory:" on a single connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &SQLMemoryRepository{db: db, dialect: dialect}
	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *SQLMemoryRepository) Dialect() Dialect {
	return r.dialect
}

var placeholderPattern = regexp.MustCompile(`\$\d+`)

// rebind rewrites $n placeholders for drivers that expect '?'. Queries must
// use each placeholder once, in order.
func (r *SQLMemoryRepository) rebind(query string) string {
	if r.dialect == DialectPostgres {
		return query
	}
	return placeholderPattern.ReplaceAllString(query, "?")
}

type migration struct {
	version int
	name    string
	up      func() error
}

func (r *SQLMemoryRepository) runMigrations() error {
	if _, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var version int
	if err := r.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	migrations := []migration{
		{version: 1, name: "memory_entries", up: r.migration001MemoryEntries},
	}

	for _, m := range migrations {
		if version >= m.version {
			continue
		}
		log.Printf("[INFO] Running migration %d: %s", m.version, m.name)
		if err := m.up(); err != nil {
			return fmt.Errorf("migration %d failed: %w", m.version, err)
		}
		if _, err := r.db.Exec(r.rebind("INSERT INTO schema_migrations (version, name) VALUES ($1, $2)"), m.version, m.name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}

func (r *SQLMemoryRepository) migration001MemoryEntries() error {
	seqColumn := "seq BIGSERIAL PRIMARY KEY"
	scoreType := "DOUBLE PRECISION"
	if r.dialect == DialectSQLite {
		seqColumn = "seq INTEGER PRIMARY KEY AUTOINCREMENT"
		scoreType = "REAL"
	}

	if _, err := r.db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS memory_entries (
			%s,
			id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			memory_type TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			query_type TEXT NOT NULL DEFAULT '',
			store_reason TEXT NOT NULL DEFAULT '',
			confidence_score %s NOT NULL DEFAULT 0,
			preferences TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`, seqColumn, scoreType)); err != nil {
		return fmt.Errorf("failed to create memory_entries table: %w", err)
	}

	if _, err := r.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_memory_entries_user
		ON memory_entries(user_id, seq)`); err != nil {
		return fmt.Errorf("failed to create memory_entries user index: %w", err)
	}

	return nil
}

// AddEntry inserts the entry and drops the user's oldest entries beyond
// maxEntries in the same transaction.
func (r *SQLMemoryRepository) AddEntry(ctx context.Context, entry models.MemoryEntry, maxEntries int) error {
	preferences := ""
	if len(entry.Preferences) > 0 {
		data, err := json.Marshal(entry.Preferences)
		if err != nil {
			return fmt.Errorf("failed to marshal preferences: %w", err)
		}
		preferences = string(data)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := r.rebind(`
		INSERT INTO memory_entries
			(id, user_id, memory_type, content, query_type, store_reason, confidence_score, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`)

	if _, err := tx.ExecContext(ctx, insert,
		entry.ID, entry.UserID, entry.Type, entry.Content, entry.QueryType,
		entry.StoreReason, entry.ConfidenceScore, preferences,
		entry.Timestamp.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to insert memory entry: %w", err)
	}

	if maxEntries > 0 {
		trim := r.rebind(`
			DELETE FROM memory_entries
			WHERE user_id = $1 AND seq NOT IN (
				SELECT seq FROM memory_entries
				WHERE user_id = $2
				ORDER BY seq DESC
				LIMIT $3
			)`)
		if _, err := tx.ExecContext(ctx, trim, entry.UserID, entry.UserID, maxEntries); err != nil {
			return fmt.Errorf("failed to trim memory entries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit memory entry: %w", err)
	}

	return nil
}

const entryColumns = "id, user_id, memory_type, content, query_type, store_reason, confidence_score, preferences, created_at"

// RecentEntries returns the user's newest entries, oldest first.
func (r *SQLMemoryRepository) RecentEntries(ctx context.Context, userID string, limit int) ([]models.MemoryEntry, error) {
	query := r.rebind(fmt.Sprintf(`
		SELECT %s FROM (
			SELECT seq, %s FROM memory_entries
			WHERE user_id = $1
			ORDER BY seq DESC
			LIMIT $2
		) AS recent
		ORDER BY seq ASC`, entryColumns, entryColumns))

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent memory entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *SQLMemoryRepository) AllEntries(ctx context.Context, userID string) ([]models.MemoryEntry, error) {
	query := r.rebind(fmt.Sprintf(`
		SELECT %s FROM memory_entries
		WHERE user_id = $1
		ORDER BY seq ASC`, entryColumns))

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query memory entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *SQLMemoryRepository) DeleteUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, r.rebind("DELETE FROM memory_entries WHERE user_id = $1"), userID); err != nil {
		return fmt.Errorf("failed to delete memory entries: %w", err)
	}
	return nil
}

func (r *SQLMemoryRepository) Counts(ctx context.Context) (int, int, error) {
	var users, entries int
	row := r.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT user_id), COUNT(*) FROM memory_entries")
	if err := row.Scan(&users, &entries); err != nil {
		return 0, 0, fmt.Errorf("failed to count memory entries: %w", err)
	}
	return users, entries, nil
}

func (r *SQLMemoryRepository) Close() error {
	return r.db.Close()
}

func scanEntries(rows *sql.Rows) ([]models.MemoryEntry, error) {
	entries := []models.MemoryEntry{}

	for rows.Next() {
		var entry models.MemoryEntry
		var preferences, createdAt string

		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Type, &entry.Content, &entry.QueryType,
			&entry.StoreReason, &entry.ConfidenceScore, &preferences, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory entry: %w", err)
		}

		if preferences != "" {
			if err := json.Unmarshal([]byte(preferences), &entry.Preferences); err != nil {
				return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
			}
		}

		timestamp, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse memory timestamp: %w", err)
		}
		entry.Timestamp = timestamp

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memory entries: %w", err)
	}

	return entries, nil
}
