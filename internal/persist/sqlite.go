package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aureusfin/aureus/internal/state"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore persists the snapshot blob in a one-row SQLite table, with a
// second table holding tagged backups.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data BLOB NOT NULL,
	saved_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS backups (
	tag TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

// NewSQLiteStore opens (creating if needed) a SQLite-backed snapshot store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.New("sqlite store path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Load reads the persisted blob, reporting state.ErrNotFound on first run.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshot WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, state.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save upserts the single snapshot row.
func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshot (id, data, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Backup stores the current snapshot blob under the given tag. An empty
// tag gets a timestamped one.
func (s *SQLiteStore) Backup(ctx context.Context, tag string) (BackupInfo, error) {
	if tag == "" {
		tag = fmt.Sprintf("backup-%s", time.Now().Format("2006-01-02-1504"))
	}

	data, err := s.Load(ctx)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("nothing to back up: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `INSERT INTO backups (tag, data, created_at) VALUES (?, ?, ?)`,
		tag, data, now)
	if err != nil {
		// The tag column is the primary key, so a duplicate tag surfaces here.
		return BackupInfo{}, fmt.Errorf("%w: %q", ErrBackupExists, tag)
	}

	return BackupInfo{Tag: tag, CreatedAt: now, Size: int64(len(data))}, nil
}

// Backups lists stored backups, newest first.
func (s *SQLiteStore) Backups(ctx context.Context) ([]BackupInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag, created_at, length(data) FROM backups ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []BackupInfo
	for rows.Next() {
		var info BackupInfo
		if err := rows.Scan(&info.Tag, &info.CreatedAt, &info.Size); err != nil {
			return nil, fmt.Errorf("failed to scan backup row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate backups: %w", err)
	}
	return infos, nil
}
