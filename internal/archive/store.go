package archive

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// Store provides SQLite-based storage for rendered documents.
// It manages the connection and provides methods for CRUD operations.
//
// Design decision: We use a single database file for all renders rather
// than one file per report. This keeps listing cheap and makes
// backup/restore a single-file operation.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a Store at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dir, "mkreport.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("archive not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check archive path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite only supports one writer, so a single connection avoids
	// lock contention between concurrent saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the path of the underlying database file.
func (s *Store) Path() string {
	return s.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- Renders store complete rendered documents with their metadata
	CREATE TABLE IF NOT EXISTS renders (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		format TEXT NOT NULL,
		size INTEGER NOT NULL,
		sha256 TEXT NOT NULL,
		content BLOB NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at);
	CREATE INDEX IF NOT EXISTS idx_renders_format ON renders(format);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Render represents a stored rendered document.
type Render struct {
	// ID is a UUID assigned at save time.
	ID string
	// Title is the report title the document was rendered from.
	Title string
	// Format is the render engine name (html, markdown, json).
	Format string
	// Size is the document length in bytes.
	Size int64
	// SHA256 is the hex-encoded content hash. Identical report trees
	// rendered by the same engine produce identical hashes.
	SHA256 string
	// Content is the rendered document. Empty in listings.
	Content string
	// CreatedAt is the save time.
	CreatedAt time.Time
}

// SaveRender stores a rendered document and returns the saved record
// with its assigned ID and content hash.
func (s *Store) SaveRender(ctx context.Context, title, format, content string) (*Render, error) {
	sum := sha256.Sum256([]byte(content))
	render := &Render{
		ID:     uuid.NewString(),
		Title:  title,
		Format: format,
		Size:   int64(len(content)),
		SHA256: hex.EncodeToString(sum[:]),
	}

	query := `
	INSERT INTO renders (id, title, format, size, sha256, content)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		render.ID,
		render.Title,
		render.Format,
		render.Size,
		render.SHA256,
		content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save render: %w", err)
	}

	saved, err := s.GetRender(ctx, render.ID)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// GetRender retrieves a stored render by ID, including its content.
// It returns ErrRenderNotFound when no render exists with the given ID.
func (s *Store) GetRender(ctx context.Context, id string) (*Render, error) {
	query := `
	SELECT id, title, format, size, sha256, content, created_at
	FROM renders
	WHERE id = ?
	`

	var render Render
	var createdAt string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&render.ID,
		&render.Title,
		&render.Format,
		&render.Size,
		&render.SHA256,
		&render.Content,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRenderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get render: %w", err)
	}

	render.CreatedAt = parseTimestamp(createdAt)
	return &render, nil
}

// ListRenders returns stored renders ordered newest first, without their
// content. A limit of 0 returns all renders.
func (s *Store) ListRenders(ctx context.Context, limit int) ([]Render, error) {
	query := `
	SELECT id, title, format, size, sha256, created_at
	FROM renders
	ORDER BY created_at DESC, id
	`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []Render
	for rows.Next() {
		var render Render
		var createdAt string
		if err := rows.Scan(
			&render.ID,
			&render.Title,
			&render.Format,
			&render.Size,
			&render.SHA256,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		render.CreatedAt = parseTimestamp(createdAt)
		results = append(results, render)
	}

	return results, rows.Err()
}

// DeleteRender removes a stored render by ID.
// It returns ErrRenderNotFound when no render exists with the given ID.
func (s *Store) DeleteRender(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM renders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete render: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrRenderNotFound
	}
	return nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
