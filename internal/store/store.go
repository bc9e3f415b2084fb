package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver
)

// DesignStore persists annotation records and design documents in a local
// SQLite database. Records are stored as JSON blobs grouped into named
// collections, so the schema never needs migrating when the document format
// grows a field.
type DesignStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the design database at path.
func Open(path string) (*DesignStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open design db: %w", err)
	}

	// WAL keeps readers from blocking the annotator's writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure design db: %w", err)
		}
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS designs (
		id         TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		record     TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_designs_collection ON designs(collection, created_at);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create design schema: %w", err)
	}

	return &DesignStore{db: db}, nil
}

// Close closes the underlying database.
func (s *DesignStore) Close() error {
	return s.db.Close()
}

// Add inserts a record into a collection and returns its generated id.
func (s *DesignStore) Add(ctx context.Context, collection string, record map[string]any) (string, error) {
	blob, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO designs (id, collection, record, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, collection, string(blob), now, now)
	if err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	return id, nil
}

// Update replaces the record with the given id in a collection. Returns false
// when no such record exists.
func (s *DesignStore) Update(ctx context.Context, collection, id string, record map[string]any) (bool, error) {
	blob, err := json.Marshal(record)
	if err != nil {
		return false, fmt.Errorf("encode record: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE designs SET record = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(blob), time.Now().Format(time.RFC3339), collection, id)
	if err != nil {
		return false, fmt.Errorf("update record: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update record: %w", err)
	}
	return n > 0, nil
}

// Get returns up to limit records from a collection, newest first, each with
// its storage id injected under the "id" key. limit <= 0 means no limit.
func (s *DesignStore) Get(ctx context.Context, collection string, limit int) ([]map[string]any, error) {
	query := `SELECT id, record FROM designs WHERE collection = ? ORDER BY created_at DESC`
	args := []any{collection}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]map[string]any, 0)
	for rows.Next() {
		var id, blob string
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		var record map[string]any
		if err := json.Unmarshal([]byte(blob), &record); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", id, err)
		}
		record["id"] = id
		records = append(records, record)
	}
	return records, rows.Err()
}
