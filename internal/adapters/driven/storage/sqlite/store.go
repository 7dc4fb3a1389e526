// Package sqlite provides the durable vector store backing resume
// retrieval. Chunks and their embeddings live in a single SQLite file so
// an ingested resume survives process restart.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is a SQLite-backed vector store. Nearest-neighbour queries scan
// the collection and rank by cosine distance; resumes produce tens of
// chunks, so a scan is cheaper than maintaining an ANN index.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.coldconnect/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".coldconnect", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "vectorstore.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations newer than the current version
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Upsert stores a batch of chunks in a single transaction so a failed
// batch leaves the collection untouched.
func (s *Store) Upsert(ctx context.Context, collection string, chunks []domain.ResumeChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, collection, content, source_path, position, embedding, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			source_path = excluded.source_path,
			position = excluded.position,
			embedding = excluded.embedding,
			metadata = excluded.metadata
	`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, chunk := range chunks {
		metadataJSON, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("marshalling metadata for chunk %s: %w", chunk.ID, err)
		}

		embeddingBlob := float32SliceToBytes(chunk.Embedding)

		if _, err := stmt.ExecContext(ctx, chunk.ID, collection, chunk.Content,
			chunk.SourcePath, chunk.Position, embeddingBlob, string(metadataJSON)); err != nil {
			return fmt.Errorf("upserting chunk %s: %w", chunk.ID, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of chunks stored in the collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chunks WHERE collection = ?", collection)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// scored pairs a stored chunk with its distance for ranking.
type scored struct {
	chunk    domain.MatchedChunk
	rowid    int64
	distance float64
}

// Query scans the collection and returns the k nearest chunks by cosine
// distance. Rows are walked in insertion (rowid) order and the sort is
// stable, so equidistant chunks keep that order.
func (s *Store) Query(ctx context.Context, collection string, vector []float32, k int) ([]domain.MatchedChunk, error) {
	if k <= 0 || len(vector) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT rowid_alias, content, embedding, metadata
		FROM chunks
		WHERE collection = ?
		ORDER BY rowid_alias
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var candidates []scored
	for rows.Next() {
		var (
			rowid         int64
			content       string
			embeddingBlob []byte
			metadataJSON  string
		)
		if err := rows.Scan(&rowid, &content, &embeddingBlob, &metadataJSON); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}

		embedding := bytesToFloat32Slice(embeddingBlob)
		if len(embedding) != len(vector) {
			continue // dimension mismatch, stored under a different model
		}

		var metadata map[string]any
		if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
			metadata = nil
		}

		candidates = append(candidates, scored{
			chunk: domain.MatchedChunk{
				Content:  content,
				Metadata: metadata,
			},
			rowid:    rowid,
			distance: cosineDistance(vector, embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	results := make([]domain.MatchedChunk, len(candidates))
	for i, c := range candidates {
		c.chunk.Distance = c.distance
		results[i] = c.chunk
	}
	return results, nil
}

// SourceHash returns the recorded content hash for the collection, or
// empty when nothing has been ingested.
func (s *Store) SourceHash(ctx context.Context, collection string) (string, error) {
	var hash string
	row := s.db.QueryRowContext(ctx,
		"SELECT source_hash FROM ingestions WHERE collection = ?", collection)
	if err := row.Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("reading ingestion record: %w", err)
	}
	return hash, nil
}

// RecordSource stores the content hash of the ingested document.
func (s *Store) RecordSource(ctx context.Context, collection, hash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingestions (collection, source_hash)
		VALUES (?, ?)
		ON CONFLICT(collection) DO UPDATE SET
			source_hash = excluded.source_hash,
			ingested_at = CURRENT_TIMESTAMP
	`, collection, hash)
	if err != nil {
		return fmt.Errorf("recording ingestion: %w", err)
	}
	return nil
}

// Clear removes every chunk in the collection and its ingestion record.
func (s *Store) Clear(ctx context.Context, collection string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE collection = ?", collection); err != nil {
		return fmt.Errorf("clearing chunks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM ingestions WHERE collection = ?", collection); err != nil {
		return fmt.Errorf("clearing ingestion record: %w", err)
	}

	return tx.Commit()
}

// ==================== Helper Functions ====================

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}

// cosineDistance returns 1 - cosine similarity. Zero-norm vectors are
// treated as maximally distant.
func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
