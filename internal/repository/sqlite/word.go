package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"flashcards/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
	position INTEGER PRIMARY KEY,
	source TEXT NOT NULL,
	translation TEXT NOT NULL
);
`

// WordRepo implements repository.WordRepository on a SQLite file
type WordRepo struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the schema
func Open(path string) (*WordRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &WordRepo{db: db}, nil
}

// Close closes the underlying database
func (r *WordRepo) Close() error {
	return r.db.Close()
}

// Load returns all pairs in list order
func (r *WordRepo) Load() (domain.LoadResult, error) {
	rows, err := r.db.Query(`SELECT source, translation FROM words ORDER BY position`)
	if err != nil {
		return domain.LoadResult{}, err
	}
	defer rows.Close()

	words := domain.WordList{}
	for rows.Next() {
		var p domain.WordPair
		if err := rows.Scan(&p.Source, &p.Translation); err != nil {
			return domain.LoadResult{}, err
		}
		words = append(words, p)
	}
	if err := rows.Err(); err != nil {
		return domain.LoadResult{}, err
	}

	return domain.LoadResult{Words: words}, nil
}

// Save replaces the stored list in a single transaction
func (r *WordRepo) Save(words domain.WordList) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM words`); err != nil {
		return fmt.Errorf("failed to clear words: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO words (position, source, translation) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range words {
		if _, err := stmt.Exec(i, p.Source, p.Translation); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", p.Source, err)
		}
	}

	return tx.Commit()
}
