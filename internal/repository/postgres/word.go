package postgres

import (
	"database/sql"
	"fmt"

	"flashcards/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Load returns all pairs in list order
func (r *WordRepo) Load() (domain.LoadResult, error) {
	query := `
		SELECT source, translation
		FROM words
		ORDER BY position
	`
	rows, err := r.db.Query(query)
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

	query := `
		INSERT INTO words (position, source, translation)
		VALUES ($1, $2, $3)
	`
	for i, p := range words {
		if _, err := tx.Exec(query, i, p.Source, p.Translation); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", p.Source, err)
		}
	}

	return tx.Commit()
}
