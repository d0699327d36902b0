package postgres

import (
	"fmt"
	"testing"

	"flashcards/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const loadQuery = "SELECT source, translation FROM words ORDER BY position"

func TestWordRepo_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"source", "translation"}).
		AddRow("Цикл", "Loop").
		AddRow("Массив", "Array")

	mock.ExpectQuery(loadQuery).WillReturnRows(rows)

	result, err := repo.Load()

	assert.NoError(t, err)
	assert.Equal(t, domain.WordList{
		{Source: "Цикл", Translation: "Loop"},
		{Source: "Массив", Translation: "Array"},
	}, result.Words)
	assert.Zero(t, result.Skipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Load_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery(loadQuery).
		WillReturnRows(sqlmock.NewRows([]string{"source", "translation"}))

	result, err := repo.Load()

	assert.NoError(t, err)
	assert.NotNil(t, result.Words)
	assert.Empty(t, result.Words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Load_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery(loadQuery).WillReturnError(fmt.Errorf("query error"))

	result, err := repo.Load()

	assert.Error(t, err)
	assert.Nil(t, result.Words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Load_RowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	rows := sqlmock.NewRows([]string{"source", "translation"}).
		AddRow("a", "b").
		RowError(0, fmt.Errorf("row error"))

	mock.ExpectQuery(loadQuery).WillReturnRows(rows)

	result, err := repo.Load()

	assert.Error(t, err)
	assert.Nil(t, result.Words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	words := domain.WordList{
		{Source: "a", Translation: "1"},
		{Source: "b", Translation: "2"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM words").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO words").
		WithArgs(0, "a", "1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO words").
		WithArgs(1, "b", "2").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.Save(words)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Save_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM words").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err = repo.Save(domain.WordList{})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_Save_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
	}{
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(fmt.Errorf("connection lost"))
			},
		},
		{
			name: "delete fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM words").WillReturnError(fmt.Errorf("locked"))
				mock.ExpectRollback()
			},
		},
		{
			name: "insert fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM words").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO words").
					WithArgs(0, "a", "1").
					WillReturnError(fmt.Errorf("constraint"))
				mock.ExpectRollback()
			},
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM words").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("INSERT INTO words").
					WithArgs(0, "a", "1").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit().WillReturnError(fmt.Errorf("commit error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)
			tt.setup(mock)

			err = repo.Save(domain.WordList{{Source: "a", Translation: "1"}})

			assert.Error(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
