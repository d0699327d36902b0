package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordList_IndexOf(t *testing.T) {
	list := WordList{
		{Source: "a", Translation: "1"},
		{Source: "b", Translation: "2"},
		{Source: "a", Translation: "3"},
	}

	tests := []struct {
		name     string
		source   string
		expected int
	}{
		{name: "first match wins", source: "a", expected: 0},
		{name: "middle entry", source: "b", expected: 1},
		{name: "missing", source: "c", expected: -1},
		{name: "case sensitive", source: "A", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, list.IndexOf(tt.source))
		})
	}
}

func TestWordList_Clone(t *testing.T) {
	list := WordList{{Source: "a", Translation: "1"}}

	clone := list.Clone()
	clone[0].Translation = "changed"

	assert.Equal(t, "1", list[0].Translation)
	assert.NotNil(t, WordList(nil).Clone())
	assert.Empty(t, WordList(nil).Clone())
}

func TestSeedPairs(t *testing.T) {
	seed := SeedPairs()

	assert.Equal(t, WordList{
		{Source: "Переменная", Translation: "Variable"},
		{Source: "Цикл", Translation: "Loop"},
		{Source: "Функция", Translation: "Function"},
		{Source: "Массив", Translation: "Array"},
		{Source: "Условие", Translation: "Condition"},
	}, seed)

	// callers get a fresh list every time
	seed[0].Source = "x"
	assert.Equal(t, "Переменная", SeedPairs()[0].Source)
}
