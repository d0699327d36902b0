package domain

// WordPair is one vocabulary entry
type WordPair struct {
	Source      string
	Translation string
}

// WordList is the ordered collection of pairs for the session.
// Duplicates by Source are allowed.
type WordList []WordPair

// Clone returns an independent copy of the list
func (l WordList) Clone() WordList {
	if l == nil {
		return WordList{}
	}
	out := make(WordList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the index of the first pair with the given source, or -1
func (l WordList) IndexOf(source string) int {
	for i, p := range l {
		if p.Source == source {
			return i
		}
	}
	return -1
}

// LoadResult is what a repository read back from storage
type LoadResult struct {
	Words WordList
	// Skipped counts non-blank records dropped as malformed
	Skipped int
}

// SeedPairs returns the default pairs written when storage is found empty
func SeedPairs() WordList {
	return WordList{
		{Source: "Переменная", Translation: "Variable"},
		{Source: "Цикл", Translation: "Loop"},
		{Source: "Функция", Translation: "Function"},
		{Source: "Массив", Translation: "Array"},
		{Source: "Условие", Translation: "Condition"},
	}
}
