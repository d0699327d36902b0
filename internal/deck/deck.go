// Package deck reads and writes word lists as YAML deck files:
//
//	words:
//	  - source: Цикл
//	    translation: Loop
package deck

import (
	"fmt"
	"io"
	"strings"

	"flashcards/internal/domain"

	"gopkg.in/yaml.v3"
)

type card struct {
	Source      string `yaml:"source"`
	Translation string `yaml:"translation"`
}

type document struct {
	Words []card `yaml:"words"`
}

// Encode writes words as a YAML deck
func Encode(w io.Writer, words domain.WordList) error {
	doc := document{Words: make([]card, 0, len(words))}
	for _, p := range words {
		doc.Words = append(doc.Words, card{Source: p.Source, Translation: p.Translation})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML deck. Fields are trimmed; a card without a source is an error.
func Decode(r io.Reader) (domain.WordList, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return domain.WordList{}, nil
		}
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}

	words := make(domain.WordList, 0, len(doc.Words))
	for i, c := range doc.Words {
		source := strings.TrimSpace(c.Source)
		if source == "" {
			return nil, fmt.Errorf("card %d: source is empty", i+1)
		}
		words = append(words, domain.WordPair{
			Source:      source,
			Translation: strings.TrimSpace(c.Translation),
		})
	}
	return words, nil
}
