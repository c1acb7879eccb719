// Package document reads the word dataset from a JSON document of the form
//
//	{ "Grade1": [ {"word": "apple", "meaning": "a fruit"} ] }
//
// Grade order in the document is preserved.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"vocabquiz/internal/domain"
)

type rawEntry struct {
	Word    *string `json:"word"`
	Meaning *string `json:"meaning"`
}

// Parse decodes a word document
func Parse(r io.Reader) (*domain.WordBank, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var pools []domain.GradePool
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read grade label: %w", err)
		}
		grade, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var raw []*rawEntry
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("grade %q: %w", grade, err)
		}
		if raw == nil {
			return nil, fmt.Errorf("grade %q: entries must be an array", grade)
		}

		entries := make([]domain.WordEntry, 0, len(raw))
		for i, e := range raw {
			if e == nil || e.Word == nil || e.Meaning == nil {
				return nil, fmt.Errorf("grade %q: entry %d needs string fields word and meaning", grade, i)
			}
			entries = append(entries, domain.WordEntry{Word: *e.Word, Meaning: *e.Meaning})
		}

		pools = append(pools, domain.GradePool{Grade: grade, Entries: entries})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after document")
	}

	return domain.NewWordBank(pools)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("document must be an object of grades, got %v", tok)
	}
	return nil
}
