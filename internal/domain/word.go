package domain

import "fmt"

// WordEntry is a single vocabulary item
type WordEntry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// GradePool is one grade with its entries in source order
type GradePool struct {
	Grade   string
	Entries []WordEntry
}

// WordBank holds the whole word dataset keyed by grade label.
// It is read-only after construction.
type WordBank struct {
	labels []string
	pools  map[string][]WordEntry
}

// NewWordBank builds a bank from pools, keeping their order.
// A grade label may appear only once and a word only once per grade.
func NewWordBank(pools []GradePool) (*WordBank, error) {
	b := &WordBank{
		labels: make([]string, 0, len(pools)),
		pools:  make(map[string][]WordEntry, len(pools)),
	}

	for _, p := range pools {
		if p.Grade == "" {
			return nil, ErrEmptyGrade
		}
		if _, exists := b.pools[p.Grade]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGrade, p.Grade)
		}

		seen := make(map[string]struct{}, len(p.Entries))
		entries := make([]WordEntry, 0, len(p.Entries))
		for _, e := range p.Entries {
			if _, dup := seen[e.Word]; dup {
				return nil, fmt.Errorf("%w: %q in grade %q", ErrDuplicateWord, e.Word, p.Grade)
			}
			seen[e.Word] = struct{}{}
			entries = append(entries, e)
		}

		b.labels = append(b.labels, p.Grade)
		b.pools[p.Grade] = entries
	}

	return b, nil
}

// GradeLabels returns all grade labels in source order
func (b *WordBank) GradeLabels() []string {
	out := make([]string, len(b.labels))
	copy(out, b.labels)
	return out
}

// EntriesFor returns a copy of the grade's entries
func (b *WordBank) EntriesFor(grade string) ([]WordEntry, error) {
	entries, ok := b.pools[grade]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrade, grade)
	}
	out := make([]WordEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// HasGrade reports whether the grade exists
func (b *WordBank) HasGrade(grade string) bool {
	_, ok := b.pools[grade]
	return ok
}

// WordCount returns the total number of entries across grades
func (b *WordBank) WordCount() int {
	n := 0
	for _, entries := range b.pools {
		n += len(entries)
	}
	return n
}

// AnswerResult is the feedback for a submitted answer
type AnswerResult struct {
	Correct     bool   `json:"correct"`
	CorrectWord string `json:"correct_word"`
}
