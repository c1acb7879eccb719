package testutil

import (
	"vocabquiz/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestBank builds a word bank and panics on invalid input
func NewTestBank(pools ...domain.GradePool) *domain.WordBank {
	bank, err := domain.NewWordBank(pools)
	if err != nil {
		panic(err)
	}
	return bank
}

// NewTestPool creates a grade whose entries are the given words,
// each meaning "<word> meaning"
func NewTestPool(grade string, words ...string) domain.GradePool {
	entries := make([]domain.WordEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, domain.WordEntry{Word: w, Meaning: w + " meaning"})
	}
	return domain.GradePool{Grade: grade, Entries: entries}
}

// SeqRand returns the given values in a cycle, reduced modulo n
type SeqRand struct {
	Values []int
	calls  int
}

func (r *SeqRand) Intn(n int) int {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.calls%len(r.Values)]
	r.calls++
	return v % n
}

// Calls returns how many numbers were drawn
func (r *SeqRand) Calls() int {
	return r.calls
}

// LastRand always returns n-1, which makes Shuffle the identity
type LastRand struct{}

func (LastRand) Intn(n int) int {
	return n - 1
}
