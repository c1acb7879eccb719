package service

import (
	"math/rand"
	"testing"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSampleOptions(t *testing.T) {
	tests := []struct {
		name          string
		words         []string
		correct       string
		expectedCount int
	}{
		{
			name:          "exactly four words",
			words:         []string{"cat", "red", "sun", "sea"},
			correct:       "cat",
			expectedCount: 4,
		},
		{
			name:          "large pool",
			words:         []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
			correct:       "e",
			expectedCount: 4,
		},
		{
			name:          "three words",
			words:         []string{"cat", "red", "sun"},
			correct:       "red",
			expectedCount: 3,
		},
		{
			name:          "two words",
			words:         []string{"cat", "red"},
			correct:       "cat",
			expectedCount: 2,
		},
		{
			name:          "only the correct word",
			words:         []string{"cat"},
			correct:       "cat",
			expectedCount: 1,
		},
		{
			name:          "correct word outside pool",
			words:         []string{"a", "b", "c", "d"},
			correct:       "z",
			expectedCount: 4,
		},
	}

	rng := rand.New(rand.NewSource(3))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := testutil.NewTestPool("G", tt.words...).Entries
			correct := domain.WordEntry{Word: tt.correct, Meaning: "m"}

			for i := 0; i < 100; i++ {
				options := SampleOptions(rng, correct, pool)

				assert.Len(t, options, tt.expectedCount)
				assert.Contains(t, options, tt.correct)
				assertDistinct(t, options)
				for _, o := range options {
					if o != tt.correct {
						assert.Contains(t, tt.words, o)
					}
				}
			}
		})
	}
}

func TestSampleOptions_TwoWordsScenario(t *testing.T) {
	pool := []domain.WordEntry{
		{Word: "cat", Meaning: "animal"},
		{Word: "red", Meaning: "color"},
	}

	options := SampleOptions(rand.New(rand.NewSource(1)), pool[0], pool)

	assert.ElementsMatch(t, []string{"cat", "red"}, options)
}

func TestSampleOptions_Deterministic(t *testing.T) {
	pool := testutil.NewTestPool("G", "a", "b", "c", "d", "e").Entries

	// LastRand always takes the last candidate and leaves the final order alone
	options := SampleOptions(testutil.LastRand{}, pool[0], pool)

	assert.Equal(t, []string{"a", "e", "d", "c"}, options)
}

func TestSampleOptions_DoesNotMutatePool(t *testing.T) {
	pool := testutil.NewTestPool("G", "a", "b", "c", "d", "e", "f").Entries
	original := append([]domain.WordEntry(nil), pool...)

	SampleOptions(rand.New(rand.NewSource(9)), pool[2], pool)

	assert.Equal(t, original, pool)
}

func TestSampleOptions_EveryDistractorReachable(t *testing.T) {
	pool := testutil.NewTestPool("G", "a", "b", "c", "d", "e", "f").Entries
	rng := rand.New(rand.NewSource(11))
	seen := make(map[string]bool)

	for i := 0; i < 500; i++ {
		for _, o := range SampleOptions(rng, pool[0], pool) {
			seen[o] = true
		}
	}

	assert.Len(t, seen, len(pool))
}

func assertDistinct(t *testing.T, words []string) {
	t.Helper()
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		_, dup := seen[w]
		assert.False(t, dup, "duplicate option %q", w)
		seen[w] = struct{}{}
	}
}
