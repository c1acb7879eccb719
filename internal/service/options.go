package service

import "vocabquiz/internal/domain"

// MaxOptions is the number of choices shown for a question
const MaxOptions = 4

// SampleOptions returns the correct word plus up to MaxOptions-1 distractors
// picked without replacement from pool, in random order.
// A small pool yields fewer options.
func SampleOptions(rng Rand, correct domain.WordEntry, pool []domain.WordEntry) []string {
	options := make([]string, 0, MaxOptions)
	options = append(options, correct.Word)

	candidates := make([]domain.WordEntry, 0, len(pool))
	for _, e := range pool {
		if e.Word != correct.Word {
			candidates = append(candidates, e)
		}
	}

	for len(options) < MaxOptions && len(candidates) > 0 {
		k := rng.Intn(len(candidates))
		options = append(options, candidates[k].Word)
		candidates = append(candidates[:k], candidates[k+1:]...)
	}

	return Shuffle(rng, options)
}
