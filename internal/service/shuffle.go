package service

// Rand is the source of randomness used by the quiz.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Shuffle returns a uniformly shuffled copy of in (Fisher-Yates).
// The input slice is left untouched.
func Shuffle[T any](rng Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
