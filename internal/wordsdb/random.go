package wordsdb

import "math/rand/v2"

// Random returns a uniformly chosen element of words. It uses the runtime's
// per-thread generator, so concurrent callers share no lock.
//
// words must not be empty: every word table and index bucket handed out by a
// DB is non-empty, so an empty slice here is a bug and panics.
func Random(words Words) string {
	if len(words) == 0 {
		panic("wordsdb: Random called with no words")
	}
	return words[rand.IntN(len(words))]
}

// RandomFrom is Random with a caller-supplied generator, for reproducible
// sequences.
func RandomFrom(r *rand.Rand, words Words) string {
	if len(words) == 0 {
		panic("wordsdb: RandomFrom called with no words")
	}
	return words[r.IntN(len(words))]
}
