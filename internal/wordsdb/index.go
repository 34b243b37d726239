package wordsdb

import (
	"strings"
	"unicode/utf8"
)

// Words is an immutable, shared sequence of words. Callers must not modify it.
type Words []string

// splitWords splits text into words on line boundaries. A trailing "\r" is
// dropped with the newline; empty lines are skipped. Nothing else is trimmed
// and duplicates are kept.
func splitWords(text string) Words {
	words := make(Words, 0, strings.Count(text, "\n")+1)

	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}

		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		words = append(words, line)
	}

	return words
}

// runeLength is the word's length in Unicode scalar values.
func runeLength(word string) int {
	return utf8.RuneCountInString(word)
}

// firstRune is the word's leading Unicode scalar value. Words are never empty.
func firstRune(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	return r
}

// groupBy partitions words into buckets keyed by key. Every word lands in
// exactly one bucket, and buckets keep word table order. All buckets share one
// backing array; each bucket is capacity-capped so an append by a caller
// cannot spill into its neighbour.
func groupBy[K comparable](words Words, key func(string) K) map[K]Words {
	counts := make(map[K]int)
	for _, w := range words {
		counts[key(w)]++
	}

	backing := make([]string, len(words))
	offsets := make(map[K]int, len(counts))
	next := 0
	for k, n := range counts {
		offsets[k] = next
		next += n
	}

	index := make(map[K]Words, len(counts))
	for _, w := range words {
		k := key(w)
		off := offsets[k]
		backing[off] = w
		offsets[k] = off + 1
	}
	for k, n := range counts {
		end := offsets[k]
		index[k] = Words(backing[end-n : end : end])
	}

	return index
}

func buildLengthIndex(words Words) map[int]Words {
	return groupBy(words, runeLength)
}

func buildPrefixIndex(words Words) map[rune]Words {
	return groupBy(words, firstRune)
}
