// Package randomword picks random words from built-in vocabularies, optionally
// filtered by exact length (in characters) or by starting character.
//
// The vocabularies ship compressed inside the binary. Each one is decompressed
// and indexed on first use, once, even under concurrent first access; after
// that every lookup is a map access and all functions are safe for concurrent
// use.
//
//	word := randomword.Get(randomword.Simple)
//	five, ok := randomword.GetLen(5, randomword.Full)
//	c, ok := randomword.GetStartsWith('c', randomword.Nerd)
//
// Slices returned by the All* functions are shared and must not be modified.
//
// The embedded data is part of the build. If it is corrupt the functions
// panic with a *wordsdb.IntegrityError rather than return partial results.
package randomword

import (
	"fmt"
	"strings"
	"sync"

	"random-word/internal/assets"
	"random-word/internal/wordsdb"
)

// Lang selects a vocabulary.
type Lang int

const (
	// Simple is a list of common five-letter words.
	Simple Lang = iota
	// Full is a broader English list of mixed lengths.
	Full
	// Nerd is programming and systems jargon.
	Nerd
)

var langNames = [...]string{
	Simple: "simple",
	Full:   "full",
	Nerd:   "nerd",
}

// Langs lists every supported vocabulary.
func Langs() []Lang {
	return []Lang{Simple, Full, Nerd}
}

func (l Lang) String() string {
	if l < 0 || int(l) >= len(langNames) {
		return fmt.Sprintf("Lang(%d)", int(l))
	}
	return langNames[l]
}

// Vocabulary is the database identifier for l.
func (l Lang) Vocabulary() wordsdb.Vocabulary {
	return wordsdb.Vocabulary(l.String())
}

// ParseLang returns the Lang named s, ignoring case.
func ParseLang(s string) (Lang, error) {
	for _, l := range Langs() {
		if strings.EqualFold(l.String(), s) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", wordsdb.ErrUnknownVocabulary, s)
}

var defaultDB = sync.OnceValues(func() (*wordsdb.DB, error) {
	return wordsdb.Open(wordsdb.Source{FS: assets.FS, Dir: assets.Dir})
})

// DB returns the process-wide database over the embedded vocabularies.
func DB() (*wordsdb.DB, error) {
	return defaultDB()
}

func mustDB() *wordsdb.DB {
	db, err := defaultDB()
	if err != nil {
		panic(fmt.Errorf("randomword: embedded vocabularies unusable: %w", err))
	}
	return db
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustOK[T any](v T, ok bool, err error) (T, bool) {
	if err != nil {
		panic(err)
	}
	return v, ok
}

// All returns every word of lang.
func All(lang Lang) []string {
	return must(mustDB().All(lang.Vocabulary()))
}

// Get returns a random word of lang.
func Get(lang Lang) string {
	return must(mustDB().Get(lang.Vocabulary()))
}

// AllLen returns the words of lang that are n characters long, or false if
// there are none.
func AllLen(n int, lang Lang) ([]string, bool) {
	return mustOK(mustDB().AllByLength(n, lang.Vocabulary()))
}

// GetLen returns a random word of lang that is n characters long, or false
// if there is none.
func GetLen(n int, lang Lang) (string, bool) {
	return mustOK(mustDB().GetByLength(n, lang.Vocabulary()))
}

// AllStartsWith returns the words of lang beginning with c, or false if there
// are none. Matching is case-sensitive.
func AllStartsWith(c rune, lang Lang) ([]string, bool) {
	return mustOK(mustDB().AllByPrefixChar(c, lang.Vocabulary()))
}

// GetStartsWith returns a random word of lang beginning with c, or false if
// there is none.
func GetStartsWith(c rune, lang Lang) (string, bool) {
	return mustOK(mustDB().GetByPrefixChar(c, lang.Vocabulary()))
}
