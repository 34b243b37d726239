package randomword

import (
	"slices"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"random-word/internal/wordsdb"
)

func TestDB_EmbeddedVocabularies(t *testing.T) {
	db, err := DB()
	require.NoError(t, err)

	want := make([]wordsdb.Vocabulary, 0, len(Langs()))
	for _, l := range Langs() {
		want = append(want, l.Vocabulary())
	}
	assert.ElementsMatch(t, want, db.Vocabularies())
}

func TestAll_NonEmpty(t *testing.T) {
	for _, lang := range Langs() {
		t.Run(lang.String(), func(t *testing.T) {
			words := All(lang)
			require.NotEmpty(t, words)
			for _, w := range words {
				assert.NotEmpty(t, w)
				assert.True(t, utf8.ValidString(w))
			}
		})
	}
}

func TestAll_Idempotent(t *testing.T) {
	for _, lang := range Langs() {
		first := All(lang)
		second := All(lang)
		assert.Equal(t, first, second)
	}
}

func TestIndices_Partition(t *testing.T) {
	for _, lang := range Langs() {
		t.Run(lang.String(), func(t *testing.T) {
			words := All(lang)

			var byLength, byPrefix []string
			lengths := make(map[int]bool)
			prefixes := make(map[rune]bool)

			for _, w := range words {
				n := utf8.RuneCountInString(w)
				c, _ := utf8.DecodeRuneInString(w)

				lenBucket, ok := AllLen(n, lang)
				require.True(t, ok, "word %q missing from length bucket %d", w, n)
				assert.Contains(t, lenBucket, w)

				prefixBucket, ok := AllStartsWith(c, lang)
				require.True(t, ok, "word %q missing from prefix bucket %q", w, c)
				assert.Contains(t, prefixBucket, w)

				if !lengths[n] {
					lengths[n] = true
					byLength = append(byLength, lenBucket...)
				}
				if !prefixes[c] {
					prefixes[c] = true
					byPrefix = append(byPrefix, prefixBucket...)
				}
			}

			want := slices.Clone(words)
			slices.Sort(want)
			slices.Sort(byLength)
			slices.Sort(byPrefix)
			assert.Equal(t, want, byLength)
			assert.Equal(t, want, byPrefix)
		})
	}
}

func TestGetLen(t *testing.T) {
	for _, lang := range Langs() {
		t.Run(lang.String(), func(t *testing.T) {
			for n := 0; n <= 25; n++ {
				_, present := AllLen(n, lang)
				word, ok := GetLen(n, lang)
				assert.Equal(t, present, ok, "length %d", n)
				if ok {
					assert.Equal(t, n, utf8.RuneCountInString(word))
				} else {
					assert.Empty(t, word)
				}
			}
		})
	}
}

func TestGetStartsWith(t *testing.T) {
	for _, lang := range Langs() {
		t.Run(lang.String(), func(t *testing.T) {
			for _, c := range "abcdefghijklmnopqrstuvwxyzABCXYZé0-" {
				_, present := AllStartsWith(c, lang)
				word, ok := GetStartsWith(c, lang)
				assert.Equal(t, present, ok, "char %q", c)
				if ok {
					first, _ := utf8.DecodeRuneInString(word)
					assert.Equal(t, c, first)
				}
			}
		})
	}
}

func TestSimple_FiveLetters(t *testing.T) {
	words, ok := AllLen(5, Simple)
	require.True(t, ok)
	assert.Equal(t, All(Simple), words)

	_, ok = AllLen(4, Simple)
	assert.False(t, ok)
}

func TestNerd_CharacterLength(t *testing.T) {
	// "naïve" is five characters but six bytes
	words, ok := AllLen(5, Nerd)
	require.True(t, ok)
	assert.Contains(t, words, "naïve")

	six, _ := AllLen(6, Nerd)
	assert.NotContains(t, six, "naïve")
}

func TestGet(t *testing.T) {
	for _, lang := range Langs() {
		word := Get(lang)
		assert.Contains(t, All(lang), word)
	}
}

func TestGet_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lang := Langs()[i%len(Langs())]
			for range 100 {
				assert.NotEmpty(t, Get(lang))
				if w, ok := GetLen(5, lang); ok {
					assert.Equal(t, 5, utf8.RuneCountInString(w))
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in      string
		want    Lang
		wantErr bool
	}{
		{in: "simple", want: Simple},
		{in: "FULL", want: Full},
		{in: "Nerd", want: Nerd},
		{in: "en", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLang(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, wordsdb.ErrUnknownVocabulary)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLang_String(t *testing.T) {
	assert.Equal(t, "simple", Simple.String())
	assert.Equal(t, "nerd", Nerd.String())
	assert.Equal(t, "Lang(7)", Lang(7).String())
}

func BenchmarkGet(b *testing.B) {
	_ = All(Full)

	b.ReportAllocs()
	for b.Loop() {
		_ = Get(Full)
	}
}

func BenchmarkGetLen(b *testing.B) {
	_, _ = AllLen(5, Full)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = GetLen(5, Full)
	}
}
