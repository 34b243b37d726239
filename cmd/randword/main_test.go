package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"random-word/internal/wordsdb"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		opts  options
		lines int
		check func(t *testing.T, word string)
	}{
		{
			name:  "default",
			opts:  options{lang: "simple", count: 1},
			lines: 1,
			check: func(t *testing.T, word string) {
				assert.Equal(t, 5, utf8.RuneCountInString(word))
			},
		},
		{
			name:  "length",
			opts:  options{lang: "full", length: 7, count: 5},
			lines: 5,
			check: func(t *testing.T, word string) {
				assert.Equal(t, 7, utf8.RuneCountInString(word))
			},
		},
		{
			name:  "starts with",
			opts:  options{lang: "nerd", starts: "s", count: 3},
			lines: 3,
			check: func(t *testing.T, word string) {
				assert.True(t, strings.HasPrefix(word, "s"))
			},
		},
		{
			name:  "length and starts with",
			opts:  options{lang: "nerd", length: 5, starts: "m", count: 4},
			lines: 4,
			check: func(t *testing.T, word string) {
				assert.True(t, strings.HasPrefix(word, "m"))
				assert.Equal(t, 5, utf8.RuneCountInString(word))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.opts, &out))

			words := strings.Fields(out.String())
			require.Len(t, words, tt.lines)
			for _, w := range words {
				tt.check(t, w)
			}
		})
	}
}

func TestRun_Seeded(t *testing.T) {
	opts := options{lang: "full", count: 10, seed: 42}

	var first, second bytes.Buffer
	require.NoError(t, run(opts, &first))
	require.NoError(t, run(opts, &second))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr error
		msg     string
	}{
		{name: "unknown lang", opts: options{lang: "klingon", count: 1}, wantErr: wordsdb.ErrUnknownVocabulary},
		{name: "no such length", opts: options{lang: "simple", length: 40, count: 1}, wantErr: errNoMatch},
		{name: "no such char", opts: options{lang: "simple", starts: "Z", count: 1}, wantErr: errNoMatch},
		{name: "bad count", opts: options{lang: "simple", count: 0}, msg: "-n must be at least 1"},
		{name: "negative length", opts: options{lang: "simple", length: -5, count: 1}, msg: "-len must not be negative"},
		{name: "multi-char starts", opts: options{lang: "simple", starts: "ab", count: 1}, msg: "single character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.opts, &bytes.Buffer{})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestRun_Stats(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(options{stats: true}, &out))

	s := out.String()
	assert.Contains(t, s, "VOCABULARY")
	for _, name := range []string{"simple", "full", "nerd"} {
		assert.Contains(t, s, name)
	}
	assert.Contains(t, s, "5-5")
}
