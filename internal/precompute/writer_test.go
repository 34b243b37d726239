package precompute

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"random-word/internal/codec"
)

func TestEncodeWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{name: "multiple words", words: []string{"cat", "car", "dog"}, want: "cat\ncar\ndog\n"},
		{name: "single word", words: []string{"cat"}, want: "cat\n"},
		{name: "empty slice", words: []string{}, want: ""},
		{name: "non-ascii", words: []string{"café", "naïve"}, want: "café\nnaïve\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(EncodeWords(tt.words)))
		})
	}
}

func TestWritePayload(t *testing.T) {
	t.Parallel()

	words := []string{"zebra", "apple", "mango", "banana", "café"}

	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := codec.ForName(name)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "words."+c.Extension())
			n, err := WritePayload(words, path, c)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Len(t, data, n)

			plain, err := c.Decompress(data)
			require.NoError(t, err)

			// order preserved, trailing newline present
			assert.Equal(t, strings.Join(words, "\n")+"\n", string(plain))
		})
	}
}

func TestWritePayload_InvalidPath(t *testing.T) {
	// Try to write to a directory that doesn't exist
	invalidPath := "/nonexistent/directory/that/should/not/exist/words.zst"

	_, err := WritePayload([]string{"cat", "dog"}, invalidPath, codec.Zstd{})
	assert.Error(t, err)
}

func TestWritePayload_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overwrite.gz")

	_, err := WritePayload([]string{"cat", "dog"}, path, codec.Gzip{})
	require.NoError(t, err)
	_, err = WritePayload([]string{"emu", "yak", "ox"}, path, codec.Gzip{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	plain, err := codec.Gzip{}.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, "emu\nyak\nox\n", string(plain))
}

func TestWritePayload_LargeDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.zst")

	words := make([]string, 10000)
	for i := range words {
		words[i] = "word" + strings.Repeat("x", 50)
	}

	n, err := WritePayload(words, path, codec.Zstd{})
	require.NoError(t, err)

	// ~550KB of highly repetitive text compresses to a tiny payload
	assert.Less(t, n, 10000*55/20)
}
