package precompute

import (
	"fmt"
	"os"
	"strings"

	"random-word/internal/codec"
)

// EncodeWords renders words as the plain payload text: one word per line with
// a trailing newline.
func EncodeWords(words []string) []byte {
	content := strings.Join(words, "\n")
	if len(words) > 0 {
		content += "\n" // Add trailing newline
	}
	return []byte(content)
}

// WritePayload compresses words with c and writes them to outputPath. It
// returns the number of bytes written.
func WritePayload(words []string, outputPath string, c codec.Codec) (int, error) {
	data, err := c.Compress(EncodeWords(words))
	if err != nil {
		return 0, fmt.Errorf("failed to compress %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write payload file: %w", err)
	}

	return len(data), nil
}
