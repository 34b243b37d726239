package wordsdb

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"random-word/internal/codec"
)

// Vocabulary names one word list, e.g. "simple".
type Vocabulary string

// Source locates payloads: every regular file in Dir is one vocabulary named
// after the file stem, compressed with the codec matching its extension.
type Source struct {
	FS  fs.FS
	Dir string
}

type payload struct {
	vocabulary Vocabulary
	path       string
	codec      codec.Codec
}

func (s Source) payloads() ([]payload, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload directory %s: %w", dir, err)
	}

	seen := make(map[Vocabulary]string)
	var payloads []payload

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := path.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		if stem == "" {
			return nil, fmt.Errorf("payload %s has no vocabulary name", name)
		}

		c, err := codec.ForExtension(ext)
		if err != nil {
			return nil, fmt.Errorf("payload %s: %w", name, err)
		}

		v := Vocabulary(stem)
		if prev, ok := seen[v]; ok {
			return nil, fmt.Errorf("vocabulary %q has two payloads: %s and %s", v, prev, name)
		}
		seen[v] = name

		payloads = append(payloads, payload{
			vocabulary: v,
			path:       path.Join(dir, name),
			codec:      c,
		})
	}

	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPayloads, dir)
	}

	return payloads, nil
}
