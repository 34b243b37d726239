package precompute

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// SourceExt is the extension of plain word-list sources.
const SourceExt = ".txt"

// LoadFile reads a word list with one word per line and returns the words in
// file order. Empty lines are skipped and a trailing "\r" is dropped; nothing
// else is trimmed. A line that is not valid UTF-8 is an error.
func LoadFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		if !utf8.ValidString(word) {
			return nil, fmt.Errorf("file %s line %d: invalid UTF-8", filename, lineNo)
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return words, nil
}

// LoadDirectory reads every <vocabulary>.txt file in dirPath and returns the
// words keyed by vocabulary name. Subdirectories and other files are ignored.
func LoadDirectory(dirPath string) (map[string][]string, error) {
	sources, err := listSources(dirPath)
	if err != nil {
		return nil, err
	}

	vocabularies := make(map[string][]string, len(sources))
	for name, path := range sources {
		words, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		vocabularies[name] = words
	}

	return vocabularies, nil
}

// listSources maps vocabulary names to their source file paths.
func listSources(dirPath string) (map[string]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	sources := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != SourceExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), SourceExt)
		if name == "" {
			continue
		}
		sources[name] = filepath.Join(dirPath, entry.Name())
	}

	return sources, nil
}

// DeduplicateWords removes repeated words while preserving first-seen order.
func DeduplicateWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))

	for _, w := range words {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			result = append(result, w)
		}
	}

	return result
}
