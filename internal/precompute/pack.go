package precompute

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"random-word/internal/codec"
)

const (
	// Scanner buffer sizes for reading files
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// PackOptions controls PackDirectory.
type PackOptions struct {
	// Codec compresses the payloads. Defaults to zstd.
	Codec codec.Codec
	// Dedupe drops repeated words before packing.
	Dedupe bool
	// Workers bounds parallel packing. If 0 or negative, uses runtime.NumCPU().
	Workers int
}

// PackResult describes one written payload.
type PackResult struct {
	Vocabulary      string
	Path            string
	Words           int
	Duplicates      int
	MinLength       int
	MaxLength       int
	RawBytes        int
	CompressedBytes int
}

// Ratio is the compressed size relative to the plain text.
func (r PackResult) Ratio() float64 {
	if r.RawBytes == 0 {
		return 0
	}
	return float64(r.CompressedBytes) / float64(r.RawBytes)
}

// PackDirectory compresses every <vocabulary>.txt in inputDir into
// outputDir/<vocabulary>.<codec extension>, in parallel. Payloads of the same
// vocabulary written earlier with another codec are removed so each
// vocabulary ends up with exactly one payload. Results are sorted by
// vocabulary.
func PackDirectory(ctx context.Context, inputDir, outputDir string, opts PackOptions, progressCallback func(string)) ([]PackResult, error) {
	if opts.Codec == nil {
		opts.Codec = codec.Zstd{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if filepath.Clean(inputDir) == filepath.Clean(outputDir) {
		return nil, fmt.Errorf("output directory must differ from input directory %s", inputDir)
	}

	sources, err := listSources(inputDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no %s files found in directory %s", SourceExt, inputDir)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	// progressCallback may be called from several workers
	var progressMu sync.Mutex
	progress := func(msg string) {
		if progressCallback == nil {
			return
		}
		progressMu.Lock()
		defer progressMu.Unlock()
		progressCallback(msg)
	}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]PackResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			progress(fmt.Sprintf("  Packing %s...", name))
			res, err := packOne(name, sources[name], outputDir, opts)
			if err != nil {
				return err
			}
			results[i] = res

			progress(fmt.Sprintf("    %s: %d words, %d -> %d bytes (%.1f%%)",
				name, res.Words, res.RawBytes, res.CompressedBytes, res.Ratio()*100))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func packOne(name, sourcePath, outputDir string, opts PackOptions) (PackResult, error) {
	words, err := LoadFile(sourcePath)
	if err != nil {
		return PackResult{}, err
	}

	loaded := len(words)
	if opts.Dedupe {
		words = DeduplicateWords(words)
	}
	if len(words) == 0 {
		return PackResult{}, fmt.Errorf("vocabulary %s has no words", name)
	}

	if err := removeStalePayloads(name, outputDir, opts.Codec); err != nil {
		return PackResult{}, err
	}

	outputPath := filepath.Join(outputDir, name+"."+opts.Codec.Extension())
	n, err := WritePayload(words, outputPath, opts.Codec)
	if err != nil {
		return PackResult{}, err
	}

	res := PackResult{
		Vocabulary:      name,
		Path:            outputPath,
		Words:           len(words),
		Duplicates:      loaded - len(words),
		RawBytes:        len(EncodeWords(words)),
		CompressedBytes: n,
	}
	res.MinLength, res.MaxLength = lengthRange(words)
	return res, nil
}

// removeStalePayloads deletes outputDir/<name>.<ext> for every codec other
// than keep.
func removeStalePayloads(name, outputDir string, keep codec.Codec) error {
	for _, cname := range codec.Names() {
		c, err := codec.ForName(cname)
		if err != nil {
			return err
		}
		if c.Extension() == keep.Extension() {
			continue
		}
		stale := filepath.Join(outputDir, name+"."+c.Extension())
		if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale payload %s: %w", stale, err)
		}
	}
	return nil
}

func lengthRange(words []string) (minLen, maxLen int) {
	for i, w := range words {
		n := utf8.RuneCountInString(w)
		if i == 0 || n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}
	return minLen, maxLen
}

// Summary renders results as an aligned table.
func Summary(results []PackResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %8s %6s %8s %10s %7s\n", "VOCABULARY", "WORDS", "DUPES", "LENGTHS", "BYTES", "RATIO")
	for _, r := range results {
		fmt.Fprintf(&b, "%-12s %8d %6d %8s %10d %6.1f%%\n",
			r.Vocabulary, r.Words, r.Duplicates,
			fmt.Sprintf("%d-%d", r.MinLength, r.MaxLength),
			r.CompressedBytes, r.Ratio()*100)
	}
	return b.String()
}
