// Command wordpack compresses plain word lists into the payloads embedded by
// the randomword package.
//
//	wordpack -input words -output internal/assets/data -codec zstd
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"random-word/internal/codec"
	"random-word/internal/logger"
	"random-word/internal/precompute"
)

type options struct {
	inputDir  string
	outputDir string
	codec     string
	dedupe    bool
	workers   int
}

func main() {
	var opts options
	flag.StringVar(&opts.inputDir, "input", "", "Directory containing <vocabulary>.txt word lists (required)")
	flag.StringVar(&opts.outputDir, "output", "internal/assets/data", "Directory to write compressed payloads to")
	flag.StringVar(&opts.codec, "codec", "zstd", "Payload codec: "+strings.Join(codec.Names(), ", "))
	flag.BoolVar(&opts.dedupe, "dedupe", false, "Drop repeated words before packing")
	flag.IntVar(&opts.workers, "workers", 0, "Parallel vocabularies (default: number of CPUs)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger.Setup(*logLevel, "text")

	// Validate input
	if opts.inputDir == "" {
		fmt.Fprintf(os.Stderr, "Error: --input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Check if input directory exists
	if _, err := os.Stat(opts.inputDir); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: Input directory '%s' does not exist\n", opts.inputDir)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	c, err := codec.ForName(opts.codec)
	if err != nil {
		return err
	}

	log := logger.WithComponent("wordpack")

	fmt.Fprintf(out, "Word Pack Tool\n")
	fmt.Fprintf(out, "==============\n\n")
	fmt.Fprintf(out, "Input directory: %s\n", opts.inputDir)
	fmt.Fprintf(out, "Output directory: %s\n", opts.outputDir)
	fmt.Fprintf(out, "Codec: %s\n\n", c.Name())

	// Track start time for elapsed time reporting
	programStart := time.Now()

	progressCallback := func(msg string) {
		fmt.Fprintf(out, "[%s] %s\n", formatElapsed(time.Since(programStart)), msg)
	}

	results, err := precompute.PackDirectory(ctx, opts.inputDir, opts.outputDir, precompute.PackOptions{
		Codec:   c,
		Dedupe:  opts.dedupe,
		Workers: opts.workers,
	}, progressCallback)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		total += r.Words
		log.Debug("payload written", "vocabulary", r.Vocabulary, "path", r.Path, "bytes", r.CompressedBytes)
	}

	fmt.Fprintf(out, "\n✓ Success!\n\n")
	fmt.Fprint(out, precompute.Summary(results))
	fmt.Fprintf(out, "\n  Vocabularies: %d\n", len(results))
	fmt.Fprintf(out, "  Words: %d\n", total)
	fmt.Fprintf(out, "  Processing time: %s\n", time.Since(programStart).Round(time.Millisecond))
	fmt.Fprintln(out)

	return nil
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
