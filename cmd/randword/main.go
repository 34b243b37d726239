// Command randword prints random words from the built-in vocabularies.
//
//	randword -lang full -len 7 -n 3
//	randword -lang nerd -starts m
//	randword -stats
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	randomword "random-word"
	"random-word/internal/logger"
	"random-word/internal/wordsdb"
)

type options struct {
	lang   string
	length int
	starts string
	count  int
	seed   uint64
	stats  bool
}

var errNoMatch = errors.New("no words match")

func main() {
	var opts options
	flag.StringVar(&opts.lang, "lang", "simple", "Vocabulary: "+langList())
	flag.IntVar(&opts.length, "len", 0, "Only words of exactly this many characters")
	flag.StringVar(&opts.starts, "starts", "", "Only words starting with this character")
	flag.IntVar(&opts.count, "n", 1, "Number of words to print")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output (0 means random)")
	flag.BoolVar(&opts.stats, "stats", false, "Print vocabulary statistics instead of words")
	flag.Parse()

	logger.Setup("warn", "text")

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errNoMatch) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func langList() string {
	names := make([]string, 0, len(randomword.Langs()))
	for _, l := range randomword.Langs() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

func run(opts options, out io.Writer) error {
	db, err := randomword.DB()
	if err != nil {
		return err
	}

	if opts.stats {
		return printStats(db, out)
	}

	lang, err := randomword.ParseLang(opts.lang)
	if err != nil {
		return err
	}
	if opts.length < 0 {
		return fmt.Errorf("-len must not be negative, got %d", opts.length)
	}
	if opts.count < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", opts.count)
	}

	words, err := candidates(opts, lang)
	if err != nil {
		return err
	}

	pick := wordsdb.Random
	if opts.seed != 0 {
		r := rand.New(rand.NewPCG(opts.seed, opts.seed))
		pick = func(words wordsdb.Words) string { return wordsdb.RandomFrom(r, words) }
	}

	for range opts.count {
		fmt.Fprintln(out, pick(words))
	}
	return nil
}

func candidates(opts options, lang randomword.Lang) (wordsdb.Words, error) {
	var c rune
	if opts.starts != "" {
		if utf8.RuneCountInString(opts.starts) != 1 {
			return nil, fmt.Errorf("-starts must be a single character, got %q", opts.starts)
		}
		c, _ = utf8.DecodeRuneInString(opts.starts)
	}

	switch {
	case opts.length > 0 && c != 0:
		byLength, ok := randomword.AllLen(opts.length, lang)
		if !ok {
			return nil, fmt.Errorf("%w: %d characters in %s", errNoMatch, opts.length, lang)
		}
		var words wordsdb.Words
		for _, w := range byLength {
			if first, _ := utf8.DecodeRuneInString(w); first == c {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: %d characters starting with %q in %s", errNoMatch, opts.length, c, lang)
		}
		return words, nil
	case opts.length > 0:
		words, ok := randomword.AllLen(opts.length, lang)
		if !ok {
			return nil, fmt.Errorf("%w: %d characters in %s", errNoMatch, opts.length, lang)
		}
		return words, nil
	case c != 0:
		words, ok := randomword.AllStartsWith(c, lang)
		if !ok {
			return nil, fmt.Errorf("%w: starting with %q in %s", errNoMatch, c, lang)
		}
		return words, nil
	default:
		return randomword.All(lang), nil
	}
}

func printStats(db *wordsdb.DB, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VOCABULARY\tCODEC\tWORDS\tLENGTHS\tSTARTING CHARS")
	for _, v := range db.Vocabularies() {
		s, err := db.Stats(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d-%d\t%d\n", s.Vocabulary, s.Codec, s.Words, s.MinLength, s.MaxLength, s.StartingChars)
	}
	return tw.Flush()
}
