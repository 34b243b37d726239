// Package wordsdb serves word lists from compressed payloads. Each vocabulary
// is decompressed, split into a word table and indexed by length and by
// starting character lazily, at most once, on first use. Built structures are
// immutable and shared by all callers without locking.
package wordsdb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"random-word/internal/codec"
	"random-word/internal/logger"
)

// DB is a read-only word database. It is safe for concurrent use.
type DB struct {
	src      Source
	tables   map[Vocabulary]*table
	names    []Vocabulary
	log      *slog.Logger
	observer Observer
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(db *DB) {
		if l != nil {
			db.log = l
		}
	}
}

// WithObserver sets the observer notified about builds and lookups.
func WithObserver(o Observer) Option {
	return func(db *DB) {
		if o != nil {
			db.observer = o
		}
	}
}

// table holds the lazily built structures of one vocabulary. Every field is a
// once-cell: the first caller builds, concurrent callers wait, and the result
// (or error) is kept for the life of the DB.
type table struct {
	vocabulary Vocabulary
	codec      codec.Codec
	text       func() (string, error)
	words      func() (Words, error)
	byLength   func() (map[int]Words, error)
	byPrefix   func() (map[rune]Words, error)
}

// Open prepares a DB over src. Only the payload listing happens here; no
// payload is read until it is queried.
func Open(src Source, opts ...Option) (*DB, error) {
	db := &DB{
		src:      src,
		log:      logger.WithComponent("wordsdb"),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(db)
	}

	payloads, err := src.payloads()
	if err != nil {
		return nil, err
	}

	db.tables = make(map[Vocabulary]*table, len(payloads))
	for _, p := range payloads {
		db.tables[p.vocabulary] = db.newTable(p)
		db.names = append(db.names, p.vocabulary)
	}

	db.log.Debug("word database opened", "vocabularies", len(db.names))
	return db, nil
}

func (db *DB) newTable(p payload) *table {
	t := &table{vocabulary: p.vocabulary, codec: p.codec}

	t.text = sync.OnceValues(func() (string, error) {
		return build(db, t.vocabulary, StageDecompress, func() (string, error) {
			return db.decompress(p)
		})
	})

	t.words = sync.OnceValues(func() (Words, error) {
		text, err := t.text()
		if err != nil {
			return nil, err
		}
		return build(db, t.vocabulary, StageWordTable, func() (Words, error) {
			words := splitWords(text)
			if len(words) == 0 {
				return nil, ErrEmptyVocabulary
			}
			return words, nil
		})
	})

	t.byLength = sync.OnceValues(func() (map[int]Words, error) {
		words, err := t.words()
		if err != nil {
			return nil, err
		}
		return build(db, t.vocabulary, StageLengthIndex, func() (map[int]Words, error) {
			return buildLengthIndex(words), nil
		})
	})

	t.byPrefix = sync.OnceValues(func() (map[rune]Words, error) {
		words, err := t.words()
		if err != nil {
			return nil, err
		}
		return build(db, t.vocabulary, StagePrefixIndex, func() (map[rune]Words, error) {
			return buildPrefixIndex(words), nil
		})
	})

	return t
}

func (db *DB) decompress(p payload) (string, error) {
	raw, err := fs.ReadFile(db.src.FS, p.path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	data, err := p.codec.Decompress(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}

	return string(data), nil
}

// build runs one stage, wraps its failure into an IntegrityError and reports
// it to the logger and observer.
func build[T any](db *DB, v Vocabulary, stage Stage, fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := fn()
	took := time.Since(start)

	if err != nil {
		err = &IntegrityError{Vocabulary: v, Stage: stage, Err: err}
		db.log.Error("vocabulary build failed", "vocabulary", v, "stage", stage, "error", err)
	} else {
		db.log.Debug("vocabulary stage built", "vocabulary", v, "stage", stage, "took", took)
	}
	db.observer.ObserveBuild(v, stage, took, err)

	return result, err
}

func (db *DB) table(v Vocabulary) (*table, error) {
	t, ok := db.tables[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVocabulary, v)
	}
	return t, nil
}

// Vocabularies lists the vocabularies in the DB, sorted by name.
func (db *DB) Vocabularies() []Vocabulary {
	return slices.Clone(db.names)
}

// Has reports whether v is served by the DB.
func (db *DB) Has(v Vocabulary) bool {
	_, ok := db.tables[v]
	return ok
}

// All returns the full word table of v. It is never empty.
func (db *DB) All(v Vocabulary) (Words, error) {
	t, err := db.table(v)
	if err != nil {
		return nil, err
	}

	words, err := t.words()
	if err != nil {
		return nil, err
	}

	db.observer.ObserveLookup(v, LookupAll, true)
	return words, nil
}

// AllByLength returns the words of v that are exactly n characters long. The
// boolean is false when there are none; that is not an error.
func (db *DB) AllByLength(n int, v Vocabulary) (Words, bool, error) {
	t, err := db.table(v)
	if err != nil {
		return nil, false, err
	}

	index, err := t.byLength()
	if err != nil {
		return nil, false, err
	}

	words, ok := index[n]
	db.observer.ObserveLookup(v, LookupLength, ok)
	return words, ok, nil
}

// AllByPrefixChar returns the words of v whose first character is c. Matching
// is exact; no case folding is applied.
func (db *DB) AllByPrefixChar(c rune, v Vocabulary) (Words, bool, error) {
	t, err := db.table(v)
	if err != nil {
		return nil, false, err
	}

	index, err := t.byPrefix()
	if err != nil {
		return nil, false, err
	}

	words, ok := index[c]
	db.observer.ObserveLookup(v, LookupPrefix, ok)
	return words, ok, nil
}

// Get returns a random word of v.
func (db *DB) Get(v Vocabulary) (string, error) {
	words, err := db.All(v)
	if err != nil {
		return "", err
	}
	return Random(words), nil
}

// GetByLength returns a random word of v that is n characters long.
func (db *DB) GetByLength(n int, v Vocabulary) (string, bool, error) {
	words, ok, err := db.AllByLength(n, v)
	if err != nil || !ok {
		return "", false, err
	}
	return Random(words), true, nil
}

// GetByPrefixChar returns a random word of v starting with c.
func (db *DB) GetByPrefixChar(c rune, v Vocabulary) (string, bool, error) {
	words, ok, err := db.AllByPrefixChar(c, v)
	if err != nil || !ok {
		return "", false, err
	}
	return Random(words), true, nil
}

// Warm builds the word table and both indices of the given vocabularies (all
// of them when none are given) in parallel. Builds already in progress or done
// are shared, not repeated. A build cannot be interrupted once started; ctx
// only stops vocabularies that have not started yet.
func (db *DB) Warm(ctx context.Context, vocabularies ...Vocabulary) error {
	if len(vocabularies) == 0 {
		vocabularies = db.names
	}

	tables := make([]*table, 0, len(vocabularies))
	for _, v := range vocabularies {
		t, err := db.table(v)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tables {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := t.byLength(); err != nil {
				return err
			}
			_, err := t.byPrefix()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	db.log.Info("vocabularies warmed", "count", len(vocabularies))
	return nil
}

// Stats summarises one vocabulary.
type Stats struct {
	Vocabulary    Vocabulary `json:"vocabulary"`
	Codec         string     `json:"codec"`
	Words         int        `json:"words"`
	Lengths       []int      `json:"lengths"`
	StartingChars int        `json:"startingChars"`
	MinLength     int        `json:"minLength"`
	MaxLength     int        `json:"maxLength"`
}

// Stats builds (if needed) and summarises the indices of v.
func (db *DB) Stats(v Vocabulary) (Stats, error) {
	t, err := db.table(v)
	if err != nil {
		return Stats{}, err
	}

	words, err := t.words()
	if err != nil {
		return Stats{}, err
	}
	byLength, err := t.byLength()
	if err != nil {
		return Stats{}, err
	}
	byPrefix, err := t.byPrefix()
	if err != nil {
		return Stats{}, err
	}

	lengths := make([]int, 0, len(byLength))
	for n := range byLength {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)

	return Stats{
		Vocabulary:    v,
		Codec:         t.codec.Name(),
		Words:         len(words),
		Lengths:       lengths,
		StartingChars: len(byPrefix),
		MinLength:     lengths[0],
		MaxLength:     lengths[len(lengths)-1],
	}, nil
}

// IsIntegrityError reports whether err means shipped data is broken.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}
