package wordsdb

import "time"

// Stage identifies one lazily built structure of a vocabulary.
type Stage string

const (
	StageDecompress  Stage = "decompress"
	StageWordTable   Stage = "word_table"
	StageLengthIndex Stage = "length_index"
	StagePrefixIndex Stage = "prefix_index"
)

// Lookup identifies a query kind.
type Lookup string

const (
	LookupAll    Lookup = "all"
	LookupLength Lookup = "length"
	LookupPrefix Lookup = "prefix"
)

// Observer receives build timings and lookup outcomes. Implementations must be
// safe for concurrent use.
type Observer interface {
	// ObserveBuild is called once per vocabulary and stage.
	ObserveBuild(v Vocabulary, stage Stage, took time.Duration, err error)
	// ObserveLookup is called for every successful query.
	ObserveLookup(v Vocabulary, lookup Lookup, found bool)
}

type nopObserver struct{}

func (nopObserver) ObserveBuild(Vocabulary, Stage, time.Duration, error) {}
func (nopObserver) ObserveLookup(Vocabulary, Lookup, bool)               {}
