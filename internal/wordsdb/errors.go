package wordsdb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVocabulary is returned for a vocabulary the database was not
	// opened with.
	ErrUnknownVocabulary = errors.New("unknown vocabulary")
	// ErrCorruptPayload means the embedded payload could not be read or
	// decompressed.
	ErrCorruptPayload = errors.New("corrupt vocabulary payload")
	// ErrInvalidUTF8 means the decompressed payload is not UTF-8 text.
	ErrInvalidUTF8 = errors.New("vocabulary payload is not valid UTF-8")
	// ErrEmptyVocabulary means the payload decoded to zero words.
	ErrEmptyVocabulary = errors.New("vocabulary has no words")
	// ErrNoPayloads is returned by Open when the source holds no payloads.
	ErrNoPayloads = errors.New("no vocabulary payloads found")
)

// IntegrityError reports broken shipped data for one vocabulary. It is never
// caused by caller input, and it is cached: every later query for the same
// vocabulary fails with the same error.
type IntegrityError struct {
	Vocabulary Vocabulary
	Stage      Stage
	Err        error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("vocabulary %q: %s: %v", e.Vocabulary, e.Stage, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }
