// Package api serves the word database over HTTP.
package api

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"random-word/internal/metrics"
	"random-word/internal/wordsdb"
)

// DefaultMaxCount caps the count parameter when the server is built without
// an explicit limit.
const DefaultMaxCount = 100

// WordList is the response of ListWords.
type WordList struct {
	Vocabulary string   `json:"vocabulary"`
	Count      int      `json:"count"`
	Words      []string `json:"words"`
}

// RandomWordsResponse is the response of RandomWords.
type RandomWordsResponse struct {
	Vocabulary string   `json:"vocabulary"`
	Words      []string `json:"words"`
}

// VocabularyList is the response of ListVocabularies.
type VocabularyList struct {
	Vocabularies []wordsdb.Stats `json:"vocabularies"`
}

// Server implements ServerInterface.
type Server struct {
	db       *wordsdb.DB
	metrics  *metrics.Metrics
	maxCount int
}

// NewServer creates a new API server. m may be nil; maxCount <= 0 uses
// DefaultMaxCount.
func NewServer(db *wordsdb.DB, m *metrics.Metrics, maxCount int) ServerInterface {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	return &Server{
		db:       db,
		metrics:  m,
		maxCount: maxCount,
	}
}

// ListVocabularies implements ServerInterface.
func (s *Server) ListVocabularies(w http.ResponseWriter, r *http.Request) {
	names := s.db.Vocabularies()
	resp := VocabularyList{Vocabularies: make([]wordsdb.Stats, 0, len(names))}

	for _, v := range names {
		stats, err := s.db.Stats(v)
		if err != nil {
			writeDBError(w, r, err)
			return
		}
		resp.Vocabularies = append(resp.Vocabularies, stats)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListWords implements ServerInterface.
func (s *Server) ListWords(w http.ResponseWriter, r *http.Request, vocabulary string, params ListWordsParams) {
	f, err := newFilter(params.Length, params.StartsWith)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	v := wordsdb.Vocabulary(vocabulary)
	words, ok, err := s.selectWords(v, f)
	if err != nil {
		writeDBError(w, r, err)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, codeNotFound, "no words match "+f.String())
		return
	}

	s.served(v, len(words))
	writeJSON(w, http.StatusOK, WordList{
		Vocabulary: vocabulary,
		Count:      len(words),
		Words:      words,
	})
}

// RandomWords implements ServerInterface.
func (s *Server) RandomWords(w http.ResponseWriter, r *http.Request, vocabulary string, params RandomWordsParams) {
	f, err := newFilter(params.Length, params.StartsWith)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	count := 1
	if params.Count != nil {
		count = *params.Count
	}
	if count < 1 || count > s.maxCount {
		writeError(w, r, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("count must be between 1 and %d", s.maxCount))
		return
	}

	v := wordsdb.Vocabulary(vocabulary)
	words, ok, err := s.selectWords(v, f)
	if err != nil {
		writeDBError(w, r, err)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, codeNotFound, "no words match "+f.String())
		return
	}

	picked := make([]string, count)
	for i := range picked {
		picked[i] = wordsdb.Random(words)
	}

	s.served(v, count)
	writeJSON(w, http.StatusOK, RandomWordsResponse{
		Vocabulary: vocabulary,
		Words:      picked,
	})
}

// Healthz implements ServerInterface.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) served(v wordsdb.Vocabulary, n int) {
	if s.metrics != nil {
		s.metrics.WordsServed(v, n)
	}
}

// filter is a validated combination of the optional query parameters.
type filter struct {
	length    int
	hasLength bool
	char      rune
	hasChar   bool
}

func newFilter(length *int, startsWith *string) (filter, error) {
	var f filter
	if length != nil {
		if *length < 1 {
			return filter{}, fmt.Errorf("length must be positive, got %d", *length)
		}
		f.length, f.hasLength = *length, true
	}
	if startsWith != nil {
		s := *startsWith
		if utf8.RuneCountInString(s) != 1 || !utf8.ValidString(s) {
			return filter{}, fmt.Errorf("startsWith must be a single character, got %q", s)
		}
		f.char, _ = utf8.DecodeRuneInString(s)
		f.hasChar = true
	}
	return f, nil
}

func (f filter) String() string {
	switch {
	case f.hasLength && f.hasChar:
		return fmt.Sprintf("length %d starting with %q", f.length, f.char)
	case f.hasLength:
		return fmt.Sprintf("length %d", f.length)
	case f.hasChar:
		return fmt.Sprintf("starting with %q", f.char)
	default:
		return "filter"
	}
}

// selectWords resolves f against the indices of v. With both filters set the
// smaller bucket is scanned for words matching the other condition.
func (s *Server) selectWords(v wordsdb.Vocabulary, f filter) (wordsdb.Words, bool, error) {
	switch {
	case f.hasLength && f.hasChar:
		byLength, ok, err := s.db.AllByLength(f.length, v)
		if err != nil || !ok {
			return nil, false, err
		}
		byChar, ok, err := s.db.AllByPrefixChar(f.char, v)
		if err != nil || !ok {
			return nil, false, err
		}
		words := intersect(byLength, byChar, f)
		return words, len(words) > 0, nil
	case f.hasLength:
		return s.db.AllByLength(f.length, v)
	case f.hasChar:
		return s.db.AllByPrefixChar(f.char, v)
	default:
		words, err := s.db.All(v)
		return words, err == nil, err
	}
}

func intersect(byLength, byChar wordsdb.Words, f filter) wordsdb.Words {
	var out wordsdb.Words
	if len(byLength) <= len(byChar) {
		for _, w := range byLength {
			if c, _ := utf8.DecodeRuneInString(w); c == f.char {
				out = append(out, w)
			}
		}
		return out
	}
	for _, w := range byChar {
		if utf8.RuneCountInString(w) == f.length {
			out = append(out, w)
		}
	}
	return out
}
