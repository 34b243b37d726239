package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"random-word/internal/wordsdb"
)

var _ wordsdb.Observer = (*Metrics)(nil)

func TestObserveBuild(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveBuild("simple", wordsdb.StageDecompress, time.Millisecond, nil)
	m.ObserveBuild("broken", wordsdb.StageDecompress, time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildsTotal.WithLabelValues("simple", "decompress", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildsTotal.WithLabelValues("broken", "decompress", "error")))
}

func TestObserveLookup(t *testing.T) {
	m := New(nil)

	m.ObserveLookup("simple", wordsdb.LookupLength, true)
	m.ObserveLookup("simple", wordsdb.LookupLength, true)
	m.ObserveLookup("simple", wordsdb.LookupLength, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("simple", "length", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("simple", "length", "absent")))
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.WordsServed("nerd", 3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `words_served_total{vocabulary="nerd"} 3`)
}
