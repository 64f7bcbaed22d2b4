package sentiment

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoresValid(t *testing.T) {
	assert.True(t, Scores{Positive: 0.5, Neutral: 0.3, Negative: 0.2, Compound: 0.4}.Valid())
	assert.True(t, Scores{Compound: 1}.Valid())
	assert.True(t, Scores{Compound: -1}.Valid())
	assert.False(t, Scores{Compound: 1.5}.Valid())
	assert.False(t, Scores{Compound: math.NaN()}.Valid())
	assert.False(t, Scores{Positive: math.Inf(1)}.Valid())
}

func TestScorerFunc(t *testing.T) {
	f := ScorerFunc(func(text string) (Scores, error) {
		return Scores{Compound: 0.25}, nil
	})
	got, err := f.Score("anything")
	require.NoError(t, err)
	assert.Equal(t, 0.25, got.Compound)
}

func TestHTTPScorer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lovely day", req.Text)
		json.NewEncoder(w).Encode(Scores{Positive: 0.7, Neutral: 0.3, Compound: 0.6})
	}))
	defer srv.Close()

	got, err := NewHTTPScorer(srv.URL).Score("lovely day")
	require.NoError(t, err)
	assert.Equal(t, 0.6, got.Compound)
	assert.Equal(t, 0.7, got.Positive)
}

func TestHTTPScorerNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPScorer(srv.URL).Score("anything")
	assert.Error(t, err)
}

func TestHTTPScorerRejectsOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Scores{Compound: 3.0})
	}))
	defer srv.Close()

	_, err := NewHTTPScorer(srv.URL).Score("anything")
	assert.Error(t, err)
}
