package sentiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPScorer calls a sentiment service over HTTP. The service takes
// {"text": ...} and answers {"pos","neu","neg","compound"}, the shape a
// VADER-style endpoint exposes.
type HTTPScorer struct {
	url    string
	client *http.Client
}

func NewHTTPScorer(url string) *HTTPScorer {
	return &HTTPScorer{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type scoreRequest struct {
	Text string `json:"text"`
}

func (h *HTTPScorer) Score(text string) (Scores, error) {
	body, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return Scores{}, fmt.Errorf("encode request: %w", err)
	}

	resp, err := h.client.Post(h.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return Scores{}, fmt.Errorf("score request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Scores{}, fmt.Errorf("score request: unexpected status %d", resp.StatusCode)
	}

	var scores Scores
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return Scores{}, fmt.Errorf("decode response: %w", err)
	}
	if !scores.Valid() {
		return Scores{}, fmt.Errorf("scorer returned out-of-range values: compound=%v", scores.Compound)
	}
	return scores, nil
}
