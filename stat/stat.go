package stat

import (
	"math"

	sent "github.com/revelaction/udclean/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`

	// Token lines of the valid sentences
	NumTokens             int         `json:"tokens"`
	TokensPerSentenceMean int         `json:"tokens_per_sentence"`
	TokensPerSentenceDis  map[int]int `json:"-"`
}

// SuccessRate returns the percentage of valid sentences rounded to one
// decimal, or 0 when no sentence was seen.
func (s Stats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	rate := float64(s.Valid) / float64(s.Total) * 100
	return math.Round(rate*10) / 10
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Add counts one sentence. Only valid sentences contribute to the token
// statistics.
func (h *Handler) Add(b sent.Block, valid bool) {
	h.stats.Total++
	if !valid {
		h.stats.Invalid++
		return
	}

	h.stats.Valid++
	h.stats.NumTokens += len(b.Lines)
	h.stats.TokensPerSentenceDis[len(b.Lines)]++
	h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.Valid
}
