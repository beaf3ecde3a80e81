package stat

import (
	"testing"

	sent "github.com/revelaction/udclean/sentence"
)

func TestHandlerAdd(t *testing.T) {
	hdl := NewHandler()
	hdl.Add(sent.Block{Lines: []string{"a", "b"}}, true)
	hdl.Add(sent.Block{Lines: []string{"a", "b", "c", "d"}}, true)
	hdl.Add(sent.Block{Lines: []string{"a"}}, false)

	stats := hdl.Get()
	if stats.Total != 3 || stats.Valid != 2 || stats.Invalid != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.Total != stats.Valid+stats.Invalid {
		t.Errorf("total %d != valid %d + invalid %d", stats.Total, stats.Valid, stats.Invalid)
	}
	if stats.NumTokens != 6 {
		t.Errorf("NumTokens = %d, want 6", stats.NumTokens)
	}
	if stats.TokensPerSentenceMean != 3 {
		t.Errorf("TokensPerSentenceMean = %d, want 3", stats.TokensPerSentenceMean)
	}
	if stats.TokensPerSentenceDis[2] != 1 || stats.TokensPerSentenceDis[4] != 1 {
		t.Errorf("unexpected distribution %v", stats.TokensPerSentenceDis)
	}
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{"empty", Stats{}, 0},
		{"half", Stats{Total: 2, Valid: 1, Invalid: 1}, 50.0},
		{"rounded", Stats{Total: 3, Valid: 2, Invalid: 1}, 66.7},
		{"all", Stats{Total: 7, Valid: 7}, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.SuccessRate(); got != tt.want {
				t.Errorf("SuccessRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
