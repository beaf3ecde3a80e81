package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/udclean/stat"
	"github.com/revelaction/udclean/storage"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Summary(stat.Stats{Total: 2, Valid: 1, Invalid: 1, TokensPerSentenceMean: 2})

	want := "Processing complete:\n" +
		"  Total sentences: 2\n" +
		"  Valid sentences: 1\n" +
		"  Invalid sentences removed: 1\n" +
		"  Success rate: 50.0%\n" +
		"  Tokens per valid sentence: 2\n"
	if buf.String() != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestSummaryNoSentences(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Summary(stat.Stats{})

	if !strings.Contains(buf.String(), "Success rate: 0.0%") {
		t.Errorf("unexpected summary %q", buf.String())
	}
	if strings.Contains(buf.String(), "Tokens per valid sentence") {
		t.Errorf("token line printed without valid sentences: %q", buf.String())
	}
}

func TestRemoved(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.Removed(storage.Rejection{SentId: "s9", Line: 42, Errors: []string{"No root found (no token with head=0)", "Dependency cycle detected"}})

	want := "Removed sentence s9 (line ~42): No root found (no token with head=0); Dependency cycle detected\n"
	if buf.String() != want {
		t.Errorf("Removed() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	r.HasColor = true
	r.Removed(storage.Rejection{SentId: "s9"})
	if !strings.Contains(buf.String(), Red) {
		t.Errorf("expected colored output, got %q", buf.String())
	}
}
