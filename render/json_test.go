package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/udclean/stat"
	"github.com/revelaction/udclean/storage"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(stat.Stats{}, nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got Summary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.Total != 0 || got.SuccessRate != 0 {
		t.Fatalf("unexpected summary %+v", got)
	}
	if len(got.Removed) != 0 {
		t.Fatalf("expected 0 removed, got %d", len(got.Removed))
	}
}

func TestJSONRendererRenderOneRemoved(t *testing.T) {
	stats := stat.Stats{Total: 2, Valid: 1, Invalid: 1, NumTokens: 2, TokensPerSentenceMean: 2}
	removed := []storage.Rejection{
		{SentId: "s2", Line: 7, Errors: []string{"Multiple roots found: tokens [1, 2] all have head=0"}},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(stats, removed); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got["total"] != 2.0 || got["valid"] != 1.0 || got["invalid"] != 1.0 {
		t.Errorf("unexpected counters %v", got)
	}
	if got["success_rate"] != 50.0 {
		t.Errorf("expected success_rate 50, got %v", got["success_rate"])
	}

	list, ok := got["removed"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected 1 removed sentence, got %v", got["removed"])
	}
	first := list[0].(map[string]any)
	if first["sent_id"] != "s2" {
		t.Errorf("expected sent_id 's2', got %v", first["sent_id"])
	}
}
