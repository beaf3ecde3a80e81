package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/udclean/stat"
	"github.com/revelaction/udclean/storage"
)

// Summary is the JSON form of a cleaning pass.
type Summary struct {
	stat.Stats
	SuccessRate float64             `json:"success_rate"`
	Removed     []storage.Rejection `json:"removed,omitempty"`
}

// JSONRenderer writes cleaning results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the stats and the removed sentences as one JSON object.
func (r *JSONRenderer) Render(s stat.Stats, removed []storage.Rejection) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(Summary{Stats: s, SuccessRate: s.SuccessRate(), Removed: removed})
}
