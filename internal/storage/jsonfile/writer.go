package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"diamond_hotels/internal/domain"
)

// Writer truncate-writes the hotel list to a single JSON file. Every run
// overwrites the previous output.
type Writer struct {
	path string
}

func New(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) WriteHotels(hotels []domain.Hotel) error {
	if hotels == nil {
		hotels = []domain.Hotel{} // empty feed writes [], not null
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// keep & < > literal in names; 4-space indent
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(hotels); err != nil {
		return fmt.Errorf("encode hotels: %w", err)
	}
	if err := os.WriteFile(w.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return nil
}
