package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"graphpaint/internal/domain"
)

// JSONCodec handles JSON scene export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Export exports a scene to JSON
func (c *JSONCodec) Export(scene *domain.Scene, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(scene); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
