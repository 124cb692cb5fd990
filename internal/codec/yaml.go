package codec

import (
	"fmt"
	"io"

	"graphpaint/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML scene export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Export exports a scene to YAML
func (c *YAMLCodec) Export(scene *domain.Scene, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(scene); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
