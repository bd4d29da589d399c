package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported file formats for layouts and version manifests.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatXLSX = "xlsx"
)

// FormatOf returns the layout format implied by the extension of path, or
// an empty string when the extension is not recognized.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".xlsx":
		return FormatXLSX
	default:
		return ""
	}
}

// Load reads a layout file. The format is chosen by extension. The result
// is not validated; call Validate before rendering with it.
func Load(path string) (*Config, error) {
	format := FormatOf(path)
	if format == "" {
		return nil, fmt.Errorf("unsupported layout file extension: %s", filepath.Ext(path))
	}
	if format == FormatXLSX {
		return LoadXLSX(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Parse decodes a YAML, JSON or TOML layout.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config
	if err := decode(data, format, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(data []byte, format string, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatTOML:
		_, err := toml.Decode(string(data), v)
		return err
	default:
		return fmt.Errorf("unsupported layout format: %q", format)
	}
}

// Marshal encodes cfg as YAML, JSON or TOML.
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported layout format: %q", format)
	}
}
