package description

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the syntax of a description file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("unsupported description file extension %q", filepath.Ext(path))
	}
}

// LoadFile loads and parses a description file from the given path.
// When the document has no file.source, the base name of path is used.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	var doc *Document

	switch format {
	case FormatHCL:
		doc, err = ParseHCL(data, path)
	default:
		doc, err = Parse(data)
	}

	if err != nil {
		return nil, err
	}

	if doc.File.Source == "" {
		doc.File.Source = filepath.Base(path)
	}

	return doc, nil
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description YAML: %w", err)
	}

	applyDefaults(&doc.MaterialProperty)

	return &doc, nil
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
