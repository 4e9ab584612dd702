package graphio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	yaml "go.yaml.in/yaml/v2"

	"github.com/katalvlaran/lvstep/core"
)

// DecodeYAML parses a YAML document. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: reading yaml: %w", err)
	}
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("graphio: decoding yaml: %w", err)
	}

	return &doc, nil
}

// DecodeTOML parses a TOML document. Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("graphio: decoding toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
	}

	return &doc, nil
}

// LoadFile opens path and decodes it according to its extension
// (.yaml, .yml or .toml).
func LoadFile(path string) (*Document, error) {
	var decode func(io.Reader) (*Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	case ".toml":
		decode = DecodeTOML
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	doc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// LoadGraph is LoadFile followed by Document.Graph.
func LoadGraph(path string) (*Document, *core.Graph, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, g, nil
}
