package graphio

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	yaml "go.yaml.in/yaml/v2"

	"github.com/katalvlaran/lvstep/core"
)

// FromGraph converts g into a Document with every vertex listed explicitly
// and edges in ID order. Per-edge direction overrides of mixed graphs are
// not represented; the graph-wide default is written.
func FromGraph(g *core.Graph, source string) *Document {
	directed := g.Directed()
	edges := g.Edges()
	doc := &Document{
		Directed: &directed,
		Source:   source,
		Vertices: g.Vertices(),
		Edges:    make([]EdgeSpec, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}

	return doc
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("graphio: encoding yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("graphio: writing yaml: %w", err)
	}

	return nil
}

// EncodeTOML writes doc as TOML.
func EncodeTOML(w io.Writer, doc *Document) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("graphio: encoding toml: %w", err)
	}

	return nil
}
