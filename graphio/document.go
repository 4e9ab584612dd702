package graphio

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
)

var (
	// ErrUnknownField indicates a key the document format does not define.
	ErrUnknownField = errors.New("graphio: unknown field")

	// ErrUnsupportedFormat indicates a file extension LoadFile cannot decode.
	ErrUnsupportedFormat = errors.New("graphio: unsupported file format")

	// ErrEmptyEndpoint indicates an edge without a from or to vertex.
	ErrEmptyEndpoint = errors.New("graphio: edge endpoint is empty")
)

// Document is the decoded form of a graph file.
type Document struct {
	Directed *bool      `yaml:"directed" toml:"directed"`
	Source   string     `yaml:"source,omitempty" toml:"source,omitempty"`
	Vertices []string   `yaml:"vertices,omitempty" toml:"vertices,omitempty"`
	Edges    []EdgeSpec `yaml:"edges" toml:"edges"`
}

// EdgeSpec is one edge entry. Weight keeps whatever the decoder produced so
// that missing and non-numeric weights can be told apart.
type EdgeSpec struct {
	From   string      `yaml:"from" toml:"from"`
	To     string      `yaml:"to" toml:"to"`
	Weight interface{} `yaml:"weight" toml:"weight"`
}

// IsDirected reports the directed flag, defaulting to true.
func (d *Document) IsDirected() bool {
	return d.Directed == nil || *d.Directed
}

// Validate checks every edge and returns all problems at once.
func (d *Document) Validate() error {
	_, err := d.weights()

	return err
}

// Graph builds a weighted core.Graph from the document. Loops and parallel
// edges are allowed. Vertices are added first, then edge endpoints as
// they appear.
func (d *Document) Graph() (*core.Graph, error) {
	ws, err := d.weights()
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(
		core.WithDirected(d.IsDirected()),
		core.WithWeighted(),
		core.WithLoops(),
		core.WithMultiEdges(),
	)
	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, ws[i]); err != nil {
			return nil, fmt.Errorf("graphio: edges[%d] %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

func (d *Document) weights() ([]float64, error) {
	var result *multierror.Error
	ws := make([]float64, len(d.Edges))
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			result = multierror.Append(result, &dijkstra.MalformedEdgeError{
				EdgeID: edgeName(i), From: e.From, To: e.To, Err: ErrEmptyEndpoint,
			})
			continue
		}
		w, err := toFloat(e.Weight)
		if err != nil {
			result = multierror.Append(result, &dijkstra.MalformedEdgeError{
				EdgeID: edgeName(i), From: e.From, To: e.To, Weight: math.NaN(), Err: err,
			})
			continue
		}
		ws[i] = w
	}
	if result == nil {
		return ws, nil
	}
	if len(result.Errors) == 1 {
		return nil, result.Errors[0]
	}

	return nil, result.ErrorOrNil()
}

func edgeName(i int) string { return fmt.Sprintf("edges[%d]", i) }

// toFloat accepts the numeric types produced by the YAML and TOML decoders.
func toFloat(v interface{}) (float64, error) {
	switch w := v.(type) {
	case nil:
		return 0, dijkstra.ErrMissingWeight
	case float64:
		return w, nil
	case float32:
		return float64(w), nil
	case int:
		return float64(w), nil
	case int64:
		return float64(w), nil
	case uint64:
		return float64(w), nil
	default:
		return 0, fmt.Errorf("%w: %T %v", dijkstra.ErrNonNumericWeight, v, v)
	}
}
