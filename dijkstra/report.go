package dijkstra

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// InfinityToken is how an unreachable distance is rendered in reports.
const InfinityToken = "Infinity"

// Result is a read-only view of a run's distances.
//
// Order is the vertex total order; Prev is nil unless predecessors were recorded.
type Result struct {
	Source string
	Order  []string
	Dist   DistanceMap
	Prev   map[string]string
}

// Entry is one (vertex, distance) pair of a Result.
type Entry struct {
	Vertex   string
	Distance float64
}

// String renders the entry as "vertex = A, distance = 3".
func (e Entry) String() string {
	return fmt.Sprintf("vertex = %s, distance = %s", e.Vertex, FormatDistance(e.Distance))
}

// FormatDistance renders d in shortest form, with +Inf as InfinityToken.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return InfinityToken
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

// Entries returns every vertex with its distance, in vertex order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, 0, len(r.Order))
	for _, v := range r.Order {
		d, ok := r.Dist[v]
		if !ok {
			d = math.Inf(1)
		}
		out = append(out, Entry{Vertex: v, Distance: d})
	}

	return out
}

// String returns the report, one line per vertex.
func (r *Result) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)

	return sb.String()
}

// WriteTo writes the report to w, one line per vertex.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range r.Entries() {
		n, err := io.WriteString(w, e.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// PathTo returns the vertices of the recorded shortest path from Source to id,
// inclusive. Requires a run built with WithReturnPath.
func (r *Result) PathTo(id string) ([]string, error) {
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	d, ok := r.Dist[id]
	if !ok {
		return nil, &InvalidInputError{Op: "PathTo", Vertex: id, Err: ErrVertexNotFound}
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, id)
	}

	path := []string{id}
	for cur := id; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Order) {
			// Only possible for partial runs or negative cycles.
			return nil, fmt.Errorf("%w: %q", ErrUnreachable, id)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
