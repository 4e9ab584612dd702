// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID.
//   - Adds leaves via cfg.idFn for i = 1..n-1, spokes Center → leaf[i].
//     Directed graphs also get leaf[i] → Center.
//
// Complexity: O(n) vertices + O(n-1) edges (undirected) or O(2n-2) (directed).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

// CenterVertexID is the hub vertex of Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(methodStar, g, cfg, CenterVertexID, leaf, true); err != nil {
				return err
			}
		}

		return nil
	}
}
