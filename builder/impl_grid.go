// SPDX-License-Identifier: MIT
// Package: lvstep/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order), not cfg.idFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom if present. Directed graphs also
//     get the reverse arc with the same weight.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvstep/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
