// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_petersen.go - the Petersen graph.
//
// Layout:
//   • Outer 5-cycle on vertices 0..4, inner pentagram on 5..9, spokes i-i+5.
//   • Edges emitted as: outer cycle, spokes, pentagram.

package builder

import "github.com/katalvlaran/lvmatch/graph"

const (
	methodPetersen   = "Petersen"
	petersenVertices = 10
	petersenRing     = 5
)

// Petersen returns a Constructor for the 3-regular Petersen graph
// (10 vertices, 15 edges, perfect matchings of size 5).
func Petersen() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		ids, err := addVertices(g, cfg, methodPetersen, petersenVertices)
		if err != nil {
			return err
		}
		for i := 0; i < petersenRing; i++ {
			if err = addEdge(g, methodPetersen, ids[i], ids[(i+1)%petersenRing]); err != nil {
				return err
			}
		}
		for i := 0; i < petersenRing; i++ {
			if err = addEdge(g, methodPetersen, ids[i], ids[i+petersenRing]); err != nil {
				return err
			}
		}
		for i := 0; i < petersenRing; i++ {
			u := ids[petersenRing+i]
			v := ids[petersenRing+(i+2)%petersenRing]
			if err = addEdge(g, methodPetersen, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
