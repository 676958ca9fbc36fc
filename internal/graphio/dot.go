package graphio

import (
	"fmt"
	"io"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvmatch/graph"
)

// dotNode keeps the DOT name of a node.
type dotNode struct {
	id   int64
	name string
}

func (n *dotNode) ID() int64          { return n.id }
func (n *dotNode) SetDOTID(id string) { n.name = id }

// dotGraph is the unmarshal target. Self-loops are recorded instead of
// letting simple.UndirectedGraph panic.
type dotGraph struct {
	*simple.UndirectedGraph
	loop string
}

func (g *dotGraph) NewNode() gonumgraph.Node {
	return &dotNode{id: g.UndirectedGraph.NewNode().ID()}
}

func (g *dotGraph) SetEdge(e gonumgraph.Edge) {
	if e.From().ID() == e.To().ID() {
		if g.loop == "" {
			g.loop = e.From().(*dotNode).name
		}
		return
	}
	g.UndirectedGraph.SetEdge(e)
}

// ReadDOT parses an undirected Graphviz document. Node names become vertex
// IDs; repeated edges collapse into one.
func ReadDOT(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dst := &dotGraph{UndirectedGraph: simple.NewUndirectedGraph()}
	if err := dot.Unmarshal(data, dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if dst.loop != "" {
		return nil, fmt.Errorf("node %q: %w", dst.loop, graph.ErrLoopNotAllowed)
	}

	g, err := graph.FromUndirectedFunc(dst, func(n gonumgraph.Node) string {
		return n.(*dotNode).name
	})
	if err != nil {
		return nil, err
	}

	return &Document{Graph: g}, nil
}
