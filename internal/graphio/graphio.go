// Package graphio loads graphs for the lvmatch command line.
//
// Three formats are understood, chosen by file extension:
//
//	.toml        [[vertex]] id = "a" / [[edge]] from = "a" to = "b",
//	             plus optional top-level sinks = [...] and sources = [...]
//	.dot, .gv    an undirected Graphviz graph
//	anything else an edge list: "u v" per line, a single token declares an
//	             isolated vertex, '#' starts a comment
//
// Vertices appear in order of first mention; adjacency follows edge order.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmatch/graph"
)

// Sentinel errors.
var (
	// ErrSyntax reports a malformed line or document.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrUnknownVertex reports a sink or source that names no vertex.
	ErrUnknownVertex = errors.New("graphio: unknown vertex")
)

// Document is a loaded graph plus the vertex sets a file may declare.
type Document struct {
	Graph   *graph.Graph
	Sinks   []string
	Sources []string
}

// Format identifies an input format.
type Format int

// Supported formats.
const (
	EdgeList Format = iota
	TOML
	DOT
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML
	case ".dot", ".gv":
		return DOT
	default:
		return EdgeList
	}
}

// Load reads the file at path in the format given by its extension.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Read(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Read parses r in format f.
func Read(r io.Reader, f Format) (*Document, error) {
	switch f {
	case TOML:
		return ReadTOML(r)
	case DOT:
		return ReadDOT(r)
	default:
		return ReadEdgeList(r)
	}
}

// Vertices resolves ids against d.Graph.
func (d *Document) Vertices(ids []string) ([]*graph.Vertex, error) {
	out := make([]*graph.Vertex, 0, len(ids))
	for _, id := range ids {
		v, ok := d.Graph.Vertex(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
		out = append(out, v)
	}

	return out, nil
}
