package graphio

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmatch/graph"
)

type tomlFile struct {
	Sinks   []string `toml:"sinks"`
	Sources []string `toml:"sources"`
	Vertex  []struct {
		ID string `toml:"id"`
	} `toml:"vertex"`
	Edge []struct {
		From string `toml:"from"`
		To   string `toml:"to"`
	} `toml:"edge"`
}

// ReadTOML parses a TOML graph document. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*Document, error) {
	var file tomlFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrSyntax, strings.Join(keys, ", "))
	}

	g := graph.NewGraph(graph.WithCapacity(len(file.Vertex)))
	for i, v := range file.Vertex {
		if _, err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("vertex #%d: %w", i+1, err)
		}
	}
	for i, e := range file.Edge {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i+1, err)
		}
	}

	doc := &Document{Graph: g, Sinks: file.Sinks, Sources: file.Sources}
	if _, err := doc.Vertices(file.Sinks); err != nil {
		return nil, fmt.Errorf("sinks: %w", err)
	}
	if _, err := doc.Vertices(file.Sources); err != nil {
		return nil, fmt.Errorf("sources: %w", err)
	}

	return doc, nil
}
