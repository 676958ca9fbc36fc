package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvmatch/graph"
)

// ReadEdgeList parses whitespace separated "u v" lines.
func ReadEdgeList(r io.Reader) (*Document, error) {
	g := graph.NewGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			if _, err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case 2:
			if err := g.AddEdge(fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: want \"u v\", got %d fields", ErrSyntax, line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &Document{Graph: g}, nil
}
