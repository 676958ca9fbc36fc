package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/internal/graphio"
	"github.com/katalvlaran/lvmatch/matching"
)

type matchOpts struct {
	pairs        bool
	noGreedy     bool
	certifyLimit int
}

func (c *CLI) matchCommand() *cobra.Command {
	var opts matchOpts

	cmd := &cobra.Command{
		Use:   "match <graph-file>",
		Short: "Compute a maximum-cardinality matching",
		Long: `Compute a maximum-cardinality matching of an undirected graph.

The file format follows the extension: .toml, .dot/.gv, otherwise an edge list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mopts := c.config.MatcherOptions()
			if opts.noGreedy {
				mopts = append(mopts, matching.WithGreedy(false))
			}
			if cmd.Flags().Changed("certify-limit") {
				mopts = append(mopts, matching.WithCertifyLimit(opts.certifyLimit))
			}
			return c.runMatch(cmd, args[0], opts.pairs, mopts)
		},
	}

	cmd.Flags().BoolVar(&opts.pairs, "pairs", false, "print the matched pairs")
	cmd.Flags().BoolVar(&opts.noGreedy, "no-greedy", false, "skip the greedy initial matching")
	cmd.Flags().IntVar(&opts.certifyLimit, "certify-limit", matching.DefaultCertifyLimit, "certify results for graphs up to this many vertices")

	return cmd
}

func (c *CLI) runMatch(cmd *cobra.Command, path string, pairs bool, mopts []matching.Option) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, err := graphio.Load(path)
	if err != nil {
		return err
	}
	g := doc.Graph
	logger.Debug("graph loaded", "path", path, "vertices", g.Order(), "edges", g.Size())
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := matching.Match(g, append(mopts, matching.WithLogger(debugLogger(logger)))...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Matched %d pairs", res.Cardinality))

	out := cmd.OutOrStdout()
	printSummary(out, "matching", []field{
		{"vertices", g.Order()},
		{"edges", g.Size()},
		{"cardinality", res.Cardinality},
		{"greedy", res.Stats.GreedyMatched},
		{"phases", res.Stats.Phases},
		{"augmentations", res.Stats.Augmentations},
		{"blossoms", res.Stats.Blossoms},
		{"certified", res.Stats.Certified},
	})

	if pairs {
		rows := make([]string, 0, res.Cardinality)
		for _, p := range res.Pairs() {
			rows = append(rows, g.At(p[0]).ID()+" "+g.At(p[1]).ID())
		}
		printRows(out, "# pairs", rows)
	}

	return nil
}
