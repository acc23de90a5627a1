package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/graph"
	"github.com/katalvlaran/apsp/internal/config"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table [FILE]",
		Short: "Print the shortest path between every pair of vertices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			return a.eachGraph(cmd, path, nil, func(g *graph.Graph) error {
				return a.writeAll(cmd, g)
			})
		},
	}
}

// writeAll writes the whole table in the configured format.
func (a *app) writeAll(cmd *cobra.Command, g *graph.Graph) error {
	if a.cfg.Format == config.FormatJSON {
		return g.WriteJSON(cmd.OutOrStdout())
	}

	return g.RenderAll(cmd.OutOrStdout())
}
