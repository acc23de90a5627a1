package main

import (
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/graph"
	"github.com/katalvlaran/apsp/internal/config"
)

// pathResult is the JSON form of a single route.
type pathResult struct {
	From     int      `json:"from"`
	To       int      `json:"to"`
	Distance *int64   `json:"distance"`
	Path     []int    `json:"path,omitempty"`
	Labels   []string `json:"labels,omitempty"`
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE SRC DEST",
		Short: "Print the shortest path from SRC to DEST in every graph of FILE",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseVertex(args[1])
			if err != nil {
				return err
			}
			dest, err := parseVertex(args[2])
			if err != nil {
				return err
			}

			return a.eachGraph(cmd, args[0], nil, func(g *graph.Graph) error {
				return a.writeOne(cmd, g, src, dest)
			})
		},
	}
}

func parseVertex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("vertex id %q: %w", s, err)
	}

	return v, nil
}

// writeOne writes the src→dest route in the configured format.
func (a *app) writeOne(cmd *cobra.Command, g *graph.Graph, src, dest int) error {
	if a.cfg.Format != config.FormatJSON {
		return g.RenderOne(cmd.OutOrStdout(), src, dest)
	}

	res := pathResult{From: src, To: dest}
	if d, ok := g.Distance(src, dest); ok && d != apsp.Infinity {
		res.Distance = &d
		res.Path = g.Path(src, dest)
		for _, v := range res.Path {
			l, _ := g.Label(v)
			res.Labels = append(res.Labels, l.String())
		}
	}

	return gojson.NewEncoder(cmd.OutOrStdout()).Encode(res)
}
