package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/graph"
)

var errBadMutation = errors.New("malformed edge mutation")

// mutation is one --insert or --remove flag value.
type mutation struct {
	insert    bool
	src, dest int
	weight    int64
}

func (m mutation) apply(g *graph.Graph) {
	if m.insert {
		g.InsertEdge(m.src, m.dest, m.weight)
		return
	}
	g.RemoveEdge(m.src, m.dest)
}

// parseMutation parses "s:d:w" for inserts and "s:d" for removals.
func parseMutation(s string, insert bool) (mutation, error) {
	want := 2
	if insert {
		want = 3
	}
	parts := strings.Split(s, ":")
	if len(parts) != want {
		return mutation{}, fmt.Errorf("%w: %q", errBadMutation, s)
	}

	m := mutation{insert: insert}
	var err error
	if m.src, err = strconv.Atoi(parts[0]); err != nil {
		return mutation{}, fmt.Errorf("%w: %q", errBadMutation, s)
	}
	if m.dest, err = strconv.Atoi(parts[1]); err != nil {
		return mutation{}, fmt.Errorf("%w: %q", errBadMutation, s)
	}
	if insert {
		if m.weight, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
			return mutation{}, fmt.Errorf("%w: %q", errBadMutation, s)
		}
	}

	return m, nil
}

func newEditCmd(a *app) *cobra.Command {
	var (
		inserts  []string
		removals []string
		from, to int
	)
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Apply edge insertions and removals, then print the new shortest paths",
		Long: `Apply edge mutations to every graph in FILE, recompute, and print the
whole table, or a single route when --from and --to are both given.

Insertions run before removals, each in flag order. Mutations naming a
vertex outside the graph are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			muts := make([]mutation, 0, len(inserts)+len(removals))
			for _, s := range inserts {
				m, err := parseMutation(s, true)
				if err != nil {
					return err
				}
				muts = append(muts, m)
			}
			for _, s := range removals {
				m, err := parseMutation(s, false)
				if err != nil {
					return err
				}
				muts = append(muts, m)
			}
			single := cmd.Flags().Changed("from") && cmd.Flags().Changed("to")

			prepare := func(g *graph.Graph) error {
				for _, m := range muts {
					m.apply(g)
				}
				a.log.Debug().Int("mutations", len(muts)).Int("edges", g.EdgeCount()).Msg("edits applied")

				return nil
			}

			return a.eachGraph(cmd, args[0], prepare, func(g *graph.Graph) error {
				if single {
					return a.writeOne(cmd, g, from, to)
				}

				return a.writeAll(cmd, g)
			})
		},
	}
	cmd.Flags().StringArrayVar(&inserts, "insert", nil, "insert or overwrite an edge, as SRC:DEST:WEIGHT")
	cmd.Flags().StringArrayVar(&removals, "remove", nil, "remove an edge, as SRC:DEST")
	cmd.Flags().IntVar(&from, "from", 0, "print only the route from this vertex (needs --to)")
	cmd.Flags().IntVar(&to, "to", 0, "print only the route to this vertex (needs --from)")

	return cmd
}
