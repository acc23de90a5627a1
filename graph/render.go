package graph

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/apsp/apsp"
)

const (
	renderHeader      = "Description\t\t\tFrom\tTo\tDistance   Path\n"
	renderRowIndent   = "\t\t\t\t"
	renderUnreachable = "--"
)

// RenderAll writes the full table: a header, then for every source its
// label followed by one row per other vertex. Before the first Recompute
// every pair renders as unreachable.
func (g *Graph) RenderAll(w io.Writer) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString(renderHeader)
	n := g.Size()
	for src := 1; src <= n; src++ {
		_, _ = bw.WriteString(g.labels[src-1].String())
		_ = bw.WriteByte('\n')
		for dest := 1; dest <= n; dest++ {
			if dest == src {
				continue
			}
			_, _ = bw.WriteString(renderRowIndent)
			g.writePair(bw, src, dest)
		}
	}

	return bw.Flush()
}

// RenderOne writes the route from src to dest: distance and numeric path
// on one line, then each label on the path on its own line. Out-of-range
// ids write nothing.
func (g *Graph) RenderOne(w io.Writer, src, dest int) error {
	if !g.inRange(src) || !g.inRange(dest) {
		return nil
	}
	bw := bufio.NewWriter(w)
	if g.writePair(bw, src, dest) {
		for _, v := range g.Path(src, dest) {
			_, _ = bw.WriteString(g.labels[v-1].String())
			_, _ = bw.WriteString("  \n")
		}
	}

	return bw.Flush()
}

// writePair writes "src\tdest\t" and either the unreachable marker or
// "dist\t   path". It reports whether a path was written.
func (g *Graph) writePair(bw *bufio.Writer, src, dest int) bool {
	_, _ = bw.WriteString(strconv.Itoa(src))
	_ = bw.WriteByte('\t')
	_, _ = bw.WriteString(strconv.Itoa(dest))
	_ = bw.WriteByte('\t')

	d, ok := g.Distance(src, dest)
	if !ok || d == apsp.Infinity || d < 0 {
		_, _ = bw.WriteString(renderUnreachable)
		_ = bw.WriteByte('\n')

		return false
	}
	_, _ = bw.WriteString(strconv.FormatInt(d, 10))
	_, _ = bw.WriteString("\t   ")
	for _, v := range g.Path(src, dest) {
		_, _ = bw.WriteString(strconv.Itoa(v))
		_, _ = bw.WriteString("  ")
	}
	_ = bw.WriteByte('\n')

	return true
}
