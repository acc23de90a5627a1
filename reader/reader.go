package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Reader yields graphs from a text stream, one per Next call.
type Reader struct {
	sc   *bufio.Scanner
	opts Options
	line int  // number of the last line read
	done bool // stream exhausted or abandoned after malformed input
}

// New returns a Reader over r.
func New(r io.Reader, opts ...Option) *Reader {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Reader{sc: sc, opts: cfg}
}

// ReadAll parses every graph in r.
func ReadAll(r io.Reader, opts ...Option) ([]*Input, error) {
	rd := New(r, opts...)
	var out []*Input
	for {
		in, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, in)
	}
}

// Line returns the number of the last line consumed.
func (r *Reader) Line() int { return r.line }

// Next parses the next graph. It returns io.EOF when no graph is left.
func (r *Reader) Next() (*Input, error) {
	if r.done {
		return nil, io.EOF
	}

	// 1) Vertex count: first non-blank line.
	text, ok := r.nextNonBlank()
	if !ok {
		return nil, r.finish(io.EOF)
	}
	fields := strings.Fields(text)
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		if r.opts.Strict {
			return nil, r.finish(r.malformed("vertex count %q is not an integer", fields[0]))
		}
		return nil, r.finish(io.EOF)
	}
	if n < 1 || n > r.opts.MaxVertices {
		return nil, r.finish(fmt.Errorf("%w: line %d: %d not in [1,%d]", ErrVertexCount, r.line, n, r.opts.MaxVertices))
	}

	// 2) Labels: the next n lines verbatim.
	in := &Input{Labels: make([]string, 0, n)}
	for len(in.Labels) < n {
		text, ok = r.nextLine()
		if !ok {
			if r.opts.Strict {
				return nil, r.finish(r.malformed("expected %d labels, got %d", n, len(in.Labels)))
			}
			for len(in.Labels) < n {
				in.Labels = append(in.Labels, "")
			}
			r.done = true

			return in, nil
		}
		in.Labels = append(in.Labels, text)
	}

	// 3) Edges until a 0 source or end of input.
	for {
		text, ok = r.nextNonBlank()
		if !ok {
			r.done = true
			return in, nil
		}
		e, stop, perr := r.parseEdge(text)
		if perr != nil {
			if r.opts.Strict {
				return nil, r.finish(perr)
			}
			r.done = true

			return in, nil
		}
		if stop {
			return in, nil
		}
		in.Edges = append(in.Edges, e)
	}
}

// parseEdge parses "src dest weight". stop is true for the terminator.
func (r *Reader) parseEdge(text string) (e Edge, stop bool, err error) {
	f := strings.Fields(text)
	src, err := strconv.Atoi(f[0])
	if err != nil {
		return e, false, r.malformed("edge source %q is not an integer", f[0])
	}
	if src == 0 {
		return e, true, nil
	}
	if len(f) < 3 {
		return e, false, r.malformed("edge needs 3 fields, got %d", len(f))
	}
	if len(f) > 3 && r.opts.Strict {
		return e, false, r.malformed("edge has %d fields, want 3", len(f))
	}
	dest, err := strconv.Atoi(f[1])
	if err != nil {
		return e, false, r.malformed("edge destination %q is not an integer", f[1])
	}
	w, err := strconv.ParseInt(f[2], 10, 64)
	if err != nil {
		return e, false, r.malformed("edge weight %q is not an integer", f[2])
	}

	return Edge{Src: src, Dest: dest, Weight: w}, false, nil
}

// nextLine returns the next raw line without its trailing '\r'.
func (r *Reader) nextLine() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	r.line++

	return strings.TrimRight(r.sc.Text(), "\r"), true
}

// nextNonBlank returns the next line holding at least one field.
func (r *Reader) nextNonBlank() (string, bool) {
	for {
		text, ok := r.nextLine()
		if !ok {
			return "", false
		}
		if strings.TrimSpace(text) != "" {
			return text, true
		}
	}
}

func (r *Reader) malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, r.line, fmt.Sprintf(format, args...))
}

// finish marks the reader exhausted and surfaces scanner errors first.
func (r *Reader) finish(err error) error {
	r.done = true
	if serr := r.sc.Err(); serr != nil {
		return fmt.Errorf("reader: line %d: %w", r.line, serr)
	}

	return err
}
