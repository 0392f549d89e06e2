// Package stream drives the line pipeline: read one line of make output,
// classify it, render it, emit it. Lines are handled strictly in arrival
// order, one at a time, and nothing is carried over between lines.
package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dkoosis/makefmt/pkg/classify"
	"github.com/dkoosis/makefmt/pkg/render"
)

const (
	// initialBufSize is the scanner's starting buffer.
	initialBufSize = 64 * 1024
	// maxLineLength bounds a single output line. Build logs can carry very
	// long command lines, but anything past this is not a line we can
	// meaningfully rewrite.
	maxLineLength = 1024 * 1024
)

// Pipeline rewrites a stream of make output lines. Enabled is fixed at
// construction: when false every line passes through verbatim and the
// classifier never runs.
type Pipeline struct {
	renderer *render.Renderer
	out      io.Writer
	enabled  bool
}

// New creates a Pipeline writing rewritten lines to out.
func New(renderer *render.Renderer, out io.Writer, enabled bool) *Pipeline {
	return &Pipeline{renderer: renderer, out: out, enabled: enabled}
}

// Run consumes r line by line until EOF, emitting each visible rendering
// immediately. A read or decode failure is returned to the caller; there is
// no value in continuing to rewrite output after the stream broke.
func (p *Pipeline) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineLength)
	for scanner.Scan() {
		p.Line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading build output: %w", err)
	}
	return nil
}

// Line processes a single raw line. Trailing whitespace is stripped first;
// an empty result, or a disabled pipeline, passes the line through
// unmodified.
func (p *Pipeline) Line(raw string) {
	line := strings.TrimRight(raw, " \t\r\n")
	if line == "" || !p.enabled {
		_, _ = fmt.Fprintln(p.out, line)
		return
	}
	res := p.renderer.Render(classify.Classify(line), line)
	if res.Visible {
		_, _ = fmt.Fprintln(p.out, res.Text)
	}
}
