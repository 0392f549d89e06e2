// Package render turns a classified line of make output into the text that
// should reach the terminal, if any.
package render

import (
	"path/filepath"
	"strings"

	"github.com/dkoosis/makefmt/pkg/classify"
)

// Result is the rendering of one line: the text to emit and whether to
// emit it at all. When Visible is false, Text is empty.
type Result struct {
	Text    string
	Visible bool
}

// Renderer rewrites classified lines using a theme's prefix styling.
// It is stateless apart from the theme and safe to reuse across lines.
type Renderer struct {
	theme Theme
}

// New creates a Renderer with the given theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render produces the output for one line of the given category.
// It never fails: malformed lines degrade to an "a.out" guess rather than
// an error, since a wrong guess on a line make itself produced is harmless
// and there is nothing sensible to do instead.
func (r *Renderer) Render(cat classify.Category, line string) Result {
	switch cat {
	case classify.Diagnostic, classify.Passthrough:
		return Result{Text: line, Visible: true}
	case classify.Preparation, classify.Separator, classify.BuildDone:
		return Result{}
	case classify.CompileOnly:
		return r.renderCompile(line)
	case classify.SharedLibraryLink:
		return r.renderTarget(r.theme.Library.Render(LabelLibrary), line)
	case classify.CompileAndLink:
		return r.renderTarget(r.theme.CompileLink.Render(LabelCompileLink), line)
	case classify.LinkOnly:
		return r.renderTarget(r.theme.Link.Render(LabelLink), line)
	}
	return Result{Text: line, Visible: true}
}

// renderCompile summarizes a compile-only invocation. With an explicit -o
// the object file is named outright; otherwise the object names are derived
// from the source files on the line.
func (r *Renderer) renderCompile(line string) Result {
	prefix := r.theme.Compile.Render(LabelCompile)
	fields := strings.Fields(line)
	if i := tokenIndex(fields, strings.TrimSpace(classify.OutputFlag)); i >= 0 && i+1 < len(fields) {
		return Result{Text: prefix + " => " + fields[i+1], Visible: true}
	}
	var names []string
	for _, f := range fields {
		if strings.HasSuffix(f, classify.CppSuffix) {
			names = append(names, objName(f, classify.CppSuffix))
		}
	}
	for _, f := range fields {
		if strings.HasSuffix(f, classify.AsmSuffix) {
			names = append(names, objName(f, classify.AsmSuffix))
		}
	}
	return Result{Text: prefix + " => " + strings.Join(names, " "), Visible: true}
}

// renderTarget summarizes a link-style invocation by naming the -o target.
// A truncated line with nothing after -o falls back to the linker's own
// default output name.
func (r *Renderer) renderTarget(prefix, line string) Result {
	fields := strings.Fields(line)
	i := tokenIndex(fields, strings.TrimSpace(classify.OutputFlag))
	if i < 0 || i+1 >= len(fields) {
		return Result{Text: prefix + " => a.out", Visible: true}
	}
	return Result{Text: prefix + " => " + filepath.Clean(fields[i+1]), Visible: true}
}

// objName maps a source file to its object file name, directory stripped.
func objName(src, suffix string) string {
	return filepath.Base(strings.TrimSuffix(src, suffix) + classify.ObjSuffix)
}

// tokenIndex returns the index of the first field equal to tok, or -1.
func tokenIndex(fields []string, tok string) int {
	for i, f := range fields {
		if f == tok {
			return i
		}
	}
	return -1
}
