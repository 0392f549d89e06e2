// Package classify decides which build action a single line of make output
// reports. Make output has no schema: compilers, linkers, and makefiles all
// write free-form text to the same stream, so classification is a chain of
// ordered heuristics, not a parse.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category identifies the build action a line reports.
type Category int

const (
	// Diagnostic is a warning or error message from a tool. It must be
	// shown verbatim.
	Diagnostic Category = iota
	// CompileOnly is a compiler invocation with -c (compile, no link).
	CompileOnly
	// SharedLibraryLink is a -fPIC invocation producing a shared library.
	SharedLibraryLink
	// CompileAndLink is a single invocation that compiles sources and
	// links them into an executable.
	CompileAndLink
	// LinkOnly is a linker invocation with -o and no source files.
	LinkOnly
	// Preparation is a makefile progress message preceding the real work.
	Preparation
	// Separator is a decorative row of asterisks between build stages.
	Separator
	// BuildDone is make's completion marker.
	BuildDone
	// Passthrough is any line no other rule claims. Shown verbatim.
	Passthrough
)

func (c Category) String() string {
	switch c {
	case Diagnostic:
		return "diagnostic"
	case CompileOnly:
		return "compile"
	case SharedLibraryLink:
		return "sharedlib"
	case CompileAndLink:
		return "compile+link"
	case LinkOnly:
		return "link"
	case Preparation:
		return "preparation"
	case Separator:
		return "separator"
	case BuildDone:
		return "done"
	default:
		return "passthrough"
	}
}

// Marker strings looked for in make output. The flag markers carry a
// leading space so that, say, "-fPIC" inside a path does not count as the
// flag itself.
const (
	ObjSuffix       = ".o"
	CppSuffix       = ".cc"
	AsmSuffix       = ".s"
	CompileFlag     = " -c"
	OutputFlag      = " -o"
	PICFlag         = " -fPIC"
	PrepMarker      = "Preparation: "
	SeparatorMarker = "***"
	DoneMarker      = "make: DONE "
)

// Rule pairs a predicate with the category it claims. Rules are evaluated
// in order and the first match wins; several predicates are plain substring
// checks that would also match lines belonging to a later category, so the
// order below is load-bearing. Reorder only with the whole chain in view.
type Rule struct {
	Name  string
	Match func(line string) bool
	Cat   Category
}

// Rules is the classification chain, highest priority first.
var Rules = []Rule{
	{"diagnostic", isDiagnostic, Diagnostic},
	{"compile", contains(CompileFlag), CompileOnly},
	{"sharedlib", contains(PICFlag), SharedLibraryLink},
	{"compile+link", func(l string) bool {
		return strings.Contains(l, OutputFlag) &&
			(strings.Contains(l, CppSuffix) || strings.Contains(l, AsmSuffix))
	}, CompileAndLink},
	{"link", contains(OutputFlag), LinkOnly},
	{"preparation", contains(PrepMarker), Preparation},
	{"separator", contains(SeparatorMarker), Separator},
	{"done", contains(DoneMarker), BuildDone},
}

func contains(marker string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, marker) }
}

// Classify returns the category of one non-empty line of make output.
// Callers must filter empty lines themselves (they are passthrough by
// definition and carry nothing to classify).
func Classify(line string) Category {
	for _, r := range Rules {
		if r.Match(line) {
			return r.Cat
		}
	}
	return Passthrough
}

// isDiagnostic reports whether a line is a tool warning or error message.
// It deliberately does not inspect message content (every tool formats its
// diagnostics differently); instead it checks what the line is NOT: lines
// that start a recognizable compiler or linker invocation, and make's own
// separator/progress/done lines, are not diagnostics. Indented lines always
// are, since tools indent continuation text and commands never start with
// whitespace.
func isDiagnostic(line string) bool {
	if leading, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(leading) {
		return true
	}
	if strings.HasPrefix(line, SeparatorMarker) ||
		strings.HasPrefix(line, DoneMarker) ||
		strings.Contains(line, PrepMarker) {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		// Nothing but whitespace; whatever it is, show it verbatim.
		return true
	}
	if isCompilerToken(fields[0]) || isLinkerToken(fields[0]) {
		return false
	}
	return true
}

// isCompilerToken recognizes compiler driver names: anything ending in
// "g++" or "gcc" ("g++", "gcc", cross prefixes like "arm-none-eabi-gcc"
// with the hyphens elsewhere, "clang++" via the "g++" suffix), plus
// versioned drivers like "g++-9" or "gcc-12".
func isCompilerToken(tok string) bool {
	if strings.HasSuffix(tok, "g++") || strings.HasSuffix(tok, "gcc") {
		return true
	}
	if strings.Count(tok, "-") == 1 {
		i := strings.IndexByte(tok, '-')
		name, version := tok[:i], tok[i+1:]
		if (strings.HasSuffix(name, "g++") || strings.HasSuffix(name, "gcc")) && isDigits(version) {
			return true
		}
	}
	return false
}

// isLinkerToken recognizes linker and archiver invocations by exact name.
func isLinkerToken(tok string) bool {
	switch tok {
	case "ld", "ar", "gold":
		return true
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
