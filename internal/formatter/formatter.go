// Package formatter tidies generated TypeScript line by line. It never
// parses the source.
package formatter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/errors"
)

// generated code indents in two-space units
const sourceIndent = 2

// Patterns applied to single lines of generated code
var (
	importEndRegex  = regexp.MustCompile(`(^import\s+|\bfrom\s+)(["'])([^"']*)["']`)
	semicolonRegex  = regexp.MustCompile(`^(?:(?:import|export|\}).*\bfrom\s+|import\s+)["'][^"']*["'](?:\s+(?:with|assert)\s*\{[^}]*\})?$`)
	sideEffectRegex = regexp.MustCompile(`^import\s+["']`)
)

// Formatter post-processes generated code according to FormattingConfig
type Formatter struct {
	config config.FormattingConfig
}

// NewFormatter creates a new Formatter instance with default settings
func NewFormatter() *Formatter {
	return NewFormatterWithConfig(config.NewConfig().Formatting)
}

// NewFormatterWithConfig creates a Formatter with custom settings
func NewFormatterWithConfig(cfg config.FormattingConfig) *Formatter {
	return &Formatter{config: cfg}
}

// Format trims trailing whitespace, collapses blank lines, reindents and
// optionally sorts the leading import block and terminates module
// statements with semicolons. The text of template literals is kept byte
// for byte. The result ends with a single newline.
func (f *Formatter) Format(code string) (string, error) {
	// Handle empty input
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	if !f.config.UseTabs && f.config.IndentWidth <= 0 {
		return "", errors.NewFormatError("invalid formatting options",
			fmt.Errorf("indent width must be positive, got %d", f.config.IndentWidth))
	}

	code = strings.ReplaceAll(code, "\r\n", "\n")
	lines := strings.Split(code, "\n")
	for i, span := range scanTemplates(lines) {
		if !span.endsInside {
			lines[i] = strings.TrimRight(lines[i], " \t")
		}
	}

	if f.config.SortImports {
		lines = sortImports(lines)
	}
	spans := scanTemplates(lines)
	if f.config.Semicolons {
		lines = addSemicolons(lines, spans)
	}
	lines = f.reindent(lines, spans)
	lines = collapseBlankLines(lines, spans)

	return strings.Join(lines, "\n") + "\n", nil
}

// reindent rewrites leading two-space units to the configured width or to
// tabs. Leftover single spaces, as in JSDoc continuation lines, are kept.
// Lines continuing a template literal are left alone.
func (f *Formatter) reindent(lines []string, spans []lineSpan) []string {
	if !f.config.UseTabs && f.config.IndentWidth == sourceIndent {
		return lines
	}

	unit := strings.Repeat(" ", f.config.IndentWidth)
	if f.config.UseTabs {
		unit = "\t"
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if spans[i].startsInside {
			out[i] = line
			continue
		}
		body := strings.TrimLeft(line, " ")
		spaces := len(line) - len(body)
		out[i] = strings.Repeat(unit, spaces/sourceIndent) + strings.Repeat(" ", spaces%sourceIndent) + body
	}
	return out
}

// collapseBlankLines drops leading and trailing blank lines and keeps at
// most one blank line between blocks
func collapseBlankLines(lines []string, spans []lineSpan) []string {
	out := make([]string, 0, len(lines))
	kept := make([]bool, 0, len(lines))
	for i, line := range lines {
		literal := spans[i].startsInside
		if line == "" && !literal && (len(out) == 0 || (out[len(out)-1] == "" && !kept[len(kept)-1])) {
			continue
		}
		out = append(out, line)
		kept = append(kept, literal)
	}
	for len(out) > 0 && out[len(out)-1] == "" && !kept[len(kept)-1] {
		out = out[:len(out)-1]
		kept = kept[:len(kept)-1]
	}
	return out
}

type importStatement struct {
	lines     []string
	specifier string
}

func (s importStatement) relative() bool {
	return strings.HasPrefix(s.specifier, ".") || strings.HasPrefix(s.specifier, "/")
}

// sortImports reorders the leading import block: package imports first,
// then relative imports, each sorted by specifier with a blank line
// between the groups. Blocks containing side-effect imports keep their
// order.
func sortImports(lines []string) []string {
	start := 0
	for start < len(lines) && !strings.HasPrefix(lines[start], "import ") {
		if !isPreamble(lines[start]) {
			return lines
		}
		start++
	}

	var statements []importStatement
	end := start
	for end < len(lines) {
		line := lines[end]
		if line == "" {
			end++
			continue
		}
		if !strings.HasPrefix(line, "import ") {
			break
		}

		stmt, next, ok := readImport(lines, end)
		if !ok {
			return lines
		}
		if sideEffectRegex.MatchString(stmt.lines[0]) {
			return lines
		}
		statements = append(statements, stmt)
		end = next
	}
	if len(statements) < 2 {
		return lines
	}

	var packages, relatives []importStatement
	for _, stmt := range statements {
		if stmt.relative() {
			relatives = append(relatives, stmt)
		} else {
			packages = append(packages, stmt)
		}
	}
	for _, group := range [][]importStatement{packages, relatives} {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].specifier < group[j].specifier
		})
	}

	block := make([]string, 0, end-start+2)
	for _, stmt := range packages {
		block = append(block, stmt.lines...)
	}
	if len(packages) > 0 && len(relatives) > 0 {
		block = append(block, "")
	}
	for _, stmt := range relatives {
		block = append(block, stmt.lines...)
	}
	if end < len(lines) {
		block = append(block, "")
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:start]...)
	out = append(out, block...)
	return append(out, lines[end:]...)
}

// readImport collects the lines of the import statement starting at i and
// returns the index following it
func readImport(lines []string, i int) (importStatement, int, bool) {
	var stmt importStatement
	for j := i; j < len(lines); j++ {
		if lines[j] == "" {
			return importStatement{}, 0, false
		}
		stmt.lines = append(stmt.lines, lines[j])
		if match := importEndRegex.FindStringSubmatch(lines[j]); match != nil {
			stmt.specifier = match[3]
			return stmt, j + 1, true
		}
	}
	return importStatement{}, 0, false
}

// isPreamble reports whether a line may precede the import block
func isPreamble(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}

// addSemicolons terminates top-level import and re-export statements
func addSemicolons(lines []string, spans []lineSpan) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if !spans[i].startsInside && semicolonRegex.MatchString(line) {
			line += ";"
		}
		out[i] = line
	}
	return out
}

// lineSpan records whether a line begins or ends inside a template literal
type lineSpan struct {
	startsInside bool
	endsInside   bool
}

// scanTemplates tracks template literals across lines. Quoted strings,
// comments and ${} substitutions are followed so that backticks inside them
// are not mistaken for delimiters.
func scanTemplates(lines []string) []lineSpan {
	var s templateScanner
	spans := make([]lineSpan, len(lines))
	for i, line := range lines {
		spans[i].startsInside = s.inTemplate()
		s.scan(line)
		spans[i].endsInside = s.inTemplate()
	}
	return spans
}

// templateScanner holds one entry per open template literal: -1 while in
// its text, otherwise the brace depth inside the current substitution.
type templateScanner struct {
	stack        []int
	blockComment bool
}

func (s *templateScanner) inTemplate() bool {
	return len(s.stack) > 0 && s.stack[len(s.stack)-1] < 0
}

func (s *templateScanner) scan(line string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		next := byte(0)
		if i+1 < len(line) {
			next = line[i+1]
		}
		top := len(s.stack) - 1

		switch {
		case s.blockComment:
			if c == '*' && next == '/' {
				s.blockComment = false
				i++
			}
		case s.inTemplate():
			switch {
			case c == '\\':
				i++
			case c == '`':
				s.stack = s.stack[:top]
			case c == '$' && next == '{':
				s.stack[top] = 0
				i++
			}
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		default:
			switch {
			case c == '"' || c == '\'':
				quote = c
			case c == '`':
				s.stack = append(s.stack, -1)
			case c == '/' && next == '/':
				return
			case c == '/' && next == '*':
				s.blockComment = true
				i++
			case c == '{' && top >= 0:
				s.stack[top]++
			case c == '}' && top >= 0:
				s.stack[top]--
			}
		}
	}
}
