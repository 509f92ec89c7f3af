// Package syntax holds the low-level formatting primitives shared by every
// generator: delimiter wrapping, property key quoting, string literals and
// documentation comments.
package syntax

import "strings"

// DefaultDelimiters wraps object bodies.
const DefaultDelimiters = "{}"

// WrapInDelimiters joins already-indented lines between an open and a close
// delimiter. The close delimiter is placed on its own line at indent.
// An empty line slice yields the bare delimiter pair.
func WrapInDelimiters(lines []string, indent string, delimiters string, withComma bool) string {
	if len(lines) == 0 {
		return delimiters
	}
	open, closing := splitDelimiters(delimiters)

	sep := "\n"
	if withComma {
		sep = ",\n"
	}

	var b strings.Builder
	b.WriteString(open)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, sep))
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(closing)
	return b.String()
}

func splitDelimiters(delimiters string) (string, string) {
	runes := []rune(delimiters)
	switch len(runes) {
	case 0:
		return "", ""
	case 1:
		return string(runes[0]), ""
	default:
		return string(runes[0]), string(runes[1])
	}
}

// IndentLines prefixes every line of every statement with indent.
// Statements containing newlines are split first.
func IndentLines(statements []string, indent string) []string {
	lines := make([]string, 0, len(statements))
	for _, s := range statements {
		for _, line := range strings.Split(s, "\n") {
			lines = append(lines, indent+line)
		}
	}
	return lines
}
