package syntax

import (
	"strings"

	"github.com/mcncl/tsgen/internal/models"
)

// GenJSDocComment renders doc as a block comment at indent, terminated by a
// newline. A single line collapses to `/** line */`. A nil or empty doc
// renders nothing.
func GenJSDocComment(doc *models.JSDoc, indent string) string {
	lines := doc.AllLines()
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return indent + "/** " + lines[0] + " */\n"
	}

	var b strings.Builder
	b.WriteString(indent + "/**\n")
	for _, line := range lines {
		b.WriteString(indent + " * " + line + "\n")
	}
	b.WriteString(indent + " */\n")
	return b.String()
}

// GenComment renders text as line comments, one per input line.
func GenComment(text string, indent string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = indent + "//"
			continue
		}
		lines[i] = indent + "// " + line
	}
	return strings.Join(lines, "\n")
}
