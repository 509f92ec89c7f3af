package syntax

import (
	"strings"
	"unicode/utf8"

	"github.com/mcncl/tsgen/internal/models"
)

const hexDigits = "0123456789abcdef"

// GenString renders s as a string literal. The default form is identical to
// JSON.stringify output; with SingleQuotes the literal is wrapped in single
// quotes, double quotes are left bare and single quotes are escaped.
func GenString(s string, opts models.CodegenOptions) string {
	quoted := quoteJSON(s)
	if !opts.SingleQuotes {
		return quoted
	}
	return requote(quoted[1 : len(quoted)-1])
}

// quoteJSON follows the JSON.stringify escaping rules. HTML-sensitive
// characters are left alone, unlike encoding/json.
func quoteJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				b.WriteString(`\"`)
			case '\\':
				b.WriteString(`\\`)
			case '\b':
				b.WriteString(`\b`)
			case '\f':
				b.WriteString(`\f`)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if c < 0x20 {
					b.WriteString(`\u00`)
					b.WriteByte(hexDigits[c>>4])
					b.WriteByte(hexDigits[c&0xf])
				} else {
					b.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(`\ufffd`)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

// requote converts the body of a double-quoted literal to a single-quoted one.
func requote(body string) string {
	var b strings.Builder
	b.Grow(len(body) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			if body[i+1] == '"' {
				b.WriteByte('"')
			} else {
				b.WriteByte(c)
				b.WriteByte(body[i+1])
			}
			i++
		case c == '\'':
			b.WriteString(`\'`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

var escapeReplacer = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\`+"\n",
	"\r", `\`+"\r",
	"'", `\'`,
	"\u2028", `\`+"\u2028",
	"\u2029", `\`+"\u2029",
)

// EscapeString escapes backslashes and prefixes line terminators and single
// quotes with a backslash. The input is returned as is when nothing needs
// escaping.
func EscapeString(s string) string {
	if !strings.ContainsAny(s, "\n\r'\\\u2028\u2029") {
		return s
	}
	return escapeReplacer.Replace(s)
}

// GenTemplateLiteral renders a template literal. Even-indexed parts are
// literal text and odd-indexed parts are interpolated expressions.
func GenTemplateLiteral(parts []string) string {
	var b strings.Builder
	b.WriteByte('`')
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString("${" + part + "}")
			continue
		}
		b.WriteString(templateEscaper.Replace(part))
	}
	b.WriteByte('`')
	return b.String()
}

var templateEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", `\${`,
)
