package syntax

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

var reservedNames = map[string]struct{}{
	"Infinity": {}, "NaN": {}, "arguments": {}, "await": {}, "break": {},
	"case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {},
	"enum": {}, "eval": {}, "export": {}, "extends": {}, "false": {},
	"finally": {}, "for": {}, "function": {}, "if": {}, "implements": {},
	"import": {}, "in": {}, "instanceof": {}, "interface": {}, "let": {},
	"new": {}, "null": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {},
	"undefined": {}, "var": {}, "void": {}, "while": {}, "with": {},
	"yield": {},
}

// IsReservedName reports whether name cannot be used as a variable binding.
func IsReservedName(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// GenVariableName turns an arbitrary string into a safe binding name.
// Reserved words get a "_" prefix, a leading digit is prefixed with "_" and
// every non-word character becomes "_" followed by its UTF-16 code unit.
func GenVariableName(name string) string {
	if IsReservedName(name) {
		return "_" + name
	}

	var b strings.Builder
	for i, r := range name {
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
		}
		if isWordChar(r) {
			b.WriteRune(r)
			continue
		}
		for _, unit := range utf16.Encode([]rune{r}) {
			b.WriteByte('_')
			b.WriteString(strconv.Itoa(int(unit)))
		}
	}
	return b.String()
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
