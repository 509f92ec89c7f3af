// Package naming derives TypeScript identifiers for generated declarations.
package naming

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/tsgen/internal/syntax"
)

// DefaultTypeName is used when a key has no usable characters.
const DefaultTypeName = "Field"

// TypeName converts a key to a PascalCase type name.
func TypeName(key string) string {
	name := strcase.ToCamel(key)
	if name == "" {
		return DefaultTypeName
	}
	return syntax.GenVariableName(name)
}

// ValueName converts a key to a camelCase value name.
func ValueName(key string) string {
	name := strcase.ToLowerCamel(key)
	if name == "" {
		return strings.ToLower(DefaultTypeName)
	}
	return syntax.GenVariableName(name)
}

var knownSingulars = map[string]string{
	"series":    "series",
	"status":    "status",
	"analysis":  "analysis",
	"species":   "species",
	"news":      "news",
	"goods":     "goods",
	"children":  "child",
	"people":    "person",
	"men":       "man",
	"women":     "woman",
	"teeth":     "tooth",
	"feet":      "foot",
	"mice":      "mouse",
	"geese":     "goose",
	"data":      "data",
	"media":     "media",
	"addresses": "address",
}

// Singularize converts a plural name to a singular one using a small
// table of irregular words and suffix rules.
func Singularize(plural string) string {
	if singular, ok := knownSingulars[strings.ToLower(plural)]; ok {
		// Preserve a leading capital
		if plural != "" && strings.ToUpper(plural[:1]) == plural[:1] {
			return strings.ToUpper(singular[:1]) + singular[1:]
		}
		return singular
	}

	lower := strings.ToLower(plural)

	if strings.HasSuffix(lower, "ies") && len(lower) > 3 {
		return plural[:len(plural)-3] + "y"
	}

	// bus, class, status, basis
	if strings.HasSuffix(lower, "ss") ||
		strings.HasSuffix(lower, "us") ||
		strings.HasSuffix(lower, "is") {
		return plural
	}

	if strings.HasSuffix(lower, "s") && len(lower) > 1 {
		return plural[:len(plural)-1]
	}

	return plural
}

// Registry hands out unique names, suffixing repeats with a counter.
type Registry struct {
	counts map[string]int
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{counts: make(map[string]int)}
}

// Unique returns base the first time and base1, base2 ... afterwards.
func (r *Registry) Unique(base string) string {
	name := base
	count := r.counts[base]
	if count > 0 {
		name = fmt.Sprintf("%s%d", base, count)
	}
	r.counts[base] = count + 1
	return name
}

// Reserve records base as taken without renaming it.
func (r *Registry) Reserve(base string) {
	r.counts[base]++
}
