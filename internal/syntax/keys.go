package syntax

import (
	"regexp"

	"github.com/mcncl/tsgen/internal/models"
)

var identifierRe = regexp.MustCompile(`^[$_]?([A-Z_a-z]\w*|\d)$`)

// IsValidIdentifier reports whether key can be written as a bare property
// name. Reserved words are not checked.
func IsValidIdentifier(key string) bool {
	return identifierRe.MatchString(key)
}

// GenObjectKey renders key as a property name, quoting it when it is not a
// plain identifier.
func GenObjectKey(key string) string {
	if IsValidIdentifier(key) {
		return key
	}
	return GenString(key, models.CodegenOptions{})
}

// GenKey is an alias of GenObjectKey.
func GenKey(key string) string {
	return GenObjectKey(key)
}
