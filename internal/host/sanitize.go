package host

import (
	"regexp"
	"strings"
)

// maxFieldNameLength matches the host's column name limit.
const maxFieldNameLength = 128

var invalidFieldNameChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// NameSanitizer implements Sanitizer with the host's field naming rules.
type NameSanitizer struct{}

// FieldName converts s to a valid field name: ASCII letters, digits, and
// underscores, with runs of other characters collapsed into one underscore.
func (NameSanitizer) FieldName(s string) string {
	return FieldName(s)
}

// FieldName is the package-level form of NameSanitizer.FieldName.
func FieldName(s string) string {
	name := invalidFieldNameChars.ReplaceAllString(strings.TrimSpace(s), "_")
	name = strings.Trim(name, "_")
	if len(name) > maxFieldNameLength {
		name = strings.TrimRight(name[:maxFieldNameLength], "_")
	}
	return name
}
