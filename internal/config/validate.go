package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/sitesearch/internal/fieldtypes"
	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
)

// Validate ensures saved settings are consistent.
// path is used for error context.
func (s Settings) Validate(path string) error {
	if s.IndexField != "" {
		if sanitized := host.FieldName(s.IndexField); sanitized != s.IndexField {
			return fmt.Errorf(messages.ConfigIndexFieldNotSanitizedFmt, path, s.IndexField, sanitized)
		}
	}
	for i, name := range s.IndexedFields {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf(messages.ConfigIndexedFieldEmptyFmt, path, i)
		}
	}
	for _, fieldtype := range s.CompatibleFieldtypes {
		if fieldtypes.IsBlacklisted(fieldtype) {
			return fmt.Errorf(messages.ConfigFieldtypeBlacklistedFmt, path, fieldtype, strings.Join(fieldtypes.Blacklist(), ", "))
		}
	}
	return nil
}
