package config

import "github.com/conn-castle/sitesearch/internal/host"

// Settings is one layer of option values: module defaults, site overrides,
// or the admin-saved payload. Empty values mean "not set" in every layer.
type Settings struct {
	IndexField                   string   `toml:"index_field,omitempty"`
	IndexedFields                []string `toml:"indexed_fields,omitempty"`
	IndexedTemplates             []string `toml:"indexed_templates,omitempty"`
	CompatibleFieldtypes         []string `toml:"compatible_fieldtypes,omitempty"`
	OverrideCompatibleFieldtypes bool     `toml:"override_compatible_fieldtypes,omitempty"`
	IndexPagesNow                bool     `toml:"index_pages_now,omitempty"`
	IndexPagesNowSelector        string   `toml:"index_pages_now_selector,omitempty"`
}

// defaultCompatibleFieldtypes lists fieldtypes whose values can be rendered
// as index text without extra configuration.
var defaultCompatibleFieldtypes = []string{
	"FieldtypeEmail",
	"FieldtypeDatetime",
	"FieldtypeText",
	"FieldtypeTextLanguage",
	host.FieldtypeTextarea,
	host.FieldtypeTextareaLanguage,
	"FieldtypePageTitle",
	"FieldtypePageTitleLanguage",
	"FieldtypeURL",
	"FieldtypeFile",
	"FieldtypeImage",
	"FieldtypeOptions",
	"FieldtypePage",
	"FieldtypeRepeater",
	"FieldtypeRepeaterMatrix",
	"FieldtypePageTable",
}

// Defaults returns the module's built-in option values.
func Defaults() Settings {
	return Settings{
		IndexField:           "search_index",
		IndexedFields:        []string{"title", "headline", "summary", "body"},
		CompatibleFieldtypes: append([]string(nil), defaultCompatibleFieldtypes...),
	}
}

// IsSet reports whether the layer defines key. Empty strings, empty lists,
// and false are treated as absent.
func (s Settings) IsSet(key string) bool {
	switch key {
	case KeyIndexField:
		return s.IndexField != ""
	case KeyIndexedFields:
		return len(s.IndexedFields) > 0
	case KeyCompatibleFieldtypes:
		return len(s.CompatibleFieldtypes) > 0
	case KeyOverrideCompatibleFieldtypes:
		return s.OverrideCompatibleFieldtypes
	case KeyIndexPagesNow:
		return s.IndexPagesNow
	case KeyIndexPagesNowSelector:
		return s.IndexPagesNowSelector != ""
	case KeyIndexedTemplates:
		return len(s.IndexedTemplates) > 0
	default:
		return false
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	s.IndexedFields = cloneList(s.IndexedFields)
	s.IndexedTemplates = cloneList(s.IndexedTemplates)
	s.CompatibleFieldtypes = cloneList(s.CompatibleFieldtypes)
	return s
}

func cloneList(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
