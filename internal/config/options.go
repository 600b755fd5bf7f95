package config

import "github.com/conn-castle/sitesearch/internal/messages"

// ModuleName is the search module's name in the host's module registry and
// the table name of its site-wide overrides.
const ModuleName = "SearchEngine"

// Option keys recognised by the resolver.
const (
	KeyIndexField                   = "index_field"
	KeyIndexedFields                = "indexed_fields"
	KeyCompatibleFieldtypes         = "compatible_fieldtypes"
	KeyOverrideCompatibleFieldtypes = "override_compatible_fieldtypes"
	KeyIndexPagesNow                = "index_pages_now"
	KeyIndexPagesNowSelector        = "index_pages_now_selector"
)

// KeyIndexedTemplates names the indexed templates control. Its value comes
// from the host's template attachments, not from the option layers.
const KeyIndexedTemplates = "indexed_templates"

// OptionType classifies the kind of value an option holds.
type OptionType string

const (
	// OptionString holds a single identifier.
	OptionString OptionType = "string"
	// OptionList holds an ordered set of identifiers.
	OptionList OptionType = "list"
	// OptionBool holds true or false.
	OptionBool OptionType = "bool"
	// OptionSelector holds a host selector expression.
	OptionSelector OptionType = "selector"
)

// OptionDef describes a single option key.
type OptionDef struct {
	Key  string
	Type OptionType
	// Transient options act on save and are never kept as settings by the host.
	Transient bool
	// LockedNote is shown on the control when a site override locks the key.
	LockedNote string
}

// options is the canonical ordered registry of option keys.
// Order matches the settings form (indexing → manual indexing → advanced).
var options = []OptionDef{
	{Key: KeyIndexedFields, Type: OptionList, LockedNote: messages.FormIndexedFieldsLocked},
	{Key: KeyIndexPagesNow, Type: OptionBool, Transient: true, LockedNote: messages.FormIndexPagesNowLocked},
	{Key: KeyIndexPagesNowSelector, Type: OptionSelector, Transient: true, LockedNote: messages.FormSelectorLocked},
	{Key: KeyIndexField, Type: OptionString, LockedNote: messages.FormIndexFieldLocked},
	{Key: KeyOverrideCompatibleFieldtypes, Type: OptionBool, LockedNote: messages.FormOverrideLocked},
	{Key: KeyCompatibleFieldtypes, Type: OptionList, LockedNote: messages.FormCompatibleLocked},
}

var optionIndex = buildOptionIndex()

func buildOptionIndex() map[string]int {
	idx := make(map[string]int, len(options))
	for i, o := range options {
		idx[o.Key] = i
	}
	return idx
}

// LookupOption returns the definition for key.
// Returns false when the key is not in the catalog.
func LookupOption(key string) (OptionDef, bool) {
	i, ok := optionIndex[key]
	if !ok {
		return OptionDef{}, false
	}
	return options[i], true
}

// OptionKeys returns the option keys in catalog order.
func OptionKeys() []string {
	keys := make([]string, len(options))
	for i, o := range options {
		keys[i] = o.Key
	}
	return keys
}
