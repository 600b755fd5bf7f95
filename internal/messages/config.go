package messages

// Config messages for settings loading and validation.
//
// Settings are the admin-saved option payload; site overrides are the
// host-wide layer that locks keys. Both are read from TOML.
const (
	// ConfigMissingSettingsFileFmt formats missing settings file errors.
	ConfigMissingSettingsFileFmt = "missing settings file %s: %w"
	ConfigInvalidSettingsFmt     = "invalid settings %s: %w"
	ConfigUnrecognizedKeysFmt    = "%s: unrecognized settings keys: %w"
	ConfigMissingSiteFileFmt     = "missing site config %s: %w"
	ConfigInvalidSiteFmt         = "invalid site config %s: %w"
	ConfigSiteValidationFmt      = "invalid site overrides: %w"
	ConfigSiteEnvSource          = "SITESEARCH_* environment"
	ConfigMissingHostFileFmt     = "missing host snapshot %s: %w"
	ConfigInvalidHostFmt         = "invalid host snapshot %s: %w"
	ConfigHostDuplicateFieldFmt  = "%s: fields[%d].name %q duplicates fields[%d].name"
	ConfigHostFieldNameFmt       = "%s: fields[%d].name is required"
	ConfigHostFieldTypeFmt       = "%s: fields[%d].type is required"
	ConfigHostFieldTemplateFmt   = "%s: fields[%d].templates contains unknown template %q"
	ConfigHostTemplateNameFmt    = "%s: templates[%d].name is required"
	ConfigExpandPathFmt          = "expand path %s: %w"
	ConfigHostFieldExistsFmt     = "%w: %s"
	ConfigHostIndexFieldLabel    = "Search index"

	ConfigIndexFieldNotSanitizedFmt = "%s: index_field %q is not a valid field name (did you mean %q?)"
	ConfigFieldtypeBlacklistedFmt   = "%s: compatible_fieldtypes contains unsupported fieldtype %q (never allowed: %s)"
	ConfigIndexedFieldEmptyFmt      = "%s: indexed_fields[%d] is empty"

	// ConfigValidationGuidance is appended to validation errors to direct users to repair tools.
	ConfigValidationGuidance = "(run 'sitesearch edit' to fix or 'sitesearch validate' to diagnose)"

	// ConfigLenientLoadInfoFmt is used when the editor falls back to lenient settings loading.
	ConfigLenientLoadInfoFmt = "Settings have validation errors; %s will help you fix them: %v"
)
