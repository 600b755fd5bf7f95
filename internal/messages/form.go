package messages

// Form labels, descriptions, and notes for the settings form.
const (
	FormIndexingOptionsLabel = "Indexing options"
	FormManualIndexingLabel  = "Manual indexing"
	FormAdvancedLabel        = "Advanced settings"

	FormIndexedFieldsLabel  = "Select indexed fields"
	FormIndexedFieldsLocked = "Indexed fields are currently defined in site config. You cannot override config settings here."

	FormIndexedTemplatesLabel       = "Indexed templates"
	FormIndexedTemplatesDescription = "In order for a template to be indexed, it needs to include the index field. You can use this setting to add the index field to one or more templates, or remove it from templates it has previously been added to."
	FormIndexedTemplatesSystemNote  = "One or more system templates are indexed. In order to make system templates indexable (or non-indexable) you need to modify template settings directly."

	FormIndexPagesNowLabel       = "Index pages now?"
	FormIndexPagesNowDescription = "If you check this field and save module settings, SearchEngine will automatically index all applicable pages."
	FormIndexPagesNowNote        = "Note: this operation may take a long time."
	FormIndexPagesNowLocked      = "Manual indexing is currently defined in site config. You cannot override config settings here."

	FormSelectorLabel       = "Selector for indexed pages"
	FormSelectorDescription = "You can use this field to choose the pages that should be indexed. This only takes effect if the \"Index pages now?\" option has been checked."
	FormSelectorLocked      = "Indexed pages selector is currently defined in site config. You cannot override config settings here."

	FormIndexFieldLabel   = "Select index field"
	FormIndexFieldLocked  = "Index field is currently defined in site config. You cannot override config settings here."
	FormIndexFieldCaution = "If you select a field that already contains values, those values *will* be overwritten the next time someone triggers manual indexing of pages *or* a page containing selected field is saved. Making changes to this setting can result in *permanent* data loss!"

	FormOverrideLabel       = "Override compatible fieldtypes"
	FormOverrideDescription = "Check this field if you want to override default compatible fieldtype values here."
	FormOverrideLocked      = "Compatible fieldtype override is currently defined in site config. You cannot override config settings here."

	FormCompatibleLabel       = "Compatible fieldtypes"
	FormCompatibleDescription = "Fieldtypes considered compatible with this module."
	FormCompatibleLocked      = "Compatible fieldtypes are currently defined in site config. You cannot override config settings here."
	FormCompatibleCaution     = "Please note that selecting fieldtypes not selected by default may result in various problems. Change these values only if you're sure that you know what you're doing."

	// FormDiffAddedFmt and FormDiffRemovedFmt render compatible fieldtype diff lines.
	FormDiffAddedFmt   = "added: %s"
	FormDiffRemovedFmt = "removed: %s"
)
