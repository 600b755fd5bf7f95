package messages

// Validator notices for the index field check. These are source strings;
// the host translator may replace them before they are formatted.
const (
	ValidatorIndexFieldMissingFmt    = "Index field \"%s\" (FieldtypeTextarea or FieldtypeTextareaLanguage) doesn't exist."
	ValidatorCreateIndexFieldLink    = "Click here to create the index field automatically."
	// ValidatorCreateLinkFmt wraps the create link; the notice allows markup.
	ValidatorCreateLinkFmt           = " <a href=\"%s\">%s</a>"
	ValidatorIndexFieldIncompatFmt   = "Index field \"%s\" exists but is of incompatible type (%s). Please create a new index field or convert existing field to a supported type (FieldtypeTextarea or FieldtypeTextareaLanguage)."
	ValidatorIndexFieldInvalidFmt    = "Index field \"%s\" is not a valid field name."
	ValidatorIndexFieldUnattachedFmt = "Index field \"%s\" hasn't been added to any templates yet. Add to one or more templates to start indexing content."

	// ValidatorRepairFailedFmt formats self-repair errors for callers that surface them.
	ValidatorRepairFailedFmt = "create index field %q: %w"
)
