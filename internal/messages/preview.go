package messages

// Preview messages for the settings diff preview.
const (
	PreviewFromName         = "defaults"
	PreviewToName           = "effective"
	PreviewTruncatedFmt     = "... (truncated to %d lines; rerun with %s <n> to see more)"
	PreviewMarshalFailedFmt = "render %s options: %w"
	PreviewNoChanges        = "Effective options match the module defaults."
)
