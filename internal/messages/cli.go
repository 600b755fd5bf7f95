package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse   = "sitesearch"
	RootShort = "Inspect and edit site search module settings"
	RootLong  = `
		sitesearch resolves the search module's options from module defaults,
		site-wide overrides, and saved admin settings, validates the index
		field against a host snapshot, and renders the settings form.

		Site overrides come from the [SearchEngine] table of the site config
		and from SITESEARCH_<KEY> environment variables, and lock their keys.
	`

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagHost     = "Host snapshot describing fields, templates, and modules (TOML)"
	FlagSettings = "Saved admin settings (TOML); omit to start from defaults"
	FlagSite     = "Site config with a [SearchEngine] override table (TOML)"
	FlagQuiet    = "Hide informational notices"
	FlagQuery    = "Request query string, e.g. create_index_field=1"
	FlagCreate   = "Create the index field when it is missing"
	FlagDiffMax  = "Maximum diff lines to show"

	DefaultHostPath = "host.toml"

	CLIInvalidQueryFmt = "invalid --query %q: %w"

	// OptionsUse is the options command name.
	OptionsUse     = "options"
	OptionsShort   = "Print the resolved options and where each value came from"
	OptionsLineFmt = "%-32s %-8s %s\n"
	OptionsLocked  = "locked"

	ValidateUse           = "validate"
	ValidateShort         = "Check the index field and print operator notices"
	ValidateOK            = "Index field is ready."
	ValidateFailed        = "index field validation failed"
	ValidateRepairFailFmt = "Self-repair failed: %v\n"
	ValidateCreatedFmt    = "Index field created; continue at %s\n"
	ValidateUnset         = "No index field configured; nothing to validate."

	// NoticeLineFmt formats one forwarded notice: severity prefix, then text.
	NoticeLineFmt       = "%s %s\n"
	NoticeInfoPrefix    = "INFO"
	NoticeWarningPrefix = "WARNING"
	NoticeErrorPrefix   = "ERROR"

	FormUse   = "form"
	FormShort = "Validate the index field and print the settings form tree"

	DiffUse       = "diff"
	DiffShort     = "Print compatible fieldtype changes against the module defaults"
	DiffNoChanges = "Compatible fieldtypes match the module defaults."

	PreviewUse   = "preview"
	PreviewShort = "Show a unified diff of default versus effective options"

	EditUse   = "edit"
	EditShort = "Edit settings interactively and print the updated settings TOML"
	EditLong  = `
		edit walks the settings form in the terminal. Locked options are shown
		but cannot be changed. The updated settings are printed as TOML; the
		host is responsible for saving them.
	`
)
