package messages

// Editor messages for the interactive settings editor.
const (
	WizardRequiresTerminal = "the settings editor requires an interactive terminal"
	WizardCancelled        = "settings editor cancelled; no settings were changed"
	WizardLockedTitleFmt   = "%s (locked)"
	WizardLockedBodyFmt    = "%s\n\nCurrent value: %s"
	WizardEmptyValue       = "(none)"
	WizardKeyBack          = "back"
	WizardKeyExit          = "exit"
	WizardMarshalFailedFmt = "render settings: %w"
	WizardUnknownWidgetFmt = "unsupported widget %q"
)
