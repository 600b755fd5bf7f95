package messages

// Form tree rendering for the CLI.
const (
	RenderFieldsetFmt  = "%s%s [%s]%s\n"
	RenderWidgetFmt    = "%s- %s (%s, %s)%s\n"
	RenderDetailFmt    = "%s    %s: %s\n"
	RenderCollapsed    = " (collapsed)"
	RenderLocked       = " [locked]"
	RenderShowIfFmt    = " (shown if %s)"
	RenderDisabledFmt  = "%s (disabled)"
	RenderOptions      = "options"
	RenderValue        = "value"
	RenderNotes        = "notes"
	RenderDescription  = "description"
	RenderCheckedTrue  = "checked"
	RenderCheckedFalse = "unchecked"
)
