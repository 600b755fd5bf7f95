// Package notice models operator-facing notices produced by the settings
// engine. The engine returns notices as values; host adapters forward them
// to the host's notice bus.
package notice

import "github.com/conn-castle/sitesearch/internal/host"

// Notice codes.
const (
	CodeIndexFieldMissing      = "INDEX_FIELD_MISSING"
	CodeIndexFieldIncompatible = "INDEX_FIELD_INCOMPATIBLE"
	CodeIndexFieldUnattached   = "INDEX_FIELD_UNATTACHED"
	CodeIndexFieldInvalid      = "INDEX_FIELD_INVALID"
)

// Severity classifies a notice.
type Severity string

const (
	// SeverityInfo is recoverable and actionable.
	SeverityInfo Severity = "info"
	// SeverityWarning is shown but does not block the configuration.
	SeverityWarning Severity = "warning"
	// SeverityError means the current configuration is unusable.
	SeverityError Severity = "error"
)

// Notice is a single message for the operator.
type Notice struct {
	Code     string
	Subject  string
	Message  string
	Severity Severity
	// AllowMarkup marks messages containing HTML the host may render as-is.
	AllowMarkup bool
}

func (n Notice) severityOrDefault() Severity {
	if n.Severity == "" {
		return SeverityInfo
	}
	return n.Severity
}

// Forward sends notices to the host's notice bus in order.
func Forward(bus host.NoticeBus, notices []Notice) {
	if bus == nil {
		return
	}
	for _, n := range notices {
		switch n.severityOrDefault() {
		case SeverityError:
			bus.Error(n.Message)
		case SeverityWarning:
			bus.Warning(n.Message)
		default:
			bus.Message(n.Message, n.AllowMarkup)
		}
	}
}

// HasErrors reports whether any notice has error severity.
func HasErrors(notices []Notice) bool {
	for _, n := range notices {
		if n.severityOrDefault() == SeverityError {
			return true
		}
	}
	return false
}

// Quiet drops informational notices. Warnings and errors are always kept.
func Quiet(notices []Notice) []Notice {
	var out []Notice
	for _, n := range notices {
		if n.severityOrDefault() == SeverityInfo {
			continue
		}
		out = append(out, n)
	}
	return out
}
