// Package validator checks that the configured index field exists and can
// hold the search index, and drives one-click creation of a missing field.
package validator

import (
	"fmt"

	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
	"github.com/conn-castle/sitesearch/internal/notice"
)

// State is the index field's lifecycle state as seen by the validator.
type State string

const (
	// StateUnset means no index field is configured; nothing is checked.
	StateUnset State = "unset"
	// StateInvalid means the configured name has no valid field name form.
	StateInvalid State = "invalid"
	// StateAbsent means the field does not exist.
	StateAbsent State = "absent"
	// StateIncompatible means the field exists with an unsupported type.
	StateIncompatible State = "incompatible"
	// StateUnattached means the field is usable but on no template.
	StateUnattached State = "compatible-unattached"
	// StateReady means the field is usable and attached.
	StateReady State = "ready"
)

// Result is the outcome of one validation pass.
type Result struct {
	// Name is the sanitised index field name; empty for StateUnset and StateInvalid.
	Name    string
	State   State
	Notices []notice.Notice
	// RepairAttempted is set when the request asked for self-repair.
	RepairAttempted bool
	// RepairErr is the self-repair error, if any. It never produces a notice
	// itself; the following lookup reports the field state instead.
	RepairErr error
}

// Validator checks the index field against the host's registries.
type Validator struct {
	host host.Host
}

// New returns a validator bound to h.
func New(h host.Host) *Validator {
	return &Validator{host: h}
}

// Validate checks the named index field and returns the notices to show.
func (v *Validator) Validate(indexField string) Result {
	if indexField == "" {
		return Result{State: StateUnset}
	}
	name := v.sanitize(indexField)
	if name == "" {
		return Result{State: StateInvalid, Notices: []notice.Notice{{
			Code:     notice.CodeIndexFieldInvalid,
			Subject:  indexField,
			Message:  fmt.Sprintf(v.host.T(messages.ValidatorIndexFieldInvalidFmt), indexField),
			Severity: notice.SeverityError,
		}}}
	}
	res := Result{Name: name}

	if v.host.Param(ParamCreateIndexField) == CreateRequested {
		res.RepairAttempted = true
		res.RepairErr = Repair(v.host.SearchEngine, name, CreateLink(v.host.AdminURL, CreateDone))
	}

	field, ok := v.lookup(name)
	switch {
	case !ok:
		res.State = StateAbsent
		link := fmt.Sprintf(messages.ValidatorCreateLinkFmt, CreateLink(v.host.AdminURL, CreateRequested), v.host.T(messages.ValidatorCreateIndexFieldLink))
		res.Notices = append(res.Notices, notice.Notice{
			Code:        notice.CodeIndexFieldMissing,
			Subject:     name,
			Message:     fmt.Sprintf(v.host.T(messages.ValidatorIndexFieldMissingFmt), name) + link,
			Severity:    notice.SeverityInfo,
			AllowMarkup: true,
		})
	case !field.Valid:
		res.State = StateIncompatible
		res.Notices = append(res.Notices, notice.Notice{
			Code:     notice.CodeIndexFieldIncompatible,
			Subject:  name,
			Message:  fmt.Sprintf(v.host.T(messages.ValidatorIndexFieldIncompatFmt), name, field.Type),
			Severity: notice.SeverityError,
		})
	case len(field.Templates) == 0:
		res.State = StateUnattached
		res.Notices = append(res.Notices, notice.Notice{
			Code:     notice.CodeIndexFieldUnattached,
			Subject:  name,
			Message:  fmt.Sprintf(v.host.T(messages.ValidatorIndexFieldUnattachedFmt), name),
			Severity: notice.SeverityInfo,
		})
	default:
		res.State = StateReady
	}
	return res
}

func (v *Validator) sanitize(name string) string {
	if v.host.Sanitizer == nil {
		return host.FieldName(name)
	}
	return v.host.Sanitizer.FieldName(name)
}

func (v *Validator) lookup(name string) (host.IndexField, bool) {
	if v.host.SearchEngine == nil {
		return host.IndexField{}, false
	}
	return v.host.SearchEngine.IndexField(name)
}
