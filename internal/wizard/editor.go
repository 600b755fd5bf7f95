// Package wizard renders the settings form tree as an interactive terminal
// editor and turns the answers into a new saved settings payload.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/form"
	"github.com/conn-castle/sitesearch/internal/messages"
)

var (
	errBack = errors.New("editor back requested")
	// ErrCancelled is returned when the operator exits the editor.
	ErrCancelled = errors.New(messages.WizardCancelled)
)

// editor holds the working values while the operator walks the form.
type editor struct {
	lists   map[string][]string
	strs    map[string]string
	checked map[string]bool
	touched map[string]bool
}

func newEditor(f *form.Form) *editor {
	e := &editor{
		lists:   map[string][]string{},
		strs:    map[string]string{},
		checked: map[string]bool{},
		touched: map[string]bool{},
	}
	f.Walk(func(w form.Widget, _ int) bool {
		name := w.Common().Name
		switch v := w.(type) {
		case *form.MultiSelect:
			e.lists[name] = append([]string(nil), v.Value...)
		case *form.Checkboxes:
			e.lists[name] = append([]string(nil), v.Value...)
		case *form.Select:
			e.strs[name] = v.Value
		case *form.Selector:
			e.strs[name] = v.Value
		case *form.Checkbox:
			e.checked[name] = v.Checked
		}
		return true
	})
	return e
}

// Run asks for every visible control of f in order and returns saved with
// the edited values applied. Locked controls are shown but never change
// the result. Esc steps back to the previous visible control.
func Run(ui UI, f *form.Form, saved config.Settings) (config.Settings, error) {
	e := newEditor(f)
	steps := controls(f)
	for i := 0; i < len(steps); {
		w := steps[i]
		if !e.visible(w) {
			i++
			continue
		}
		err := e.ask(ui, w)
		switch {
		case errors.Is(err, errBack):
			i = e.previous(steps, i)
		case err != nil:
			return config.Settings{}, err
		default:
			i++
		}
	}
	return e.apply(saved), nil
}

// controls returns every non-fieldset widget in form order.
func controls(f *form.Form) []form.Widget {
	var out []form.Widget
	f.Walk(func(w form.Widget, _ int) bool {
		if w.Kind() != form.KindFieldset {
			out = append(out, w)
		}
		return true
	})
	return out
}

// visible evaluates the widget's show-if condition against the working values.
func (e *editor) visible(w form.Widget) bool {
	cond := w.Common().ShowIf
	if cond == "" {
		return true
	}
	name, value, _ := strings.Cut(cond, "=")
	checked := e.checked[strings.TrimSpace(name)]
	return checked == (strings.TrimSpace(value) == "1")
}

// previous returns the index of the closest visible control before i, or i
// itself when there is none.
func (e *editor) previous(steps []form.Widget, i int) int {
	for j := i - 1; j >= 0; j-- {
		if e.visible(steps[j]) {
			return j
		}
	}
	return i
}

func (e *editor) ask(ui UI, w form.Widget) error {
	base := w.Common()
	if base.Locked() {
		title := fmt.Sprintf(messages.WizardLockedTitleFmt, base.Label)
		return ui.Note(title, fmt.Sprintf(messages.WizardLockedBodyFmt, base.Notes, e.display(w)))
	}
	description := describe(base)
	switch v := w.(type) {
	case *form.MultiSelect:
		selected := append([]string(nil), e.lists[base.Name]...)
		if err := ui.MultiSelect(base.Label, description, choices(v.Options), &selected); err != nil {
			return err
		}
		e.setList(base.Name, selected)
	case *form.Checkboxes:
		fixed, editable := splitDisabled(v.Options, e.lists[base.Name])
		if err := ui.MultiSelect(base.Label, description, choices(v.Options), &editable); err != nil {
			return err
		}
		e.setList(base.Name, append(fixed, editable...))
	case *form.Select:
		current := e.strs[base.Name]
		if err := ui.Select(base.Label, description, choices(v.Options), &current); err != nil {
			return err
		}
		e.strs[base.Name] = current
		e.touched[base.Name] = true
	case *form.Selector:
		current := e.strs[base.Name]
		if err := ui.Input(base.Label, description, &current); err != nil {
			return err
		}
		e.strs[base.Name] = strings.TrimSpace(current)
		e.touched[base.Name] = true
	case *form.Checkbox:
		current := e.checked[base.Name]
		if err := ui.Confirm(base.Label, description, &current); err != nil {
			return err
		}
		e.checked[base.Name] = current
		e.touched[base.Name] = true
	default:
		return fmt.Errorf(messages.WizardUnknownWidgetFmt, w.Kind())
	}
	return nil
}

func (e *editor) setList(name string, values []string) {
	e.lists[name] = values
	e.touched[name] = true
}

func (e *editor) display(w form.Widget) string {
	name := w.Common().Name
	var value string
	switch w.(type) {
	case *form.MultiSelect, *form.Checkboxes:
		value = strings.Join(e.lists[name], ", ")
	case *form.Select, *form.Selector:
		value = e.strs[name]
	case *form.Checkbox:
		value = fmt.Sprintf("%t", e.checked[name])
	}
	if value == "" {
		return messages.WizardEmptyValue
	}
	return value
}

// apply copies the touched working values onto saved.
func (e *editor) apply(saved config.Settings) config.Settings {
	out := saved.Clone()
	for name := range e.touched {
		switch name {
		case config.KeyIndexField:
			out.IndexField = e.strs[name]
		case config.KeyIndexedFields:
			out.IndexedFields = e.lists[name]
		case config.KeyIndexedTemplates:
			out.IndexedTemplates = e.lists[name]
		case config.KeyCompatibleFieldtypes:
			out.CompatibleFieldtypes = e.lists[name]
		case config.KeyOverrideCompatibleFieldtypes:
			out.OverrideCompatibleFieldtypes = e.checked[name]
		case config.KeyIndexPagesNow:
			out.IndexPagesNow = e.checked[name]
		case config.KeyIndexPagesNowSelector:
			out.IndexPagesNowSelector = e.strs[name]
		}
	}
	// The selector only applies while index_pages_now is effectively on,
	// which a site lock can force regardless of the saved value.
	indexNow, ok := e.checked[config.KeyIndexPagesNow]
	if !ok {
		indexNow = out.IndexPagesNow
	}
	if !indexNow {
		out.IndexPagesNowSelector = ""
	}
	return out
}

func describe(b *form.Base) string {
	parts := make([]string, 0, 2)
	if b.Description != "" {
		parts = append(parts, b.Description)
	}
	if b.Notes != "" {
		parts = append(parts, b.Notes)
	}
	return strings.Join(parts, "\n\n")
}

// choices returns the selectable options; disabled options are left out.
func choices(options []form.Option) []Choice {
	out := make([]Choice, 0, len(options))
	for _, o := range options {
		if o.Disabled {
			continue
		}
		out = append(out, Choice{Value: o.Value, Label: o.Label})
	}
	return out
}

// splitDisabled separates selected values that belong to disabled options,
// which the editor must keep as they are, from the editable selection.
func splitDisabled(options []form.Option, selected []string) (fixed []string, editable []string) {
	disabled := make(map[string]struct{})
	for _, o := range options {
		if o.Disabled {
			disabled[o.Value] = struct{}{}
		}
	}
	for _, v := range selected {
		if _, ok := disabled[v]; ok {
			fixed = append(fixed, v)
			continue
		}
		editable = append(editable, v)
	}
	return fixed, editable
}
