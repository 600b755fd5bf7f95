// Package form composes the search module's settings form as a tree of
// widgets. Host adapters translate the tree into real controls; nothing in
// this package renders anything.
package form

// Kind tags a widget's concrete type.
type Kind string

// Widget kinds.
const (
	KindFieldset    Kind = "fieldset"
	KindMultiSelect Kind = "multiselect"
	KindCheckboxes  Kind = "checkboxes"
	KindSelect      Kind = "select"
	KindCheckbox    Kind = "checkbox"
	KindSelector    Kind = "selector"
)

// Collapse is a widget's collapsed state.
type Collapse int

const (
	// CollapsedNo shows the widget open and editable.
	CollapsedNo Collapse = iota
	// CollapsedYes shows the widget collapsed but editable.
	CollapsedYes
	// CollapsedNoLocked shows the value open and read-only.
	CollapsedNoLocked
)

// Option is one selectable choice.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Base holds the attributes shared by all widgets.
type Base struct {
	Name        string
	Label       string
	Description string
	Notes       string
	Icon        string
	Collapsed   Collapse
	// ShowIf is a "name=value" condition on a sibling control.
	ShowIf string
}

// Common returns the shared attributes.
func (b *Base) Common() *Base { return b }

// Locked reports whether the widget is read-only.
func (b *Base) Locked() bool { return b.Collapsed == CollapsedNoLocked }

// Widget is a node of the form tree.
type Widget interface {
	Kind() Kind
	Common() *Base
}

// Fieldset groups widgets.
type Fieldset struct {
	Base
	Children []Widget
}

// MultiSelect picks an ordered set of values.
type MultiSelect struct {
	Base
	Options []Option
	Value   []string
}

// Checkboxes picks a set of values shown as checkboxes.
type Checkboxes struct {
	Base
	Options       []Option
	Value         []string
	OptionColumns int
}

// Select picks a single value.
type Select struct {
	Base
	Options []Option
	Value   string
}

// Checkbox toggles a boolean.
type Checkbox struct {
	Base
	Checked bool
}

// Selector edits a host page selector expression.
type Selector struct {
	Base
	Value string
}

func (*Fieldset) Kind() Kind    { return KindFieldset }
func (*MultiSelect) Kind() Kind { return KindMultiSelect }
func (*Checkboxes) Kind() Kind  { return KindCheckboxes }
func (*Select) Kind() Kind      { return KindSelect }
func (*Checkbox) Kind() Kind    { return KindCheckbox }
func (*Selector) Kind() Kind    { return KindSelector }

// Add appends children to the fieldset.
func (f *Fieldset) Add(children ...Widget) {
	f.Children = append(f.Children, children...)
}

// Form is the root of the widget tree.
type Form struct {
	Children []Widget
}

// Walk visits every widget depth-first. depth is 0 for top-level widgets.
// Returning false from fn skips the widget's children.
func (f *Form) Walk(fn func(w Widget, depth int) bool) {
	for _, w := range f.Children {
		walk(w, 0, fn)
	}
}

func walk(w Widget, depth int, fn func(Widget, int) bool) {
	if !fn(w, depth) {
		return
	}
	if fs, ok := w.(*Fieldset); ok {
		for _, child := range fs.Children {
			walk(child, depth+1, fn)
		}
	}
}
