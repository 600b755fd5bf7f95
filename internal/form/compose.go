package form

import (
	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/fieldtypes"
	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
)

// Fieldset icons.
const (
	IconIndexing = "database"
	IconManual   = "rocket"
	IconAdvanced = "graduation-cap"
)

// Show-if conditions.
const (
	ShowIfIndexPagesNow = config.KeyIndexPagesNow + "=1"
	ShowIfOverride      = config.KeyOverrideCompatibleFieldtypes + "=1"
)

// Compose builds the settings form for the resolved options.
func Compose(h host.Host, opts config.Options) *Form {
	c := composer{host: h, opts: opts}

	indexing := &Fieldset{Base: Base{Label: h.T(messages.FormIndexingOptionsLabel), Icon: IconIndexing}}
	indexing.Add(c.indexedFields(), c.indexedTemplates())

	manual := &Fieldset{Base: Base{Label: h.T(messages.FormManualIndexingLabel), Icon: IconManual}}
	manual.Add(c.indexPagesNow(), c.indexPagesNowSelector())

	advanced := &Fieldset{Base: Base{Label: h.T(messages.FormAdvancedLabel), Icon: IconAdvanced, Collapsed: CollapsedYes}}
	advanced.Add(c.indexField(), c.overrideCompatible(), c.compatibleFieldtypes())

	return &Form{Children: []Widget{indexing, manual, advanced}}
}

// Build resolves saved against the resolver's layers and composes the form.
func Build(h host.Host, r config.Resolver, saved config.Settings) (*Form, config.Options) {
	opts := r.Resolve(saved)
	return Compose(h, opts), opts
}

// CompatibleDiff renders the difference between the module's default
// compatible fieldtypes and current. Removals of fieldtypes the host has
// not installed are left out.
func CompatibleDiff(h host.Host, current []string) string {
	installed := func(name string) bool {
		return h.Modules != nil && h.Modules.IsInstalled(name)
	}
	return fieldtypes.DiffAgainst(config.Defaults().CompatibleFieldtypes, current, installed).Render(h.T)
}

type composer struct {
	host host.Host
	opts config.Options
}

// lock marks b read-only with the key's site config note when a site
// override supplied the value, and otherwise sets notes.
func (c composer) lock(b *Base, key string, notes string) {
	if !c.opts.Locked(key) {
		b.Notes = notes
		return
	}
	def, _ := config.LookupOption(key)
	b.Notes = c.host.T(def.LockedNote)
	b.Collapsed = CollapsedNoLocked
}

func (c composer) indexedFields() *MultiSelect {
	w := &MultiSelect{
		Base:  Base{Name: config.KeyIndexedFields, Label: c.host.T(messages.FormIndexedFieldsLabel)},
		Value: c.opts.IndexedFields.Value,
	}
	candidates := fieldtypes.CandidateIndexedFields(c.host.AllFields(), c.opts.CompatibleFieldtypes.Value, c.opts.IndexField.Value)
	labels := fieldLabels(c.host.AllFields())
	for _, name := range candidates {
		w.Options = append(w.Options, Option{Value: name, Label: labels[name]})
	}
	c.lock(&w.Base, config.KeyIndexedFields, "")
	return w
}

// indexedTemplates lists templates that can carry the index field. System
// templates are listed only when already attached, and cannot be toggled.
func (c composer) indexedTemplates() *Checkboxes {
	attached := c.host.FieldTemplates(c.opts.IndexField.Value)
	isAttached := make(map[string]struct{}, len(attached))
	for _, name := range attached {
		isAttached[name] = struct{}{}
	}
	w := &Checkboxes{
		Base: Base{
			Name:        config.KeyIndexedTemplates,
			Label:       c.host.T(messages.FormIndexedTemplatesLabel),
			Description: c.host.T(messages.FormIndexedTemplatesDescription),
		},
		Value:         attached,
		OptionColumns: 1,
	}
	for _, tpl := range c.host.AllTemplates() {
		opt := Option{Value: tpl.Name, Label: tpl.Name}
		if tpl.IsSystem() {
			if _, ok := isAttached[tpl.Name]; !ok {
				continue
			}
			opt.Disabled = true
			w.Notes = c.host.T(messages.FormIndexedTemplatesSystemNote)
		}
		w.Options = append(w.Options, opt)
	}
	return w
}

func (c composer) indexPagesNow() *Checkbox {
	w := &Checkbox{
		Base: Base{
			Name:        config.KeyIndexPagesNow,
			Label:       c.host.T(messages.FormIndexPagesNowLabel),
			Description: c.host.T(messages.FormIndexPagesNowDescription),
		},
		Checked: c.opts.IndexPagesNow.Value,
	}
	c.lock(&w.Base, config.KeyIndexPagesNow, c.host.T(messages.FormIndexPagesNowNote))
	return w
}

func (c composer) indexPagesNowSelector() *Selector {
	w := &Selector{
		Base: Base{
			Name:        config.KeyIndexPagesNowSelector,
			Label:       c.host.T(messages.FormSelectorLabel),
			Description: c.host.T(messages.FormSelectorDescription),
			ShowIf:      ShowIfIndexPagesNow,
		},
		Value: c.opts.IndexPagesNowSelector.Value,
	}
	c.lock(&w.Base, config.KeyIndexPagesNowSelector, "")
	return w
}

func (c composer) indexField() *Select {
	w := &Select{
		Base:  Base{Name: config.KeyIndexField, Label: c.host.T(messages.FormIndexFieldLabel)},
		Value: c.opts.IndexField.Value,
	}
	labels := fieldLabels(c.host.AllFields())
	for _, name := range fieldtypes.CandidateIndexFields(c.host.AllFields()) {
		w.Options = append(w.Options, Option{Value: name, Label: labels[name]})
	}
	c.lock(&w.Base, config.KeyIndexField, c.host.T(messages.FormIndexFieldCaution))
	return w
}

func (c composer) overrideCompatible() *Checkbox {
	w := &Checkbox{
		Base: Base{
			Name:        config.KeyOverrideCompatibleFieldtypes,
			Label:       c.host.T(messages.FormOverrideLabel),
			Description: c.host.T(messages.FormOverrideDescription),
		},
		Checked: c.opts.OverrideCompatibleFieldtypes.Value,
	}
	c.lock(&w.Base, config.KeyOverrideCompatibleFieldtypes, "")
	return w
}

func (c composer) compatibleFieldtypes() *MultiSelect {
	w := &MultiSelect{
		Base: Base{
			Name:        config.KeyCompatibleFieldtypes,
			Label:       c.host.T(messages.FormCompatibleLabel),
			Description: c.host.T(messages.FormCompatibleDescription),
			ShowIf:      ShowIfOverride,
		},
		Value: c.opts.CompatibleFieldtypes.Value,
	}
	for _, name := range fieldtypes.SelectableFieldtypes(c.host.Modules) {
		w.Options = append(w.Options, Option{Value: name, Label: name})
	}
	c.lock(&w.Base, config.KeyCompatibleFieldtypes, c.host.T(messages.FormCompatibleCaution))
	if diff := CompatibleDiff(c.host, w.Value); diff != "" {
		w.Notes += "\n\n" + diff
	}
	return w
}

// fieldLabels maps field names to display labels, falling back to the name.
func fieldLabels(fields []host.Field) map[string]string {
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		labels[f.Name] = label
	}
	return labels
}
