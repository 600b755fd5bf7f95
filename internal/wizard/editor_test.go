package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/form"
	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
)

// scriptedUI answers prompts by title. A missing answer keeps the current
// value. Every prompt title is recorded in order.
type scriptedUI struct {
	titles   []string
	lists    map[string][]string
	strs     map[string]string
	bools    map[string]bool
	errs     map[string][]error
	offered  map[string][]Choice
	noteBody map[string]string
}

func newScriptedUI() *scriptedUI {
	return &scriptedUI{
		lists:    map[string][]string{},
		strs:     map[string]string{},
		bools:    map[string]bool{},
		errs:     map[string][]error{},
		offered:  map[string][]Choice{},
		noteBody: map[string]string{},
	}
}

// next pops the queued error for title, if any.
func (u *scriptedUI) next(title string) error {
	u.titles = append(u.titles, title)
	queue := u.errs[title]
	if len(queue) == 0 {
		return nil
	}
	u.errs[title] = queue[1:]
	return queue[0]
}

func (u *scriptedUI) Select(title string, _ string, options []Choice, current *string) error {
	u.offered[title] = options
	if err := u.next(title); err != nil {
		return err
	}
	if v, ok := u.strs[title]; ok {
		*current = v
	}
	return nil
}

func (u *scriptedUI) MultiSelect(title string, _ string, options []Choice, selected *[]string) error {
	u.offered[title] = options
	if err := u.next(title); err != nil {
		return err
	}
	if v, ok := u.lists[title]; ok {
		*selected = v
	}
	return nil
}

func (u *scriptedUI) Confirm(title string, _ string, value *bool) error {
	if err := u.next(title); err != nil {
		return err
	}
	if v, ok := u.bools[title]; ok {
		*value = v
	}
	return nil
}

func (u *scriptedUI) Input(title string, _ string, value *string) error {
	if err := u.next(title); err != nil {
		return err
	}
	if v, ok := u.strs[title]; ok {
		*value = v
	}
	return nil
}

func (u *scriptedUI) Note(title string, body string) error {
	u.noteBody[title] = body
	return u.next(title)
}

func testHost() host.Host {
	fields := []host.Field{
		{Name: "title", Type: "FieldtypePageTitle", Templates: []string{"basic-page", "admin"}},
		{Name: "body", Type: host.FieldtypeTextarea, Templates: []string{"basic-page"}},
		{Name: "search_index", Type: host.FieldtypeTextarea, Templates: []string{"admin"}},
	}
	templates := []host.Template{{Name: "basic-page"}, {Name: "home"}, {Name: "admin", Flags: host.FlagSystem}}
	modules := []host.Module{{Name: "FieldtypeText", Installed: true}, {Name: host.FieldtypeTextarea, Installed: true}}
	snap := &host.Snapshot{Fields: fields, Templates: templates, Modules: modules}
	return snap.Host(nil)
}

func buildForm(site config.Settings, saved config.Settings) *form.Form {
	f, _ := form.Build(testHost(), config.NewResolver(site), saved)
	return f
}

func TestRunKeepsValuesWhenNothingChanges(t *testing.T) {
	saved := config.Settings{IndexField: "search_index"}
	ui := newScriptedUI()

	got, err := Run(ui, buildForm(config.Settings{}, saved), saved)
	require.NoError(t, err)

	assert.Equal(t, "search_index", got.IndexField)
	assert.Equal(t, config.Defaults().IndexedFields, got.IndexedFields)
	assert.Equal(t, []string{"admin"}, got.IndexedTemplates)
	assert.False(t, got.IndexPagesNow)
	assert.Empty(t, got.IndexPagesNowSelector)
	assert.NotContains(t, ui.titles, messages.FormSelectorLabel)
	assert.NotContains(t, ui.titles, messages.FormCompatibleLabel)
}

func TestRunAppliesAnswers(t *testing.T) {
	ui := newScriptedUI()
	ui.lists[messages.FormIndexedFieldsLabel] = []string{"title"}
	ui.bools[messages.FormIndexPagesNowLabel] = true
	ui.strs[messages.FormSelectorLabel] = " template=basic-page "
	ui.strs[messages.FormIndexFieldLabel] = "body"
	ui.bools[messages.FormOverrideLabel] = true
	ui.lists[messages.FormCompatibleLabel] = []string{"FieldtypeText"}

	got, err := Run(ui, buildForm(config.Settings{}, config.Settings{}), config.Settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"title"}, got.IndexedFields)
	assert.True(t, got.IndexPagesNow)
	assert.Equal(t, "template=basic-page", got.IndexPagesNowSelector)
	assert.Equal(t, "body", got.IndexField)
	assert.True(t, got.OverrideCompatibleFieldtypes)
	assert.Equal(t, []string{"FieldtypeText"}, got.CompatibleFieldtypes)
	assert.Contains(t, ui.titles, messages.FormSelectorLabel)
	assert.Contains(t, ui.titles, messages.FormCompatibleLabel)
}

func TestRunLockedControlsAreNotes(t *testing.T) {
	site := config.Settings{IndexedFields: []string{"title"}}
	saved := config.Settings{IndexedFields: []string{"body"}}
	ui := newScriptedUI()
	ui.lists[messages.FormIndexedFieldsLabel] = []string{"summary"}

	got, err := Run(ui, buildForm(site, saved), saved)
	require.NoError(t, err)

	lockedTitle := messages.FormIndexedFieldsLabel + " (locked)"
	assert.Contains(t, ui.titles, lockedTitle)
	assert.NotContains(t, ui.titles, messages.FormIndexedFieldsLabel)
	assert.Contains(t, ui.noteBody[lockedTitle], messages.FormIndexedFieldsLocked)
	assert.Contains(t, ui.noteBody[lockedTitle], "title")
	assert.Equal(t, []string{"body"}, got.IndexedFields)
}

func TestRunSystemTemplatesStayAttached(t *testing.T) {
	saved := config.Settings{IndexField: "search_index"}
	ui := newScriptedUI()
	ui.lists[messages.FormIndexedTemplatesLabel] = []string{"home"}

	got, err := Run(ui, buildForm(config.Settings{}, saved), saved)
	require.NoError(t, err)

	assert.Equal(t, []string{"admin", "home"}, got.IndexedTemplates)
	offered := ui.offered[messages.FormIndexedTemplatesLabel]
	for _, c := range offered {
		assert.NotEqual(t, "admin", c.Value)
	}
}

func TestRunBackNavigation(t *testing.T) {
	ui := newScriptedUI()
	ui.errs[messages.FormIndexPagesNowLabel] = []error{errBack}

	_, err := Run(ui, buildForm(config.Settings{}, config.Settings{}), config.Settings{})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(ui.titles), 4)
	assert.Equal(t, []string{
		messages.FormIndexedFieldsLabel,
		messages.FormIndexedTemplatesLabel,
		messages.FormIndexPagesNowLabel,
		messages.FormIndexedTemplatesLabel,
		messages.FormIndexPagesNowLabel,
	}, ui.titles[:5])
}

func TestRunBackOnFirstControlStays(t *testing.T) {
	ui := newScriptedUI()
	ui.errs[messages.FormIndexedFieldsLabel] = []error{errBack}

	_, err := Run(ui, buildForm(config.Settings{}, config.Settings{}), config.Settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{messages.FormIndexedFieldsLabel, messages.FormIndexedFieldsLabel}, ui.titles[:2])
}

func TestRunCancelled(t *testing.T) {
	ui := newScriptedUI()
	ui.errs[messages.FormIndexFieldLabel] = []error{ErrCancelled}

	_, err := Run(ui, buildForm(config.Settings{}, config.Settings{}), config.Settings{})
	require.ErrorIs(t, err, ErrCancelled)
}

func TestRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	ui := newScriptedUI()
	ui.errs[messages.FormIndexedFieldsLabel] = []error{boom}

	_, err := Run(ui, buildForm(config.Settings{}, config.Settings{}), config.Settings{})
	require.ErrorIs(t, err, boom)
}

func TestRunClearsSelectorWithoutIndexPagesNow(t *testing.T) {
	saved := config.Settings{IndexPagesNow: true, IndexPagesNowSelector: "template=home"}
	ui := newScriptedUI()
	ui.bools[messages.FormIndexPagesNowLabel] = false

	got, err := Run(ui, buildForm(config.Settings{}, saved), saved)
	require.NoError(t, err)

	assert.False(t, got.IndexPagesNow)
	assert.Empty(t, got.IndexPagesNowSelector)
	assert.NotContains(t, ui.titles, messages.FormSelectorLabel)
}

func TestRunKeepsSelectorWhenSiteLocksIndexPagesNow(t *testing.T) {
	site := config.Settings{IndexPagesNow: true}
	ui := newScriptedUI()
	ui.strs[messages.FormSelectorLabel] = "template=basic-page"

	got, err := Run(ui, buildForm(site, config.Settings{}), config.Settings{})
	require.NoError(t, err)

	assert.Contains(t, ui.titles, messages.FormSelectorLabel)
	assert.False(t, got.IndexPagesNow)
	assert.Equal(t, "template=basic-page", got.IndexPagesNowSelector)

	opts := config.NewResolver(site).Resolve(got)
	assert.True(t, opts.IndexPagesNow.Value)
	assert.Equal(t, "template=basic-page", opts.IndexPagesNowSelector.Value)
}

func TestRunUnknownWidget(t *testing.T) {
	f := &form.Form{Children: []form.Widget{&form.Fieldset{Children: []form.Widget{unknownWidget{}}}}}

	_, err := Run(newScriptedUI(), f, config.Settings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported widget")
}

type unknownWidget struct{ form.Base }

func (unknownWidget) Kind() form.Kind { return "custom" }

func (w unknownWidget) Common() *form.Base { return &w.Base }

func TestChoicesSkipDisabled(t *testing.T) {
	got := choices([]form.Option{{Value: "a"}, {Value: "b", Disabled: true}, {Value: "c", Label: "C"}})

	assert.Equal(t, []Choice{{Value: "a"}, {Value: "c", Label: "C"}}, got)
}

func TestSplitDisabled(t *testing.T) {
	options := []form.Option{{Value: "a"}, {Value: "b", Disabled: true}}

	fixed, editable := splitDisabled(options, []string{"b", "a", "z"})

	assert.Equal(t, []string{"b"}, fixed)
	assert.Equal(t, []string{"a", "z"}, editable)
}
