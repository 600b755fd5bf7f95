package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/form"
	"github.com/conn-castle/sitesearch/internal/messages"
)

func newFormCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.FormUse,
		Short: messages.FormShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(flags, nil, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			f, opts := form.Build(s.host, s.resolver, s.saved)
			runValidator(s, opts.IndexField.Value, out, cmd.ErrOrStderr(), flags.quiet)
			renderForm(out, f)
			return nil
		},
	}
}

// renderForm prints the widget tree as an indented outline.
func renderForm(out io.Writer, f *form.Form) {
	colors := newPalette(out)
	f.Walk(func(w form.Widget, depth int) bool {
		indent := strings.Repeat("  ", depth)
		b := w.Common()
		if fs, ok := w.(*form.Fieldset); ok {
			suffix := ""
			if fs.Collapsed == form.CollapsedYes {
				suffix = messages.RenderCollapsed
			}
			_, _ = fmt.Fprintf(out, messages.RenderFieldsetFmt, indent, colors.info.Sprint(fs.Label), fs.Icon, suffix)
			return true
		}

		suffix := ""
		if b.Locked() {
			suffix += colors.warning.Sprint(messages.RenderLocked)
		}
		if b.ShowIf != "" {
			suffix += fmt.Sprintf(messages.RenderShowIfFmt, b.ShowIf)
		}
		_, _ = fmt.Fprintf(out, messages.RenderWidgetFmt, indent, b.Label, w.Kind(), b.Name, suffix)
		if b.Description != "" {
			_, _ = fmt.Fprintf(out, messages.RenderDetailFmt, indent, messages.RenderDescription, colors.muted.Sprint(b.Description))
		}
		switch v := w.(type) {
		case *form.MultiSelect:
			renderOptions(out, indent, v.Options)
			renderDetail(out, indent, messages.RenderValue, strings.Join(v.Value, ", "))
		case *form.Checkboxes:
			renderOptions(out, indent, v.Options)
			renderDetail(out, indent, messages.RenderValue, strings.Join(v.Value, ", "))
		case *form.Select:
			renderOptions(out, indent, v.Options)
			renderDetail(out, indent, messages.RenderValue, v.Value)
		case *form.Selector:
			renderDetail(out, indent, messages.RenderValue, v.Value)
		case *form.Checkbox:
			state := messages.RenderCheckedFalse
			if v.Checked {
				state = messages.RenderCheckedTrue
			}
			renderDetail(out, indent, messages.RenderValue, state)
		}
		if b.Notes != "" {
			notes := strings.ReplaceAll(b.Notes, "\n", "\n"+indent+"      ")
			renderDetail(out, indent, messages.RenderNotes, notes)
		}
		return true
	})
}

func renderOptions(out io.Writer, indent string, options []form.Option) {
	if len(options) == 0 {
		return
	}
	labels := make([]string, 0, len(options))
	for _, opt := range options {
		label := opt.Value
		if opt.Disabled {
			label = fmt.Sprintf(messages.RenderDisabledFmt, label)
		}
		labels = append(labels, label)
	}
	renderDetail(out, indent, messages.RenderOptions, strings.Join(labels, ", "))
}

func renderDetail(out io.Writer, indent string, key string, value string) {
	if value == "" {
		return
	}
	_, _ = fmt.Fprintf(out, messages.RenderDetailFmt, indent, key, value)
}
