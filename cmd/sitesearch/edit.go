package main

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/form"
	"github.com/conn-castle/sitesearch/internal/messages"
	"github.com/conn-castle/sitesearch/internal/wizard"
)

var newUI = func() wizard.UI { return wizard.NewHuhUI() }

func newEditCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.EditUse,
		Short: messages.EditShort,
		Long:  heredoc.Doc(messages.EditLong),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errOut := cmd.ErrOrStderr()
			s, err := loadSession(flags, nil, false)
			if errors.Is(err, config.ErrSettingsValidation) {
				_, _ = fmt.Fprintf(errOut, messages.ConfigLenientLoadInfoFmt+"\n", messages.RootUse+" "+messages.EditUse, err)
				s, err = loadSession(flags, nil, true)
			}
			if err != nil {
				return err
			}
			f, opts := form.Build(s.host, s.resolver, s.saved)
			runValidator(s, opts.IndexField.Value, errOut, errOut, flags.quiet)

			updated, err := wizard.Run(newUI(), f, s.saved)
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(errOut, err)
				return &SilentExitError{Code: 130}
			}
			if err != nil {
				return err
			}
			data, err := config.MarshalSettings(updated)
			if err != nil {
				return fmt.Errorf(messages.WizardMarshalFailedFmt, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
