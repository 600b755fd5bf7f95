package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/host"
	"github.com/conn-castle/sitesearch/internal/messages"
	"github.com/conn-castle/sitesearch/internal/notice"
	"github.com/conn-castle/sitesearch/internal/validator"
)

type validateFlags struct {
	query  string
	create bool
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	vf := &validateFlags{}
	cmd := &cobra.Command{
		Use:   messages.ValidateUse,
		Short: messages.ValidateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := requestInput(vf)
			if err != nil {
				return err
			}
			s, err := loadSession(flags, input, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			res := runValidator(s, s.opts.IndexField.Value, out, cmd.ErrOrStderr(), flags.quiet)
			if notice.HasErrors(res.Notices) {
				return errors.New(messages.ValidateFailed)
			}
			colors := newPalette(out)
			switch res.State {
			case validator.StateUnset:
				_, _ = fmt.Fprintln(out, messages.ValidateUnset)
			case validator.StateReady:
				_, _ = fmt.Fprintln(out, colors.success.Sprint(messages.ValidateOK))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&vf.query, "query", "", messages.FlagQuery)
	cmd.Flags().BoolVar(&vf.create, "create-index-field", false, messages.FlagCreate)
	return cmd
}

// requestInput builds the request query from --query and --create-index-field.
func requestInput(vf *validateFlags) (host.Query, error) {
	query, err := host.ParseQuery(vf.query)
	if err != nil {
		return nil, fmt.Errorf(messages.CLIInvalidQueryFmt, vf.query, err)
	}
	if vf.create {
		url.Values(query).Set(validator.ParamCreateIndexField, validator.CreateRequested)
	}
	return query, nil
}

// runValidator validates indexField and forwards its notices to the terminal.
func runValidator(s *session, indexField string, out io.Writer, errOut io.Writer, quiet bool) validator.Result {
	res := validator.New(s.host).Validate(indexField)
	if res.RepairErr != nil {
		_, _ = fmt.Fprintf(errOut, messages.ValidateRepairFailFmt, res.RepairErr)
	} else if res.RepairAttempted {
		if redirect := s.snapshot.Redirect(); redirect != "" {
			_, _ = fmt.Fprintf(out, messages.ValidateCreatedFmt, redirect)
		}
	}
	notices := res.Notices
	if quiet {
		notices = notice.Quiet(notices)
	}
	notice.Forward(newTerminalBus(out), notices)
	return res
}
