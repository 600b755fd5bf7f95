package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/form"
	"github.com/conn-castle/sitesearch/internal/messages"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DiffUse,
		Short: messages.DiffShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(flags, nil, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			diff := form.CompatibleDiff(s.host, s.opts.CompatibleFieldtypes.Value)
			if diff == "" {
				_, _ = fmt.Fprintln(out, messages.DiffNoChanges)
				return nil
			}
			_, _ = fmt.Fprintln(out, diff)
			return nil
		},
	}
}
