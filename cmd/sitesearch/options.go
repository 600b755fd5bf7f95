package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/sitesearch/internal/config"
	"github.com/conn-castle/sitesearch/internal/messages"
)

func newOptionsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.OptionsUse,
		Short: messages.OptionsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(flags, nil, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colors := newPalette(out)
			for _, entry := range s.opts.Entries() {
				source := entry.Source.String()
				if entry.Source == config.SourceSite {
					source = colors.warning.Sprint(messages.OptionsLocked)
				}
				_, _ = fmt.Fprintf(out, messages.OptionsLineFmt, entry.Key, source, formatValue(entry.Value))
			}
			return nil
		},
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}
